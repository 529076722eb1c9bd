package fonts

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadsOncePerKey(t *testing.T) {
	var calls int32
	cache := NewCacheWithLoader(func(path string) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("font:" + path), nil
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		data, err := cache.Load(ctx, "regular.ttf")
		require.NoError(t, err)
		assert.Equal(t, []byte("font:regular.ttf"), data)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_ConcurrentLoads(t *testing.T) {
	var calls int32
	cache := NewCacheWithLoader(func(path string) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte(path), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(context.Background(), "shared.ttf")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2),
		"concurrent loads for one key must be de-duplicated")
}

func TestCache_CancelledContext(t *testing.T) {
	cache := NewCacheWithLoader(func(path string) ([]byte, error) {
		return []byte("x"), nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cache.Load(ctx, "a.ttf")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_FallsBackWhenCandidateMissing(t *testing.T) {
	cache := NewCacheWithLoader(func(path string) ([]byte, error) {
		return nil, errors.New("no such file")
	})
	r := NewResolver(cache, Candidate{Family: "Inter", RegularPath: "a.ttf", BoldPath: "b.ttf"})

	res := r.Resolve(context.Background())
	assert.True(t, res.Builtin)
	assert.Equal(t, FallbackFamily, res.Family)
}

func TestResolver_UsesFirstLoadableCandidate(t *testing.T) {
	cache := NewCacheWithLoader(func(path string) ([]byte, error) {
		if path == "missing.ttf" {
			return nil, errors.New("no such file")
		}
		return []byte(path), nil
	})
	r := NewResolver(cache,
		Candidate{Family: "Broken", RegularPath: "missing.ttf", BoldPath: "b.ttf"},
		Candidate{Family: "Inter", RegularPath: "inter.ttf", BoldPath: "inter-bold.ttf"},
	)
	// The fake loader does not produce real TrueType data, so the embed
	// check is stubbed to exercise candidate ordering on its own.
	r.verify = func(Resolved) bool { return true }

	res := r.Resolve(context.Background())
	assert.False(t, res.Builtin)
	assert.Equal(t, "Inter", res.Family)
	assert.Equal(t, []byte("inter.ttf"), res.Regular)
	assert.Equal(t, []byte("inter-bold.ttf"), res.Bold)
}

func TestResolver_FallsBackWhenFontBytesInvalid(t *testing.T) {
	cache := NewCacheWithLoader(func(path string) ([]byte, error) {
		return []byte("not a TrueType file"), nil
	})
	r := NewResolver(cache, Candidate{Family: "Inter", RegularPath: "a.ttf", BoldPath: "b.ttf"})

	res := r.Resolve(context.Background())
	assert.True(t, res.Builtin)
	assert.Equal(t, FallbackFamily, res.Family)
}

func TestResolver_NoCandidates(t *testing.T) {
	r := NewResolver(nil)
	res := r.Resolve(context.Background())
	assert.True(t, res.Builtin)
}

func TestStyles_Deterministic(t *testing.T) {
	res := Resolved{Family: FallbackFamily, Builtin: true}
	a := Styles(res)
	b := Styles(res)
	assert.Equal(t, a, b)
	assert.Equal(t, FallbackFamily, a.Body.Family)
	assert.True(t, a.SectionHeading.Bold)
	assert.Equal(t, "B", a.Name.FpdfStyle())
	assert.Equal(t, "", a.Body.FpdfStyle())
}

func TestStyle_WithSize_ScalesLineHeight(t *testing.T) {
	s := Style{Family: FallbackFamily, Size: 10, LineHeight: 13}
	shrunk := s.WithSize(8)
	assert.Equal(t, 8.0, shrunk.Size)
	assert.InDelta(t, 10.4, shrunk.LineHeight, 0.001)
}
