package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-renderer/internal/schemas"
	"github.com/jonathan/resume-renderer/internal/types"
)

// RenderRequest represents the request body for /render and /assess
type RenderRequest struct {
	Document json.RawMessage `json:"document"`
	Pages    int             `json:"pages,omitempty"`
	Filename string          `json:"filename,omitempty"`
}

// decodeDocument reads and validates the document from the request body.
// It returns the parsed document plus render options, or writes an error
// response and returns false.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*types.Document, types.RenderOptions, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return nil, types.RenderOptions{}, false
	}

	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, types.RenderOptions{}, false
	}
	if len(req.Document) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "document is required")
		return nil, types.RenderOptions{}, false
	}
	if req.Pages < 0 {
		s.errorResponse(w, http.StatusBadRequest, "pages must be non-negative")
		return nil, types.RenderOptions{}, false
	}

	// Schema validation gives field-level messages before struct decoding
	if err := schemas.ValidateDocument(req.Document); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.validationResponse(w, validationErr)
			return nil, types.RenderOptions{}, false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return nil, types.RenderOptions{}, false
	}

	var doc types.Document
	if err := json.Unmarshal(req.Document, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return nil, types.RenderOptions{}, false
	}
	if err := doc.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return nil, types.RenderOptions{}, false
	}

	opts := types.RenderOptions{
		RequestedPageCount: req.Pages,
		Filename:           req.Filename,
	}
	return &doc, opts, true
}

// handleRender renders the document and returns the PDF bytes
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, opts, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Render(r.Context(), doc, opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	filename := result.Filename
	if filename == "" {
		filename = "resume.pdf"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Page-Count", fmt.Sprintf("%d", result.PageCount))
	w.Header().Set("X-Mode-Used", string(result.ModeUsed))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Bytes)
}

// handleAssess reports whether the document fits the requested mode
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	doc, opts, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	assessment := s.engine.Assess(r.Context(), doc, opts)
	s.jsonResponse(w, http.StatusOK, assessment)
}

// validationResponse writes a 400 response listing every schema violation
func (s *Server) validationResponse(w http.ResponseWriter, validationErr *schemas.ValidationError) {
	fields := make([]map[string]string, 0, len(validationErr.Errors))
	for _, fieldErr := range validationErr.Errors {
		fields = append(fields, map[string]string{
			"field":   fieldErr.Field,
			"message": fieldErr.Message,
		})
	}
	s.jsonResponse(w, http.StatusBadRequest, map[string]any{
		"error":  "document failed schema validation",
		"fields": fields,
	})
}
