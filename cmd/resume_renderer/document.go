package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/engine"
	"github.com/jonathan/resume-renderer/internal/fonts"
	"github.com/jonathan/resume-renderer/internal/schemas"
	"github.com/jonathan/resume-renderer/internal/types"
)

// loadDocument reads a resume JSON file, validates it against the document
// schema, and decodes it into a typed document.
func loadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	if err := schemas.ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}

	return &doc, nil
}

// newEngine builds a render engine from the merged CLI configuration.
func newEngine(cfg config.Config) (*engine.Engine, error) {
	eng, err := engine.New(engineOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create render engine: %w", err)
	}
	return eng, nil
}

// engineOptions maps the merged CLI configuration onto engine options.
func engineOptions(cfg config.Config) engine.Options {
	opts := engine.Options{Margin: cfg.Margin}
	if cfg.FontRegular != "" {
		family := cfg.FontFamily
		if family == "" {
			family = "Custom"
		}
		opts.FontCandidates = []fonts.Candidate{{
			Family:      family,
			RegularPath: cfg.FontRegular,
			BoldPath:    cfg.FontBold,
		}}
	}
	return opts
}
