// Package types provides type definitions for structured data used throughout the resume-renderer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Document represents the external resume snapshot handed to the engine.
// Every field except the contact name is optional; missing sections are
// simply omitted from the rendered document.
type Document struct {
	Contact        Contact         `json:"contact" validate:"required"`
	Headline       string          `json:"headline,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	Skills         []SkillCategory `json:"skills,omitempty"`
	Roles          []Role          `json:"roles,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
}

// Contact holds the header fields. Name is required and is never shortened
// by the engine; the remaining fields are packed into the header in strict
// priority order (email, phone, location, then links).
type Contact struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// SkillCategory groups skills under a named category (e.g. "Languages").
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Role represents a single work experience entry, most recent first.
type Role struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Dates    string   `json:"dates,omitempty"`
	Location string   `json:"location,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// Project represents a personal or professional project entry. Description
// and Impact are folded into the bullet list when present.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Impact      string   `json:"impact,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Education represents a single education record.
type Education struct {
	School   string `json:"school"`
	Degree   string `json:"degree,omitempty"`
	Dates    string `json:"dates,omitempty"`
	Location string `json:"location,omitempty"`
}

// Validate validates the Document using the validator.
func (d *Document) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
