// Package types provides type definitions for structured data used throughout the resume-tailor system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateRequest represents a request to generate a tailored resume.
type GenerateRequest struct {
	JobText string `json:"job_text" validate:"required,min=1"`
	Label   string `json:"label,omitempty" validate:"omitempty,max=120"`
	Assess  bool   `json:"assess,omitempty"`
}

// AssessRequest represents a request for an apply/no-apply recommendation.
type AssessRequest struct {
	JobText string `json:"job_text" validate:"required,min=1"`
}

// CoverLetterRequest represents a request to draft a cover letter.
type CoverLetterRequest struct {
	JobText string `json:"job_text" validate:"required,min=1"`
	Label   string `json:"label,omitempty" validate:"omitempty,max=120"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AssessRequest using the validator.
func (r *AssessRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CoverLetterRequest using the validator.
func (r *CoverLetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
