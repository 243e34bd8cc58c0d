// Package schemas provides JSON Schema validation for structured LLM output.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed fit_assessment.schema.json
var fitAssessmentSchema string

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// SchemaLoadError represents errors loading or parsing the schema or document
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema document: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateFitAssessment checks a fit-assessment JSON document against the
// embedded schema. The schema validates shape and types only; value
// normalization (recommendation casing, confidence clamping) happens after
// validation in the assessment package.
func ValidateFitAssessment(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(fitAssessmentSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "invalid JSON document", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	vErr := &ValidationError{}
	for _, resultErr := range result.Errors() {
		vErr.Errors = append(vErr.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return vErr
}
