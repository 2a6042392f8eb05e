package schema

import "fmt"

// ValidationError represents a document validation error with context
type ValidationError struct {
	Field      string // Field path (e.g., "spec.files[0].src")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
	Line       int    // Line number in YAML (if available)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Line > 0 {
		msg = fmt.Sprintf("validation error at %s (line %d): %s", e.Field, e.Line, e.Message)
	}
	if e.Suggestion != "" {
		msg += ". Suggestion: " + e.Suggestion
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return "validation errors"
	case 1:
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Add appends an error for field.
func (e *ValidationErrors) Add(field, message, suggestion string) {
	*e = append(*e, ValidationError{Field: field, Message: message, Suggestion: suggestion})
}

// Err returns e as an error, or nil when empty.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidateBasicStructure validates the envelope fields every document must have
func ValidateBasicStructure(def *Definition) error {
	var errs ValidationErrors

	if def.APIVersion == "" {
		errs.Add("apiVersion", "apiVersion is required", "use "+APIVersion)
	} else if def.APIVersion != APIVersion {
		errs.Add("apiVersion", fmt.Sprintf("unsupported apiVersion %q", def.APIVersion), "use "+APIVersion)
	}
	if def.Kind == "" {
		errs.Add("kind", "kind is required", "")
	}
	if def.Name == "" {
		errs.Add("name", "name is required", "")
	}

	return errs.Err()
}

// ValidateKind validates the envelope and checks the document is of kind.
func ValidateKind(def *Definition, kind string) error {
	if err := ValidateBasicStructure(def); err != nil {
		return err
	}
	if def.Kind != kind {
		return &ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("expected kind %s, got %s", kind, def.Kind),
		}
	}
	return nil
}
