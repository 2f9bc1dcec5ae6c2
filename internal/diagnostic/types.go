package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"schema-typegen/internal/schema"
)

// Diagnostic codes.
const (
	CodeUnrecognizedFieldKind = "unrecognized_field_kind"
	CodeIncompleteDescriptor  = "incomplete_descriptor"
	CodeUnresolvedReference   = "unresolved_reference"
	CodeMalformedSource       = "malformed_source"
	CodeDuplicateTypeName     = "duplicate_type_name"
	CodeEmptySchema           = "empty_schema"
	CodeMissingDirectory      = "missing_directory"
	CodeInternal              = "internal"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Schema identifies the schema (UID or path) this relates to, if any.
	Schema string
	// Field identifies the attribute this relates to, if any.
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, schemaRef, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Schema:   schemaRef,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, schemaRef, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Schema:   schemaRef,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, schemaRef, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Schema:   schemaRef,
		Field:    field,
	})
}

// AddFailure records err as an error diagnostic, deriving the code from the
// sentinel it wraps.
func (d *Diagnostics) AddFailure(err error, schemaRef string) {
	var fe *FieldError

	field := ""
	if errors.As(err, &fe) {
		field = fe.Field
	}

	d.AddError(CodeFor(err), err.Error(), schemaRef, field)
}

// CodeFor maps an error to its diagnostic code.
func CodeFor(err error) string {
	switch {
	case errors.Is(err, schema.ErrUnrecognizedFieldKind):
		return CodeUnrecognizedFieldKind
	case errors.Is(err, schema.ErrIncompleteDescriptor):
		return CodeIncompleteDescriptor
	case errors.Is(err, schema.ErrUnresolvedReference):
		return CodeUnresolvedReference
	case errors.Is(err, schema.ErrMalformedSource):
		return CodeMalformedSource
	default:
		return CodeInternal
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Schema != "" {
		prefix = append(prefix, "["+d.Schema+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
