package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"cukexpr/internal/common"
)

// Diagnostics holds all diagnostics of one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier such as "duplicate-name".
	Code string
	// Message is the human-readable description.
	Message string
	// Subject is the parameter type the diagnostic relates to (if any).
	Subject string
	// Field is the definition field at fault (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
	// Cause is the error behind an error diagnostic.
	Cause error
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
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic caused by err.
func (d *Diagnostics) AddError(code, subject, field string, err error, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     err.Error(),
		Subject:     subject,
		Field:       field,
		Suggestions: suggestions,
		Cause:       err,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, field string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Subject:     subject,
		Field:       field,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Subject:  subject,
	})
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

// Codes returns the codes of all error diagnostics in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		codes[i] = e.Code
	}

	return codes
}

// Error joins all error diagnostics into one error, or returns nil if valid.
// The causes stay reachable through errors.Is and errors.As.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, len(d.Errors))
	for i := range d.Errors {
		errs[i] = &diagnosticError{d.Errors[i]}
	}

	return errors.Join(errs...)
}

type diagnosticError struct {
	d Diagnostic
}

func (e *diagnosticError) Error() string { return e.d.String() }

func (e *diagnosticError) Unwrap() error { return e.d.Cause }

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "{"+d.Subject+"}")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
