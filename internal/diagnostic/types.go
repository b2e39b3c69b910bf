package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"modelmap/internal/common"
)

// Diagnostics holds all diagnostic information reported during a build.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
	Debugs   []Diagnostic // debug and trace events
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Mapping names the mapping this relates to (if any).
	Mapping string
	// Package names the model package this relates to (if any).
	Package string
	// Subject identifies the rule, node or id this relates to (if any).
	Subject string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityTrace:
		return "trace"
	case SeverityDebug:
		return "debug"
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

// Observe records d. Diagnostics is itself an Observer.
func (d *Diagnostics) Observe(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	case SeverityInfo:
		d.Infos = append(d.Infos, diag)
	default:
		d.Debugs = append(d.Debugs, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, mapping, subject string) {
	d.Observe(Diagnostic{Severity: SeverityError, Code: code, Message: message, Mapping: mapping, Subject: subject})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, mapping, subject string) {
	d.Observe(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Mapping: mapping, Subject: subject})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, mapping, subject string) {
	d.Observe(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Mapping: mapping, Subject: subject})
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
	d.Debugs = append(d.Debugs, other.Debugs...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Codes returns the codes of all recorded diagnostics, most severe first.
func (d *Diagnostics) Codes() []string {
	var codes []string
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos, d.Debugs} {
		for _, diag := range group {
			codes = append(codes, diag.Code)
		}
	}

	return codes
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
	if d.Mapping != "" {
		prefix = append(prefix, "["+d.Mapping+"]")
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
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
