// Package errdefs defines the error classification used across infreport.
//
// Every failure surfaced by the pipeline carries a Kind so the CLI shell
// can map it to a distinct exit status. Errors are never retried or
// recovered internally; the first failure unwinds to the caller and no
// partial report is produced.
package errdefs

import (
	"errors"
	"fmt"
)

// Kind identifies the high-level class of a pipeline failure.
type Kind string

const (
	// KindMissingSection indicates the manufacturer section is absent
	// from the document.
	KindMissingSection Kind = "missing_section"
	// KindMissingInstallSection indicates a device line carried no
	// install-section field.
	KindMissingInstallSection Kind = "missing_install_section"
	// KindEncoding indicates a text value could not be converted to the
	// external encoding.
	KindEncoding Kind = "encoding"
	// KindResourceExhaustion indicates the run hit a resource limit;
	// callers should avoid further formatting work when reporting it.
	KindResourceExhaustion Kind = "resource_exhaustion"
	// KindUnclassified covers any other collaborator failure.
	KindUnclassified Kind = "unclassified"
)

// Error wraps an underlying error with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates an error of the given Kind.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// Newf creates an error of the given Kind from a format string.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the Kind of err, or KindUnclassified when err carries
// no classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
