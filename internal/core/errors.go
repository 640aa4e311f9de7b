package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedCharacter is reported for input bytes outside an automaton's alphabet.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrRowWidthMismatch is reported when a grid row differs in length from the first row.
	ErrRowWidthMismatch = errors.New("row width mismatch")
	// ErrMalformedDirectionToken is reported for an incomplete or invalid hex direction token.
	ErrMalformedDirectionToken = errors.New("malformed direction token")
	// ErrInput is reported when the input source cannot be read.
	ErrInput = errors.New("input failure")
	// ErrOutOfRange is reported for coordinates outside the addressable field.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrAddressOverflow is reported when grid dimensions do not fit the address type.
	ErrAddressOverflow = errors.New("address overflow")
)

// ParseErrorKind classifies ingestion failures.
type ParseErrorKind int

const (
	// UnexpectedCharacter marks a byte outside the input alphabet.
	UnexpectedCharacter ParseErrorKind = iota + 1
	// RowWidthMismatch marks a row whose width differs from the first row.
	RowWidthMismatch
	// MalformedDirectionToken marks a bad two-character hex token.
	MalformedDirectionToken
	// IOFailure marks a read error from the input source.
	IOFailure
)

func (k ParseErrorKind) sentinel() error {
	switch k {
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	case RowWidthMismatch:
		return ErrRowWidthMismatch
	case MalformedDirectionToken:
		return ErrMalformedDirectionToken
	case IOFailure:
		return ErrInput
	}
	return nil
}

// String returns the human readable kind.
func (k ParseErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError describes why an input could not be ingested. Line and Column
// are 1-based; zero means the position does not apply.
type ParseError struct {
	Kind   ParseErrorKind
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
		b.WriteString(": ")
	}
	if e.Err != nil {
		if s := e.Kind.sentinel(); s != nil && !errors.Is(e.Err, s) {
			b.WriteString(s.Error())
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause, so
// errors.Is works against either.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
