package core

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Kind: UnexpectedCharacter, Line: 3, Column: 5, Err: fmt.Errorf("%w %q", ErrUnexpectedCharacter, 'x')}
	assert.Equal(t, `line 3, column 5: unexpected character 'x'`, err.Error())

	bare := &ParseError{Kind: RowWidthMismatch, Line: 2}
	assert.Equal(t, "line 2: row width mismatch", bare.Error())
}

func TestParseErrorIs(t *testing.T) {
	err := fmt.Errorf("load: %w", &ParseError{Kind: IOFailure, Err: io.ErrUnexpectedEOF})

	assert.True(t, errors.Is(err, ErrInput))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, errors.Is(err, ErrRowWidthMismatch))

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, IOFailure, pe.Kind)
}

func TestParseErrorNamesKindOfForeignCause(t *testing.T) {
	err := &ParseError{Kind: IOFailure, Line: 4, Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "line 4: input failure: unexpected EOF", err.Error())
}
