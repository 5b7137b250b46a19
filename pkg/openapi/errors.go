package openapi

import (
	"errors"
	"fmt"
)

// ErrParse indicates the document could not be decoded.
var ErrParse = errors.New("parse error")

// ParseError describes why a document could not be decoded.
type ParseError struct {
	// Source is the file path or URL the document came from.
	Source  string
	Line    int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is lets errors.Is match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
