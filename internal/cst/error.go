package cst

import (
	"fmt"

	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// ParseErrorKind distinguishes the shapes of parse failure.
type ParseErrorKind int

const (
	// ExpectedGot: a specific selmaho was required but a different token
	// (or end of input) was found.
	ExpectedGot ParseErrorKind = iota
	// PostConditionFailed: a rule parsed successfully but its postcond
	// predicate rejected the result (e.g. an empty Time tag).
	PostConditionFailed
	// Empty: the input had no tokens at all.
	Empty
	// ZoQuoteEof: a "zo" quote-word construct ran off the end of input
	// before finding the word it was meant to quote.
	ZoQuoteEof
	// Opaque: a failure whose cause doesn't fit the other variants, carrying
	// a human-readable message instead.
	Opaque
)

// ParseError reports where and why parsing failed.
type ParseError struct {
	Location int // token index into the original slice
	Kind     ParseErrorKind
	Expected []selmaho.Selmaho
	Got      *lexer.Token
	Message  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ExpectedGot:
		if e.Got == nil {
			return fmt.Sprintf("at token %d: expected one of %v, got end of input", e.Location, e.Expected)
		}
		return fmt.Sprintf("at token %d: expected one of %v, got %v", e.Location, e.Expected, e.Got.Selmaho)
	case PostConditionFailed:
		return fmt.Sprintf("at token %d: post-condition failed: %s", e.Location, e.Message)
	case Empty:
		return "empty input"
	case ZoQuoteEof:
		return fmt.Sprintf("at token %d: expected word after zo, got end of input", e.Location)
	default:
		return fmt.Sprintf("at token %d: %s", e.Location, e.Message)
	}
}
