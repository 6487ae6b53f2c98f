package lexer

import (
	"fmt"

	"github.com/mattfbacon/sneturfahi/internal/span"
)

// ErrorKind distinguishes the three ways lexing can fail, all of which are
// quote-construct failures: the tokenizer otherwise never rejects input.
type ErrorKind int

const (
	// DelimitedQuoteMissingSeparator: a zoi/la'o/so'ehai quote word was not
	// followed by any word at all to serve as its starting delimiter.
	DelimitedQuoteMissingSeparator ErrorKind = iota
	// DelimitedQuoteUnclosed: input ended inside a delimited quote before
	// its closing delimiter was found.
	DelimitedQuoteUnclosed
	// PauseDelimitedQuoteEof: a me'oi/zo'oi/do'oi quote word was not
	// followed by anything to quote.
	PauseDelimitedQuoteEof
)

// Error reports a lexing failure, with the span of the construct that
// triggered it.
type Error struct {
	Kind                  ErrorKind
	InitiatorSpan         span.Span
	StartingDelimiterSpan span.Span // zero value unless Kind == DelimitedQuoteUnclosed
}

func (e *Error) Error() string {
	switch e.Kind {
	case DelimitedQuoteMissingSeparator:
		return fmt.Sprintf("delimited quote at %s has no starting delimiter", e.InitiatorSpan)
	case DelimitedQuoteUnclosed:
		return fmt.Sprintf("delimited quote at %s (delimiter %s) was never closed", e.InitiatorSpan, e.StartingDelimiterSpan)
	case PauseDelimitedQuoteEof:
		return fmt.Sprintf("pause-delimited quote at %s has nothing to quote", e.InitiatorSpan)
	default:
		return "lex error"
	}
}
