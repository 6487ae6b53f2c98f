// Package lexer turns decomposed Lojban words into a stream of classified
// Tokens, handling the quoting constructs (zoi/la'o/so'ehai delimited
// quotes and me'oi/zo'oi/do'oi pause-delimited quotes) that swallow raw
// text the word decomposer must not try to parse as Lojban.
package lexer

import (
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
	"github.com/mattfbacon/sneturfahi/internal/span"
)

// Token is a single classified word (or quoted-text run) produced by the
// lexer.
type Token struct {
	Selmaho      selmaho.Selmaho
	Span         span.Span
	Experimental bool
}
