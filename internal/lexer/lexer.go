package lexer

import (
	"strings"

	"github.com/mattfbacon/sneturfahi/internal/decompose"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
	"github.com/mattfbacon/sneturfahi/internal/span"
)

type stateKind int

const (
	stateNormal stateKind = iota
	stateDelimitedQuote
	stateOneMoreTokenThen
	statePauseDelimitedQuote
	stateDone
	stateErrored
)

// delimitedQuoteState tracks an in-progress zoi/la'o/so'ehai quote: the
// word that introduced it, the raw text of its starting delimiter, how
// many more times that delimiter must be seen to close it (more than one
// only for so'ehai), and where the quoted content begins.
type delimitedQuoteState struct {
	howMany               int
	initiatorSpan         span.Span
	startingDelimiterSpan span.Span
	contentStart          span.Location
}

// Lexer turns a Decomposer's word stream into classified Tokens. It
// implements Go's fused-iterator idiom: once Next reports no more tokens
// (or Err returns non-nil), every subsequent call keeps reporting the same.
type Lexer struct {
	words *decompose.Decomposer
	input string

	kind stateKind
	err  error

	dq *delimitedQuoteState

	oneToken Token
	oneDQ    *delimitedQuoteState

	pauseInitiator span.Span
}

// New returns a Lexer over the full extent of input.
func New(input string) *Lexer {
	return &Lexer{words: decompose.New(input), input: input, kind: stateNormal}
}

// Err returns the error that stopped lexing, if any. It is only
// meaningful after Next has returned false.
func (l *Lexer) Err() error {
	return l.err
}

// Next returns the next token, or false once the input is exhausted or an
// error occurred (check Err to distinguish the two).
func (l *Lexer) Next() (Token, bool) {
	switch l.kind {
	case stateDone, stateErrored:
		return Token{}, false
	case stateOneMoreTokenThen:
		return l.nextOneMoreTokenThen()
	case stateDelimitedQuote:
		return l.nextDelimitedQuote()
	case statePauseDelimitedQuote:
		return l.nextPauseDelimitedQuote()
	default:
		return l.nextNormal()
	}
}

func (l *Lexer) fail(err error) (Token, bool) {
	l.err = err
	l.kind = stateErrored
	return Token{}, false
}

func (l *Lexer) nextOneMoreTokenThen() (Token, bool) {
	tok := l.oneToken
	if l.oneDQ != nil {
		l.dq = l.oneDQ
		l.kind = stateDelimitedQuote
	} else {
		l.kind = stateNormal
	}
	return tok, true
}

func (l *Lexer) nextNormal() (Token, bool) {
	wordSpan, ok := l.words.Next()
	if !ok {
		l.kind = stateDone
		return Token{}, false
	}
	text, _ := wordSpan.Slice(l.input)
	sel, experimental := selmaho.Classify(text)
	tok := Token{Selmaho: sel, Span: wordSpan, Experimental: experimental}

	switch sel {
	case selmaho.Zoi, selmaho.Muhoi, selmaho.Sohehai:
		return l.startDelimitedQuote(tok)
	case selmaho.Mehoi, selmaho.Zohoi, selmaho.Dohoi:
		l.kind = statePauseDelimitedQuote
		l.pauseInitiator = wordSpan
		return tok, true
	default:
		l.kind = stateNormal
		return tok, true
	}
}

func (l *Lexer) startDelimitedQuote(initiatorTok Token) (Token, bool) {
	howMany := 1
	if initiatorTok.Selmaho == selmaho.Sohehai {
		howMany = 2
	}
	delimSpan, ok := l.words.Next()
	if !ok {
		return l.fail(&Error{Kind: DelimitedQuoteMissingSeparator, InitiatorSpan: initiatorTok.Span})
	}
	l.oneToken = Token{Selmaho: selmaho.ZoiDelimiter, Span: delimSpan}
	l.oneDQ = &delimitedQuoteState{
		howMany:               howMany,
		initiatorSpan:         initiatorTok.Span,
		startingDelimiterSpan: delimSpan,
		contentStart:          delimSpan.End,
	}
	l.kind = stateOneMoreTokenThen
	return initiatorTok, true
}

func (l *Lexer) nextDelimitedQuote() (Token, bool) {
	dq := l.dq
	// The content runs from the first raw word after the starting delimiter
	// to the end of the last raw word before the closing one, so pauses
	// next to either delimiter are not part of it.
	seen := false
	var contentEnd span.Location
	for {
		wordSpan, ok := l.words.NextNoDecomposition()
		if !ok {
			return l.fail(&Error{
				Kind:                  DelimitedQuoteUnclosed,
				InitiatorSpan:         dq.initiatorSpan,
				StartingDelimiterSpan: dq.startingDelimiterSpan,
			})
		}
		wordText, _ := wordSpan.Slice(l.input)
		delimiterText, _ := dq.startingDelimiterSpan.Slice(l.input)
		if !delimitersEqual(wordText, delimiterText) {
			if !seen {
				dq.contentStart = wordSpan.Start
				seen = true
			}
			contentEnd = wordSpan.End
			continue
		}

		dq.howMany--
		if dq.howMany > 0 {
			continue
		}

		closing := Token{Selmaho: selmaho.ZoiDelimiter, Span: wordSpan}
		if seen && dq.contentStart < contentEnd {
			content := Token{
				Selmaho: selmaho.AnyText,
				Span:    span.Span{Start: dq.contentStart, End: contentEnd},
			}
			l.oneToken = closing
			l.oneDQ = nil
			l.kind = stateOneMoreTokenThen
			return content, true
		}
		l.kind = stateNormal
		return closing, true
	}
}

func (l *Lexer) nextPauseDelimitedQuote() (Token, bool) {
	quoted, ok := l.words.NextNoDecomposition()
	if !ok {
		return l.fail(&Error{Kind: PauseDelimitedQuoteEof, InitiatorSpan: l.pauseInitiator})
	}
	l.kind = stateNormal
	return Token{Selmaho: selmaho.AnyText, Span: quoted}, true
}

// delimitersEqual compares two candidate delimiter words the way the
// quote-closing check does: commas are invisible, and 'h' is folded to
// the apostrophe it conventionally stands in for, so "zoihoi" and
// "zoi'oi" are treated as the same delimiter.
func delimitersEqual(a, b string) bool {
	return normalizeDelimiter(a) == normalizeDelimiter(b)
}

func normalizeDelimiter(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ',':
			continue
		case 'h', 'H':
			sb.WriteByte('\'')
		default:
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
