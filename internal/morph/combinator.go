// Package morph implements the Lojban morpheme grammar: the rules that
// recognize gismu, lujvo, fuhivla, cmevla, and cmavo word shapes from raw
// text. It underlies internal/decompose, which uses these rules to find
// word boundaries inside unbroken runs of Lojban text.
package morph

// Parser recognizes a prefix of input. On success it returns the input
// with the matched prefix removed; on failure it returns input unchanged
// and ok is false. Parsers never partially consume on failure.
type Parser func(input string) (rest string, ok bool)

// seq runs parsers in order, threading the remaining input through each.
// It fails (consuming nothing overall) if any parser fails.
func seq(parsers ...Parser) Parser {
	return func(input string) (string, bool) {
		rest := input
		for _, p := range parsers {
			next, ok := p(rest)
			if !ok {
				return input, false
			}
			rest = next
		}
		return rest, true
	}
}

// or tries parsers in order and returns the first success (ordered choice,
// PEG-style — later alternatives are not tried once one succeeds).
func or(parsers ...Parser) Parser {
	return func(input string) (string, bool) {
		for _, p := range parsers {
			if rest, ok := p(input); ok {
				return rest, true
			}
		}
		return input, false
	}
}

// orLongest tries every parser against the same starting input and keeps
// whichever left the shortest remainder (i.e. consumed the most), breaking
// ties in favor of the earlier alternative.
func orLongest(parsers ...Parser) Parser {
	return func(input string) (string, bool) {
		best := input
		found := false
		for _, p := range parsers {
			rest, ok := p(input)
			if !ok {
				continue
			}
			if !found || len(rest) < len(best) {
				best = rest
				found = true
			}
		}
		return best, found
	}
}

// opt always succeeds. It consumes whatever p consumes if p succeeds,
// otherwise it consumes nothing.
func opt(p Parser) Parser {
	return func(input string) (string, bool) {
		if rest, ok := p(input); ok {
			return rest, true
		}
		return input, true
	}
}

// repeat applies p greedily and requires at least min successful
// applications.
func repeat(min int, p Parser) Parser {
	return func(input string) (string, bool) {
		rest := input
		count := 0
		for {
			next, ok := p(rest)
			if !ok || next == rest {
				break
			}
			rest = next
			count++
		}
		if count < min {
			return input, false
		}
		return rest, true
	}
}

// not is a negative lookahead: it succeeds without consuming input iff p
// fails on the current input.
func not(p Parser) Parser {
	return func(input string) (string, bool) {
		if _, ok := p(input); ok {
			return input, false
		}
		return input, true
	}
}

// peek is a positive lookahead: it succeeds without consuming input iff p
// succeeds.
func peek(p Parser) Parser {
	return func(input string) (string, bool) {
		if _, ok := p(input); ok {
			return input, true
		}
		return input, false
	}
}

// andPeek runs p, and on success additionally requires that lookahead
// succeeds against the remaining input (without consuming it).
func andPeek(p Parser, lookahead Parser) Parser {
	return func(input string) (string, bool) {
		rest, ok := p(input)
		if !ok {
			return input, false
		}
		if _, ok := lookahead(rest); !ok {
			return input, false
		}
		return rest, true
	}
}

// andNot runs p, and on success additionally requires that the negative
// lookahead succeeds (i.e. excluded does not match) against the remainder.
func andNot(p Parser, excluded Parser) Parser {
	return andPeek(p, not(excluded))
}

// eof succeeds only at the end of input.
func eof(input string) (string, bool) {
	if input == "" {
		return input, true
	}
	return input, false
}

// oneOf matches a single rune from chars, first skipping any number of
// commas (Lojban permits commas inside words as optional non-syllable
// boundary markers, and they carry no phonetic weight).
func oneOf(chars string) Parser {
	return func(input string) (string, bool) {
		rest := input
		for len(rest) > 0 && rest[0] == ',' {
			rest = rest[1:]
		}
		if rest == "" {
			return input, false
		}
		for i := 0; i < len(chars); i++ {
			if rest[0] == chars[i] {
				return rest[1:], true
			}
		}
		return input, false
	}
}

// literal matches an exact ASCII string byte for byte (case-sensitive, so
// "AI" and "ai" are different literals), skipping leading commas before
// each character the way oneOf does.
func literal(word string) Parser {
	parsers := make([]Parser, len(word))
	for i := 0; i < len(word); i++ {
		parsers[i] = oneOf(string(word[i]))
	}
	return seq(parsers...)
}

// succeededAndConsumedAll reports whether applying p to input consumes the
// entire string.
func succeededAndConsumedAll(p Parser, input string) bool {
	rest, ok := p(input)
	return ok && rest == ""
}
