// Package decompose splits unbroken runs of Lojban text into individual
// words. Lojban's morphology is self-delimiting: words can in principle run
// together without whitespace (e.g. "minajimpe" is "mi na jimpe" written
// solid), so splitting on whitespace alone is not enough. The Decomposer
// instead uses internal/morph's word-shape rules to find word boundaries,
// falling back to whitespace/punctuation only as hard separators between
// runs.
package decompose

import (
	"strings"

	"github.com/mattfbacon/sneturfahi/internal/invariant"
	"github.com/mattfbacon/sneturfahi/internal/morph"
	"github.com/mattfbacon/sneturfahi/internal/span"
)

// hardSeparators is the exact set of bytes that always end a word, no
// matter what morphological shape would otherwise continue.
const hardSeparators = ".\t\n\r?! "

func isHardSeparator(b byte) bool {
	return strings.IndexByte(hardSeparators, b) >= 0
}

// state distinguishes whether the Decomposer is mid-way through peeling a
// chunk it has already committed to splitting (Decomposing), or needs to
// find and evaluate the next chunk from scratch (Normal).
type state int

const (
	stateNormal state = iota
	stateDecomposing
)

// Decomposer yields the words of a piece of Lojban text one at a time,
// splitting unbroken runs by morphological shape rather than whitespace.
type Decomposer struct {
	input string
	rest  string
	state state
	// chunkRest holds the unconsumed tail of the current hard-separator
	// delimited chunk while state is stateDecomposing.
	chunkRest string
}

// New returns a Decomposer over the full extent of input.
func New(input string) *Decomposer {
	return &Decomposer{input: input, rest: input, state: stateNormal}
}

// Done reports whether the decomposer has no more words to yield.
func (d *Decomposer) Done() bool {
	if d.state == stateDecomposing {
		return false
	}
	return trimHardSeparators(d.rest) == ""
}

// Next returns the span of the next word, and whether one was found.
func (d *Decomposer) Next() (span.Span, bool) {
	switch d.state {
	case stateDecomposing:
		return d.nextFromChunk()
	default:
		return d.nextFromInput()
	}
}

func (d *Decomposer) nextFromInput() (span.Span, bool) {
	d.rest = trimHardSeparators(d.rest)
	if d.rest == "" {
		return span.Span{}, false
	}
	chunk, afterChunk := splitAtHardSeparator(d.rest)
	d.rest = afterChunk
	d.chunkRest = chunk
	return d.nextFromChunk()
}

func (d *Decomposer) nextFromChunk() (span.Span, bool) {
	// A chunk, or the tail of one, made of nothing but commas holds no word.
	if strings.Trim(d.chunkRest, ",") == "" {
		d.state = stateNormal
		return d.nextFromInput()
	}

	word, afterWord := decomposeSingle(d.chunkRest)
	invariant.Invariant(len(word) > 0, "decomposeSingle must peel a non-empty word from a non-empty chunk")
	invariant.Invariant(len(word)+len(afterWord) == len(d.chunkRest), "decomposeSingle must partition its input exactly")

	// d.rest already holds the text after the whole chunk, so the chunk's
	// unconsumed tail starts len(d.rest)+len(d.chunkRest) bytes before the end.
	start := len(d.input) - len(d.rest) - len(d.chunkRest)
	end := start + len(word)

	d.chunkRest = afterWord
	if strings.Trim(d.chunkRest, ",") == "" {
		d.state = stateNormal
	} else {
		d.state = stateDecomposing
	}
	return span.Span{Start: span.Location(start), End: span.Location(end)}, true
}

// NextNoDecomposition yields the next raw, whitespace/pause-delimited
// chunk of text without running the word-peeling loop at all. The lexer
// uses this exclusively while inside a quoted region (zoi/la'o/me'oi and
// friends), where the quoted text must be returned verbatim rather than
// parsed into Lojban words. Each call first skips the single separator
// that ended the previous word, then returns the text up to the next
// separator; the returned span is empty when that skipped separator is
// immediately followed by another one.
func (d *Decomposer) NextNoDecomposition() (span.Span, bool) {
	// Abandon any in-progress chunk decomposition: once the lexer asks for
	// raw chunks it is inside a quote and has already consumed everything
	// up to its current position via ordinary Next calls.
	d.state = stateNormal

	start := len(d.input) - len(d.rest)
	if d.rest == "" {
		return span.Span{Start: span.Location(start), End: span.Location(start)}, false
	}
	if isHardSeparator(d.rest[0]) {
		d.rest = d.rest[1:]
		start++
	}

	i := 0
	for i < len(d.rest) && !isHardSeparator(d.rest[i]) {
		i++
	}
	end := start + i
	d.rest = d.rest[i:]
	return span.Span{Start: span.Location(start), End: span.Location(end)}, true
}

func trimHardSeparators(s string) string {
	i := 0
	for i < len(s) && isHardSeparator(s[i]) {
		i++
	}
	return s[i:]
}

func splitAtHardSeparator(s string) (chunk, rest string) {
	i := 0
	for i < len(s) && !isHardSeparator(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// decomposeSingle peels exactly one Lojban word from the front of chunk
// (which by construction contains no hard separators), returning the word
// and what remains of the chunk.
//
// It uses a tentative-peel-then-commit strategy: it first finds the
// longest candidate word shape without paying for post_word's full check,
// then commits to that peel only if either (a) peeling leaves nothing but
// commas in the chunk (post_word trivially holds, since a hard separator or
// end of input follows), or (b) a further word can be peeled from what's
// left. If neither holds, the rest of the chunk cannot be validly split
// off from this candidate, so the whole chunk is returned as one word
// (e.g. "tosymabru" is not split into "to" + "symabru").
func decomposeSingle(chunk string) (word string, rest string) {
	candidateRest, ok := bestWordShape(chunk)
	if !ok {
		return chunk, ""
	}

	peeled := chunk[:len(chunk)-len(candidateRest)]
	if candidateRest == "" {
		return peeled, ""
	}
	if strings.Trim(candidateRest, ",") == "" {
		return peeled, candidateRest
	}
	if _, ok := bestWordShape(candidateRest); ok {
		return peeled, candidateRest
	}
	return chunk, ""
}

// bestWordShape finds the longest prefix of input that matches some
// Lojban word shape (cmevla, brivla, or cmavo), without requiring a
// trailing post_word check -- the caller is responsible for deciding
// whether the resulting split point is actually valid.
func bestWordShape(input string) (rest string, ok bool) {
	candidates := []morph.MatchResult{
		morph.Cmevla(input),
		morph.BrivlaMinimal(input),
		morph.CmavoFormMinimal(input),
	}
	found := false
	best := input
	for _, r := range candidates {
		if !r.Ok {
			continue
		}
		if !found || len(r.Rest) < len(best) {
			best = r.Rest
			found = true
		}
	}
	return best, found
}
