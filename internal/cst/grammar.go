package cst

import (
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// This file implements the core CLL grammar shape named in the pipeline's
// design: Text -> Paragraphs -> Sentences -> a Selbri precedence ladder ->
// Sumti variants -> tense/modal tag words. The precedence ladder
// (Selbri1-Selbri5, TanruUnit, BoundArguments) and the tag-word/Sumti
// variants it drives are grounded on original_source's
// parse/cst/rules/mod.rs; the full mekso (mathematical expression) grammar
// beyond the MeksoOperand leaf, the full vocative/free-modifier system, and sentence-final
// "to...toi" comments are intentionally out of scope -- see DESIGN.md.

// Root is the top-level parse result.
type Root struct {
	Paragraphs []Paragraph
}

// Paragraph is a run of sentences separated by "i".
type Paragraph struct {
	Sentences []Sentence
}

// Sentence is a bridi: a set of leading terms, an optional run of sentence
// negation/tense prefixes, an optional "cu", a selbri, and trailing terms.
type Sentence struct {
	BeforeArgs []Arg
	Prefixes   []SentencePrefix // "na"/tense-tag run directly before the selbri
	Cu         *lexer.Token
	Selbri     *Selbri
	AfterArgs  []Arg
}

// SentencePrefix is one element of the "na pu na ca" style run that can
// precede a selbri: either the bare negator "na", or a tense/modal tag.
type SentencePrefix struct {
	Na  *lexer.Token
	Tag *TagWords
}

// Arg is a single term: a sumti, optionally preceded by a case tag (fa/fe/
// fi/fo/fu or a BAI tag).
type Arg struct {
	Tag   *ArgTag
	Sumti *Sumti
	Naku  bool // "na ku", negating the bridi rather than supplying a term
}

// ArgTag is the case/modal tag that can precede a sumti term.
type ArgTag struct {
	Fa  *lexer.Token // FA-class place tag (fa/fe/fi/fo/fu)
	Bai *TagWord     // BAI-class modal tag
}

// Parse parses a token slice into a Root. It requires the entire input to
// be consumed; leftover tokens are reported as a parse error at their
// position.
func Parse(tokens []lexer.Token) (*Root, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Kind: Empty}
	}
	r := parseRoot(tokens)
	if !r.Ok {
		return nil, errorAt(tokens, r.Rest, r.Err)
	}
	if len(r.Rest) != 0 {
		return nil, errorAt(tokens, r.Rest, nil)
	}
	v := r.Value
	return &v, nil
}

// errorAt builds the error reported at the top level. When cause is set, it
// is reported instead of the generic "expected X, got Y" shape. Parse passes
// parseRoot's Err as cause, but parseRoot is built on SeparatedBy, which does
// not carry an inner Err forward, so a Postcond rejection from deep in the
// grammar does not reach this point and Parse reports ExpectedGot.
func errorAt(all, rest []lexer.Token, cause *ParseError) error {
	loc := len(all) - len(rest)
	if cause != nil {
		err := *cause
		err.Location = loc
		return &err
	}
	if len(rest) == 0 {
		return &ParseError{Location: loc, Kind: ExpectedGot}
	}
	got := rest[0]
	return &ParseError{Location: loc, Kind: ExpectedGot, Got: &got}
}

func parseRoot(input []lexer.Token) Result[Root] {
	paragraphs := SeparatedBy(parseParagraph, Token(selmaho.I))
	return Map(paragraphs, func(s Separated[Paragraph, lexer.Token]) Root {
		return Root{Paragraphs: s.Items}
	})(input)
}

func parseParagraph(input []lexer.Token) Result[Paragraph] {
	sentences := SeparatedBy(parseSentence, Token(selmaho.I))
	return Map(sentences, func(s Separated[Sentence, lexer.Token]) Paragraph {
		return Paragraph{Sentences: s.Items}
	})(input)
}

func parseSentence(input []lexer.Token) Result[Sentence] {
	before := Many0(parseArg)(input)
	rest := before.Rest

	prefixes := Many0(parseSentencePrefix)(rest)
	rest = prefixes.Rest

	cuResult := Opt(Token(selmaho.Cu))(rest)
	rest = cuResult.Rest

	selbriResult := Opt(parseSelbri)(rest)
	rest = selbriResult.Rest

	after := Many0(parseArg)(rest)
	rest = after.Rest

	return ok(Sentence{
		BeforeArgs: before.Value,
		Prefixes:   prefixes.Value,
		Cu:         cuResult.Value,
		Selbri:     selbriResult.Value,
		AfterArgs:  after.Value,
	}, rest)
}

// parseSentencePrefix matches one element of a "na pu na ca" run. The Not
// guard stops a bare "na" from being read as the start of the "na ku" term
// negation (see parseArg), which can only occur where a term, not a tense
// prefix, is expected; Alt picks between the two prefix shapes.
func parseSentencePrefix(input []lexer.Token) Result[SentencePrefix] {
	naForm := Map(
		Tuple2(Token(selmaho.Na), Not(Token(selmaho.Ku))),
		func(p struct {
			A lexer.Token
			B struct{}
		}) SentencePrefix {
			tok := p.A
			return SentencePrefix{Na: &tok}
		},
	)
	tagForm := Map(parseTagWords, func(t TagWords) SentencePrefix {
		return SentencePrefix{Tag: &t}
	})
	return Alt(naForm, tagForm)(input)
}

func parseArg(input []lexer.Token) Result[Arg] {
	nakuResult := Tuple2(Token(selmaho.Na), Token(selmaho.Ku))(input)
	if nakuResult.Ok {
		return ok(Arg{Naku: true}, nakuResult.Rest)
	}

	tagResult := Opt(parseArgTag)(input)
	sumtiResult := parseSumti(tagResult.Rest)
	if !sumtiResult.Ok {
		return failErr[Arg](input, sumtiResult.Err)
	}
	return ok(Arg{Tag: tagResult.Value, Sumti: &sumtiResult.Value}, sumtiResult.Rest)
}

func parseArgTag(input []lexer.Token) Result[ArgTag] {
	faForm := Map(Token(selmaho.Fa), func(t lexer.Token) ArgTag { return ArgTag{Fa: &t} })
	baiForm := Map(parseTagWord(selmaho.Bai), func(t TagWord) ArgTag { return ArgTag{Bai: &t} })
	return Alt(faForm, baiForm)(input)
}

// takeAnyToken matches any single token, regardless of selmaho, used for
// "zo"'s quoted argument which can be any word at all.
func takeAnyToken(input []lexer.Token) Result[lexer.Token] {
	if len(input) == 0 {
		return fail[lexer.Token](input)
	}
	return ok(input[0], input[1:])
}
