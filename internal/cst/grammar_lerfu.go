package cst

import (
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// Numbers and lerfu (letteral) words, grounded on original_source's
// Number/NumberRest/LerfuString/LerfuWord/Lerfu/BuLerfu and Quantifier
// (rules/mod.rs, tail section). The Mekso-operator and Lau/Tei compound
// lerfu-word forms are out of scope for this pass; see DESIGN.md.

// BuLerfu is the word immediately preceding one or more "bu" markers that
// turns it into a letteral, e.g. the "a" in "a bu". CLL requires that base
// word not itself belong to a selmaho that would make the construct
// ambiguous with editing/erasure commands; Postcond enforces that.
type BuLerfu struct {
	Token lexer.Token
}

func buLerfuOK(b BuLerfu) bool {
	switch b.Token.Selmaho {
	case selmaho.Bu, selmaho.Zei, selmaho.Si, selmaho.Su, selmaho.Sa, selmaho.Faho:
		return false
	default:
		return true
	}
}

var parseBuLerfu = Postcond(
	Map(takeAnyToken, func(t lexer.Token) BuLerfu { return BuLerfu{Token: t} }),
	buLerfuOK,
	"bu-construct base word belongs to a selmaho that cannot precede bu",
)

// BuLerfuConstruct is a BuLerfu base word followed by one or more "bu"
// markers (stacking "bu" spells out a compound letteral).
type BuLerfuConstruct struct {
	Word BuLerfu
	Bus  []lexer.Token
}

// Lerfu is a single letteral, either a "bu"-construct or a bare BY-class
// lerfu word (by, jy, ...).
type Lerfu struct {
	Bu *BuLerfuConstruct
	By *lexer.Token
}

func parseLerfu(input []lexer.Token) Result[Lerfu] {
	buForm := func(input []lexer.Token) Result[Lerfu] {
		word := parseBuLerfu(input)
		if !word.Ok {
			return fail[Lerfu](input)
		}
		bus := Many1(Token(selmaho.Bu))(word.Rest)
		if !bus.Ok {
			return fail[Lerfu](input)
		}
		return ok(Lerfu{Bu: &BuLerfuConstruct{Word: word.Value, Bus: bus.Value}}, bus.Rest)
	}
	byForm := Map(Token(selmaho.By), func(t lexer.Token) Lerfu { return Lerfu{By: &t} })
	return Alt(buForm, byForm)(input)
}

// LerfuWord wraps a Lerfu; the Lau- and Tei-prefixed compound forms CLL
// also defines are not modeled here.
type LerfuWord struct {
	Lerfu Lerfu
}

func parseLerfuWord(input []lexer.Token) Result[LerfuWord] {
	r := parseLerfu(input)
	if !r.Ok {
		return fail[LerfuWord](input)
	}
	return ok(LerfuWord{Lerfu: r.Value}, r.Rest)
}

// NumberRest is one continuation digit of a Number or LerfuString: either
// another PA digit, or a lerfu word (letterals can follow digits, as in
// subscripts and lerfu-mixed pro-sumti like "bycy").
type NumberRest struct {
	Pa    *lexer.Token
	Lerfu *LerfuWord
}

func parseNumberRest(input []lexer.Token) Result[NumberRest] {
	paForm := Map(Token(selmaho.Pa), func(t lexer.Token) NumberRest { return NumberRest{Pa: &t} })
	lerfuForm := Map(parseLerfuWord, func(l LerfuWord) NumberRest { return NumberRest{Lerfu: &l} })
	return Alt(paForm, lerfuForm)(input)
}

// Number is a PA digit followed by zero or more continuation digits.
type Number struct {
	First lexer.Token
	Rest  []NumberRest
}

func parseNumber(input []lexer.Token) Result[Number] {
	first := Token(selmaho.Pa)(input)
	if !first.Ok {
		return fail[Number](input)
	}
	rest := Many0(parseNumberRest)(first.Rest)
	return ok(Number{First: first.Value, Rest: rest.Value}, rest.Rest)
}

// LerfuString is a lerfu word followed by zero or more continuation
// digits/lerfu, e.g. the letteral pro-sumti "bycy".
type LerfuString struct {
	First LerfuWord
	Rest  []NumberRest
}

func parseLerfuString(input []lexer.Token) Result[LerfuString] {
	first := parseLerfuWord(input)
	if !first.Ok {
		return fail[LerfuString](input)
	}
	rest := Many0(parseNumberRest)(first.Rest)
	return ok(LerfuString{First: first.Value, Rest: rest.Value}, rest.Rest)
}

// Quantifier is a bare number used as a sumti quantifier, e.g. the "ci" in
// "ci gerku" or "su'o ci cutci". The mekso-expression quantifier form
// ("pa vei ... ve'o") is out of scope for this pass.
type Quantifier struct {
	Number Number
	Boi    *lexer.Token
}

func parseQuantifier(input []lexer.Token) Result[Quantifier] {
	num := parseNumber(input)
	if !num.Ok {
		return fail[Quantifier](input)
	}
	// Not guards against swallowing a number that's actually the start of a
	// "<number> moi" selbri (TanruUnit2's MoiNumber form): a Quantifier must
	// not be immediately followed by "moi".
	notMoi := Not(Token(selmaho.Moi))(num.Rest)
	if !notMoi.Ok {
		return fail[Quantifier](input)
	}
	boi := Opt(Token(selmaho.Boi))(notMoi.Rest)
	return ok(Quantifier{Number: num.Value, Boi: boi.Value}, boi.Rest)
}

// MeksoOperand is the bare number/lerfu-string operand this pass supports
// wherever the grammar references a mekso expression (a "li" sumti, a
// "nu'a" selbri-from-operator conversion). The full mekso grammar
// (infixed/prefixed VUhU operators, parenthesized sub-expressions) is out
// of scope for this pass; see DESIGN.md.
type MeksoOperand struct {
	Number *Number
	Lerfu  *LerfuString
}

func parseMeksoOperand(input []lexer.Token) Result[MeksoOperand] {
	numberForm := Map(parseNumber, func(n Number) MeksoOperand { return MeksoOperand{Number: &n} })
	lerfuForm := Map(parseLerfuString, func(l LerfuString) MeksoOperand { return MeksoOperand{Lerfu: &l} })
	return Longest(numberForm, lerfuForm)(input)
}
