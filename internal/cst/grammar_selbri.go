package cst

import (
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// The selbri precedence ladder, grounded on original_source's
// parse/cst/rules/mod.rs Selbri1-Selbri5/TanruUnit/TanruUnit1/TanruUnit2/
// BoundArguments. Binding gets tighter going down: "co" conversion groups
// loosest, then tanru juxtaposition, then joik/jek connection, then
// bo-chaining, then individual tanru units (with their jai/se/nahe
// prefixes, "ke...ke'e" grouping, and "be...bei...be'o" bound arguments).
// Guhek forethought selbri groups ("ganai broda gi brode") are out of
// scope for this pass; see DESIGN.md.

// Selbri is the top of the ladder: one or more co-conversion groups.
type Selbri struct {
	Groups []Selbri2
	Cos    []lexer.Token
}

// Selbri2 is tanru juxtaposition: a run of connected selbri chained
// without any overt connective, e.g. "melbi cmalu nixli ckule".
type Selbri2 struct {
	Units []Selbri3
}

// Selbri3 is a run of Selbri4 joined by joik/jek connectives, e.g.
// "barda je xunre gerku".
type Selbri3 struct {
	Items []Selbri4
	Conns []JoikJek
}

// Selbri4 is a run of Selbri5 joined by "bo", optionally through a
// joik/jek connective and/or a tense/modal tag, e.g. "cmalu bo nixli".
type Selbri4 struct {
	Items []Selbri5
	Conns []BoConnective
}

// BoConnective is the connective attached to a "bo" join.
type BoConnective struct {
	Joik *JoikJek
	Tag  *TagWords
	Bo   lexer.Token
}

// Selbri5 passes through to the tanru-unit chain; it exists as a distinct
// rung because the full grammar also allows a forethought guhek group
// here, which this implementation does not model.
type Selbri5 struct {
	Inner TanruUnit
}

// TanruUnit is a run of TanruUnit1 joined by "cei" (the naming
// construct), e.g. "broda cei brode".
type TanruUnit struct {
	Items []TanruUnit1
	Ceis  []lexer.Token
}

// TanruUnit1 is one tanru unit with its leading conversion prefixes (jai/
// nahe/se) and an optional bound-argument suffix.
type TanruUnit1 struct {
	Prefixes []TanruUnitPrefix
	Inner    TanruUnit2
	Bound    *BoundArguments
}

// TanruUnitPrefix is one "jai"(+tag)/"nahe"/"se" conversion prefix.
type TanruUnitPrefix struct {
	Jai    *lexer.Token
	JaiTag *TagWords
	Nahe   *lexer.Token
	Se     *lexer.Token
}

// TanruUnit2 is the innermost selbri unit: a parenthesized group, a bare
// brivla/goha word, a number converted to a selbri with "moi", a sumti
// converted to a selbri with "me"/"me'u", a nested abstraction ("nu"...
// "kei"), or a mekso operator converted to a selbri with "nu'a".
type TanruUnit2 struct {
	Grouped *Selbri2
	Kehe    *lexer.Token
	Word    *lexer.Token
	Moi     *MoiNumber
	Me      *MeConversion
	Nu      *NuAbstraction
	Nuha    *NuhaConversion
}

// MeConversion is a sumti converted into a selbri with "me", e.g.
// "me la djan" ("to be [related to/fitting the description] John").
type MeConversion struct {
	Me    lexer.Token
	Inner Sumti
	Mehu  *lexer.Token
	Moi   *lexer.Token
}

// NuAbstraction is an abstraction selbri: "nu" (optionally chained with
// further NU-class words through a joik/jek) wrapping an inner bridi, e.g.
// "nu mi klama" ("the event of my going").
type NuAbstraction struct {
	Nus   []lexer.Token
	Joins []JoikJek
	Inner Sentence
	Kei   *lexer.Token
}

// NuhaConversion is a mekso operator converted into a selbri with "nu'a",
// e.g. "nu'a su'i" ("to be the sum of").
type NuhaConversion struct {
	Nuha     lexer.Token
	Operator lexer.Token
}

// MoiNumber is a number converted into a selbri, e.g. "pamoi".
type MoiNumber struct {
	Number Number
	Moi    lexer.Token
}

// BoundArguments is the "be ... bei ... be'o" suffix that attaches
// arguments directly to a tanru unit, e.g. "klama be le zarci".
type BoundArguments struct {
	Be   lexer.Token
	Args []Arg
	Beho *lexer.Token
}

func parseSelbri(input []lexer.Token) Result[Selbri] {
	groups := SeparatedBy(parseSelbri2, Token(selmaho.Co))(input)
	if !groups.Ok {
		return fail[Selbri](input)
	}
	return ok(Selbri{Groups: groups.Value.Items, Cos: groups.Value.Seps}, groups.Rest)
}

func parseSelbri2(input []lexer.Token) Result[Selbri2] {
	units := Many1(parseSelbri3)(input)
	if !units.Ok {
		return fail[Selbri2](input)
	}
	return ok(Selbri2{Units: units.Value}, units.Rest)
}

func parseSelbri3(input []lexer.Token) Result[Selbri3] {
	s := SeparatedBy(parseSelbri4, parseJoikJek)(input)
	if !s.Ok {
		return fail[Selbri3](input)
	}
	return ok(Selbri3{Items: s.Value.Items, Conns: s.Value.Seps}, s.Rest)
}

func parseSelbri4(input []lexer.Token) Result[Selbri4] {
	s := SeparatedBy(parseSelbri5, parseBoConnective)(input)
	if !s.Ok {
		return fail[Selbri4](input)
	}
	return ok(Selbri4{Items: s.Value.Items, Conns: s.Value.Seps}, s.Rest)
}

func parseBoConnective(input []lexer.Token) Result[BoConnective] {
	joik := Opt(parseJoikJek)(input)
	rest := joik.Rest
	tag := Opt(parseTagWords)(rest)
	rest = tag.Rest
	bo := Token(selmaho.Bo)(rest)
	if !bo.Ok {
		return fail[BoConnective](input)
	}
	return ok(BoConnective{Joik: joik.Value, Tag: tag.Value, Bo: bo.Value}, bo.Rest)
}

func parseSelbri5(input []lexer.Token) Result[Selbri5] {
	inner := parseTanruUnit(input)
	if !inner.Ok {
		return fail[Selbri5](input)
	}
	return ok(Selbri5{Inner: inner.Value}, inner.Rest)
}

func parseTanruUnit(input []lexer.Token) Result[TanruUnit] {
	s := SeparatedBy(parseTanruUnit1, Token(selmaho.Cei))(input)
	if !s.Ok {
		return fail[TanruUnit](input)
	}
	return ok(TanruUnit{Items: s.Value.Items, Ceis: s.Value.Seps}, s.Rest)
}

func parseTanruUnit1(input []lexer.Token) Result[TanruUnit1] {
	prefixes := Many0(parseTanruUnitPrefix)(input)
	rest := prefixes.Rest

	inner := parseTanruUnit2(rest)
	if !inner.Ok {
		return fail[TanruUnit1](input)
	}
	rest = inner.Rest

	bound := Opt(parseBoundArguments)(rest)
	rest = bound.Rest

	return ok(TanruUnit1{Prefixes: prefixes.Value, Inner: inner.Value, Bound: bound.Value}, rest)
}

func parseTanruUnitPrefix(input []lexer.Token) Result[TanruUnitPrefix] {
	jaiForm := func(input []lexer.Token) Result[TanruUnitPrefix] {
		jai := Token(selmaho.Jai)(input)
		if !jai.Ok {
			return fail[TanruUnitPrefix](input)
		}
		tag := Opt(parseTagWords)(jai.Rest)
		return ok(TanruUnitPrefix{Jai: &jai.Value, JaiTag: tag.Value}, tag.Rest)
	}
	naheForm := Map(Token(selmaho.Nahe), func(t lexer.Token) TanruUnitPrefix {
		return TanruUnitPrefix{Nahe: &t}
	})
	seForm := Map(Token(selmaho.Se), func(t lexer.Token) TanruUnitPrefix {
		return TanruUnitPrefix{Se: &t}
	})
	// MustConsume guards this alternation: every branch above always
	// consumes at least one token when it matches, but wrapping the whole
	// thing documents and enforces that Many0's caller never mistakes a
	// zero-width "prefix" for "no prefix here".
	return MustConsume(Alt(jaiForm, naheForm, seForm))(input)
}

func parseTanruUnit2(input []lexer.Token) Result[TanruUnit2] {
	groupForm := func(input []lexer.Token) Result[TanruUnit2] {
		ke := Token(selmaho.Ke)(input)
		if !ke.Ok {
			return fail[TanruUnit2](input)
		}
		inner := Cut(parseSelbri2)(ke.Rest)
		if !inner.Ok {
			return fatal[TanruUnit2](input)
		}
		kehe := Opt(Token(selmaho.Kehe))(inner.Rest)
		g := inner.Value
		return ok(TanruUnit2{Grouped: &g, Kehe: kehe.Value}, kehe.Rest)
	}
	moiForm := func(input []lexer.Token) Result[TanruUnit2] {
		num := parseNumber(input)
		if !num.Ok {
			return fail[TanruUnit2](input)
		}
		moi := Token(selmaho.Moi)(num.Rest)
		if !moi.Ok {
			return fail[TanruUnit2](input)
		}
		return ok(TanruUnit2{Moi: &MoiNumber{Number: num.Value, Moi: moi.Value}}, moi.Rest)
	}
	wordForm := Map(
		Longest(Token(selmaho.Gismu), Token(selmaho.Lujvo), Token(selmaho.Fuhivla), Token(selmaho.Goha)),
		func(t lexer.Token) TanruUnit2 { return TanruUnit2{Word: &t} },
	)
	meForm := func(input []lexer.Token) Result[TanruUnit2] {
		me := Token(selmaho.Me)(input)
		if !me.Ok {
			return fail[TanruUnit2](input)
		}
		inner := Cut(parseSumti)(me.Rest)
		if !inner.Ok {
			return fatal[TanruUnit2](input)
		}
		mehu := Opt(Token(selmaho.Mehu))(inner.Rest)
		moi := Opt(Token(selmaho.Moi))(mehu.Rest)
		return ok(TanruUnit2{Me: &MeConversion{Me: me.Value, Inner: inner.Value, Mehu: mehu.Value, Moi: moi.Value}}, moi.Rest)
	}
	nuForm := func(input []lexer.Token) Result[TanruUnit2] {
		nus := SeparatedBy(Token(selmaho.Nu), parseJoikJek)(input)
		if !nus.Ok {
			return fail[TanruUnit2](input)
		}
		inner := Cut(parseSentence)(nus.Rest)
		if !inner.Ok {
			return fatal[TanruUnit2](input)
		}
		kei := Opt(Token(selmaho.Kei))(inner.Rest)
		return ok(TanruUnit2{Nu: &NuAbstraction{
			Nus:   nus.Value.Items,
			Joins: nus.Value.Seps,
			Inner: inner.Value,
			Kei:   kei.Value,
		}}, kei.Rest)
	}
	nuhaForm := func(input []lexer.Token) Result[TanruUnit2] {
		nuha := Token(selmaho.Nuha)(input)
		if !nuha.Ok {
			return fail[TanruUnit2](input)
		}
		operator := Cut(Token(selmaho.Vuhu))(nuha.Rest)
		if !operator.Ok {
			return fatal[TanruUnit2](input)
		}
		return ok(TanruUnit2{Nuha: &NuhaConversion{Nuha: nuha.Value, Operator: operator.Value}}, operator.Rest)
	}
	return Alt(groupForm, moiForm, meForm, nuForm, nuhaForm, wordForm)(input)
}

func parseBoundArguments(input []lexer.Token) Result[BoundArguments] {
	be := Token(selmaho.Be)(input)
	if !be.Ok {
		return fail[BoundArguments](input)
	}
	args := Cut(SeparatedBy(parseArg, Token(selmaho.Bei)))(be.Rest)
	if !args.Ok {
		return fatal[BoundArguments](input)
	}
	beho := Opt(Token(selmaho.Beho))(args.Rest)
	return ok(BoundArguments{Be: be.Value, Args: args.Value.Items, Beho: beho.Value}, beho.Rest)
}

// JoikJek is a joik (je/ja-class logical, or interval) or jek connective,
// e.g. "je", "ja", "joi". The leading se and trailing nai are optional
// modifiers shared by both families.
type JoikJek struct {
	Se   *lexer.Token
	Word lexer.Token
	Nai  *lexer.Token
}

func parseJoikJek(input []lexer.Token) Result[JoikJek] {
	se := Opt(Token(selmaho.Se))(input)
	rest := se.Rest
	word := Longest(Token(selmaho.Joi), Token(selmaho.Ja))(rest)
	if !word.Ok {
		return fail[JoikJek](input)
	}
	rest = word.Rest
	nai := Opt(Token(selmaho.Nai))(rest)
	return ok(JoikJek{Se: se.Value, Word: word.Value, Nai: nai.Value}, nai.Rest)
}

// LeafTokens walks the precedence ladder and returns the brivla/goha
// leaf tokens in left-to-right order, for display and simple inspection.
func (s Selbri) LeafTokens() []lexer.Token {
	var out []lexer.Token
	for _, g := range s.Groups {
		out = append(out, g.leafTokens()...)
	}
	return out
}

func (s Selbri2) leafTokens() []lexer.Token {
	var out []lexer.Token
	for _, u := range s.Units {
		out = append(out, u.leafTokens()...)
	}
	return out
}

func (s Selbri3) leafTokens() []lexer.Token {
	var out []lexer.Token
	for _, i := range s.Items {
		out = append(out, i.leafTokens()...)
	}
	return out
}

func (s Selbri4) leafTokens() []lexer.Token {
	var out []lexer.Token
	for _, i := range s.Items {
		out = append(out, i.leafTokens()...)
	}
	return out
}

func (s Selbri5) leafTokens() []lexer.Token {
	return s.Inner.leafTokens()
}

func (t TanruUnit) leafTokens() []lexer.Token {
	var out []lexer.Token
	for _, i := range t.Items {
		out = append(out, i.leafTokens()...)
	}
	return out
}

func (t TanruUnit1) leafTokens() []lexer.Token {
	return t.Inner.leafTokens()
}

func (t TanruUnit2) leafTokens() []lexer.Token {
	switch {
	case t.Word != nil:
		return []lexer.Token{*t.Word}
	case t.Grouped != nil:
		return t.Grouped.leafTokens()
	case t.Moi != nil:
		return []lexer.Token{t.Moi.Moi}
	case t.Me != nil:
		return []lexer.Token{t.Me.Me}
	case t.Nu != nil:
		return t.Nu.Nus
	case t.Nuha != nil:
		return []lexer.Token{t.Nuha.Nuha, t.Nuha.Operator}
	default:
		return nil
	}
}
