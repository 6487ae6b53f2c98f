package cst

import (
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// Sumti variants, grounded on original_source's Sumti/Sumti1-4/
// SumtiComponent/SumtiComponent1/NoiRelativeClause/GoiRelativeClause/
// LohuSumti/ZoiSumti/ModifiedSumti/GadriSumti/VuhoRelative/Li
// (rules/mod.rs). "sei" discursives, vocatives, and the full mekso
// operator/expression grammar are out of scope for this pass; see
// DESIGN.md.

// Sumti is an argument: a core component, any trailing relative clauses
// ("noi"/"goi"), and an optional trailing "vu'o"-introduced relative that
// attaches to the whole sumti rather than to the immediately preceding
// component.
type Sumti struct {
	Core         SumtiCore
	Relative     *RelativeClauses
	VuhoRelative *VuhoRelative
}

// SumtiCore is one of the sumti variants this grammar recognizes.
type SumtiCore struct {
	Koha       *lexer.Token
	Cmevla     []lexer.Token // "la" followed by one or more name words
	Described  *DescribedSumti
	Quoted     *lexer.Token // "zo" followed by the quoted word
	Text       *Root        // "lu" ... "li'u", an embedded quoted text
	Zoi        *ZoiSumti
	RawWords   *LohuSumti
	Modified   *ModifiedSumti
	Lerfu      *LerfuString
	Quantified *QuantifiedSumti // "re do": a quantifier over a nested component
	Shorthand  *SelbriShorthand // "ci gerku": a quantifier directly over a selbri
	Li         *LiSumti         // "li pa": a mekso operand turned into a sumti
}

// VuhoRelative is a "vu'o"-introduced relative clause group that attaches
// to an entire sumti rather than to one of its components.
type VuhoRelative struct {
	Vuho      lexer.Token
	Relatives RelativeClauses
}

func parseVuhoRelative(input []lexer.Token) Result[VuhoRelative] {
	vuho := Token(selmaho.Vuho)(input)
	if !vuho.Ok {
		return fail[VuhoRelative](input)
	}
	relatives := Cut(parseRelativeClauses)(vuho.Rest)
	if !relatives.Ok {
		return fatal[VuhoRelative](input)
	}
	return ok(VuhoRelative{Vuho: vuho.Value, Relatives: relatives.Value}, relatives.Rest)
}

// LiSumti is "li" followed by a mekso operand (a bare number or lerfu
// string) and an optional closing "lo'o", converting a mathematical
// expression into a sumti.
type LiSumti struct {
	Li      lexer.Token
	Operand MeksoOperand
	Loho    *lexer.Token
}

func parseLiSumti(input []lexer.Token) Result[LiSumti] {
	li := Token(selmaho.Li)(input)
	if !li.Ok {
		return fail[LiSumti](input)
	}
	operand := Cut(parseMeksoOperand)(li.Rest)
	if !operand.Ok {
		return fatal[LiSumti](input)
	}
	loho := Opt(Token(selmaho.Loho))(operand.Rest)
	return ok(LiSumti{Li: li.Value, Operand: operand.Value, Loho: loho.Value}, loho.Rest)
}

// DescribedSumti is a gadri-introduced sumti: la/le/lo etc. plus an
// optional quantifier and either a selbri description or a nested sumti
// ("le re do").
type DescribedSumti struct {
	Gadri      lexer.Token
	Quantifier *Quantifier
	Selbri     *Selbri
	Inner      *Sumti
	Ku         *lexer.Token
}

// ZoiSumti is a "zoi"-delimited raw-text sumti, e.g. `zoi gy. ... gy.`.
type ZoiSumti struct {
	Zoi    lexer.Token
	Delim1 lexer.Token
	Text   *lexer.Token
	Delim2 lexer.Token
}

// LohuSumti is a "lo'u ... le'u" raw-word-list sumti: the enclosed tokens
// are taken verbatim, not parsed as sumti/selbri grammar.
type LohuSumti struct {
	Lohu  lexer.Token
	Inner []lexer.Token
	Lehu  lexer.Token
}

// ModifiedSumti is a "la'e"/"lu'e"/"tu'a"- or "nahe bo"-modified sumti.
type ModifiedSumti struct {
	Lahe  *lexer.Token
	Nahe  *lexer.Token
	Bo    *lexer.Token
	Sumti Sumti
	Luhu  *lexer.Token
}

// QuantifiedSumti is a bare quantifier directly over another sumti
// component, e.g. the "re" in "re do".
type QuantifiedSumti struct {
	Quantifier Quantifier
	Inner      *SumtiCore
}

// SelbriShorthand is a quantifier applied directly to a selbri with no
// gadri, e.g. "ci gerku" ("three dogs", short for "ci lo gerku").
type SelbriShorthand struct {
	Quantifier Quantifier
	Selbri     Selbri
	Ku         *lexer.Token
}

func parseSumti(input []lexer.Token) Result[Sumti] {
	core := parseSumtiCore(input)
	if !core.Ok {
		if core.Fatal {
			return fatal[Sumti](input)
		}
		return fail[Sumti](input)
	}
	relative := Opt(parseRelativeClauses)(core.Rest)
	vuho := Opt(parseVuhoRelative)(relative.Rest)
	return ok(Sumti{Core: core.Value, Relative: relative.Value, VuhoRelative: vuho.Value}, vuho.Rest)
}

func parseSumtiCore(input []lexer.Token) Result[SumtiCore] {
	if r := Token(selmaho.Koha)(input); r.Ok {
		tok := r.Value
		return ok(SumtiCore{Koha: &tok}, r.Rest)
	}

	if r := Tuple2(Token(selmaho.La), Many1(Token(selmaho.Cmevla)))(input); r.Ok {
		return ok(SumtiCore{Cmevla: r.Value.B}, r.Rest)
	}

	if r := Tuple2(Token(selmaho.Zo), takeAnyToken)(input); r.Ok {
		tok := r.Value.B
		return ok(SumtiCore{Quoted: &tok}, r.Rest)
	}

	if r := parseZoiSumti(input); r.Ok {
		return ok(SumtiCore{Zoi: &r.Value}, r.Rest)
	}

	if r := Tuple2(Token(selmaho.Lu), Cut(parseRoot))(input); r.Ok {
		text := r.Value.B
		end := Opt(Token(selmaho.Lihu))(r.Rest)
		return ok(SumtiCore{Text: &text}, end.Rest)
	} else if r.Fatal {
		return fatal[SumtiCore](input)
	}

	if r := parseLohuSumti(input); r.Ok {
		return ok(SumtiCore{RawWords: &r.Value}, r.Rest)
	} else if r.Fatal {
		return fatal[SumtiCore](input)
	}

	if r := parseModifiedSumti(input); r.Ok {
		return ok(SumtiCore{Modified: &r.Value}, r.Rest)
	} else if r.Fatal {
		return fatal[SumtiCore](input)
	}

	if r := parseDescribedSumti(input); r.Ok {
		return ok(SumtiCore{Described: &r.Value}, r.Rest)
	}

	if r := parseLiSumti(input); r.Ok {
		return ok(SumtiCore{Li: &r.Value}, r.Rest)
	} else if r.Fatal {
		return fatal[SumtiCore](input)
	}

	if r := parseLerfuString(input); r.Ok {
		return ok(SumtiCore{Lerfu: &r.Value}, r.Rest)
	}

	// Quantified ("re do") is tried before Shorthand ("ci gerku"): both start
	// with a Quantifier, and trying the nested-component form first lets a
	// quantified pro-sumti/name/etc. win over mistakenly treating the
	// quantifier as the start of a bare-selbri shorthand.
	if r := parseQuantifiedSumti(input); r.Ok {
		return ok(SumtiCore{Quantified: &r.Value}, r.Rest)
	}

	if r := parseSelbriShorthand(input); r.Ok {
		return ok(SumtiCore{Shorthand: &r.Value}, r.Rest)
	}

	return fail[SumtiCore](input)
}

func parseZoiSumti(input []lexer.Token) Result[ZoiSumti] {
	zoi := Token(selmaho.Zoi)(input)
	if !zoi.Ok {
		return fail[ZoiSumti](input)
	}
	delim1 := Cut(Token(selmaho.ZoiDelimiter))(zoi.Rest)
	if !delim1.Ok {
		return fatal[ZoiSumti](input)
	}
	text := Opt(Token(selmaho.AnyText))(delim1.Rest)
	delim2 := Cut(Token(selmaho.ZoiDelimiter))(text.Rest)
	if !delim2.Ok {
		return fatal[ZoiSumti](input)
	}
	return ok(ZoiSumti{Zoi: zoi.Value, Delim1: delim1.Value, Text: text.Value, Delim2: delim2.Value}, delim2.Rest)
}

// parseLohuSumti scans verbatim until "le'u", grounded on the original's
// many_till(Parse::parse, Parse::parse)-then-cut shape: once "lo'u" has
// matched, running off the end of input without a closing "le'u" is a
// real syntax error, not a backtrackable mismatch.
func parseLohuSumti(input []lexer.Token) Result[LohuSumti] {
	lohu := Token(selmaho.Lohu)(input)
	if !lohu.Ok {
		return fail[LohuSumti](input)
	}
	rest := lohu.Rest
	var inner []lexer.Token
	for {
		if lehu := Token(selmaho.Lehu)(rest); lehu.Ok {
			return ok(LohuSumti{Lohu: lohu.Value, Inner: inner, Lehu: lehu.Value}, lehu.Rest)
		}
		if len(rest) == 0 {
			return fatal[LohuSumti](input)
		}
		inner = append(inner, rest[0])
		rest = rest[1:]
	}
}

func parseModifiedSumti(input []lexer.Token) Result[ModifiedSumti] {
	laheForm := func(input []lexer.Token) Result[ModifiedSumti] {
		lahe := Token(selmaho.Lahe)(input)
		if !lahe.Ok {
			return fail[ModifiedSumti](input)
		}
		return ok(ModifiedSumti{Lahe: &lahe.Value}, lahe.Rest)
	}
	naheBoForm := func(input []lexer.Token) Result[ModifiedSumti] {
		p := Tuple2(Token(selmaho.Nahe), Token(selmaho.Bo))(input)
		if !p.Ok {
			return fail[ModifiedSumti](input)
		}
		nahe, bo := p.Value.A, p.Value.B
		return ok(ModifiedSumti{Nahe: &nahe, Bo: &bo}, p.Rest)
	}
	prefix := Alt(laheForm, naheBoForm)(input)
	if !prefix.Ok {
		return fail[ModifiedSumti](input)
	}
	inner := Cut(parseSumti)(prefix.Rest)
	if !inner.Ok {
		return fatal[ModifiedSumti](input)
	}
	luhu := Opt(Token(selmaho.Luhu))(inner.Rest)
	m := prefix.Value
	m.Sumti = inner.Value
	m.Luhu = luhu.Value
	return ok(m, luhu.Rest)
}

func parseDescribedSumti(input []lexer.Token) Result[DescribedSumti] {
	gadri := Longest(Token(selmaho.La), Token(selmaho.Le))(input)
	if !gadri.Ok {
		return fail[DescribedSumti](input)
	}
	quant := Opt(parseQuantifier)(gadri.Rest)
	rest := quant.Rest

	selbriForm := Map(parseSelbri, func(s Selbri) DescribedSumti {
		return DescribedSumti{Gadri: gadri.Value, Quantifier: quant.Value, Selbri: &s}
	})
	sumtiForm := Map(parseSumti, func(s Sumti) DescribedSumti {
		return DescribedSumti{Gadri: gadri.Value, Quantifier: quant.Value, Inner: &s}
	})
	contents := Longest(selbriForm, sumtiForm)(rest)
	if !contents.Ok {
		return fatal[DescribedSumti](input)
	}
	ku := Opt(Token(selmaho.Ku))(contents.Rest)
	d := contents.Value
	d.Ku = ku.Value
	return ok(d, ku.Rest)
}

func parseQuantifiedSumti(input []lexer.Token) Result[QuantifiedSumti] {
	quant := parseQuantifier(input)
	if !quant.Ok {
		return fail[QuantifiedSumti](input)
	}
	inner := parseSumtiCore(quant.Rest)
	if !inner.Ok {
		return fail[QuantifiedSumti](input)
	}
	v := inner.Value
	return ok(QuantifiedSumti{Quantifier: quant.Value, Inner: &v}, inner.Rest)
}

func parseSelbriShorthand(input []lexer.Token) Result[SelbriShorthand] {
	quant := parseQuantifier(input)
	if !quant.Ok {
		return fail[SelbriShorthand](input)
	}
	selbri := Cut(parseSelbri)(quant.Rest)
	if !selbri.Ok {
		return fatal[SelbriShorthand](input)
	}
	ku := Opt(Token(selmaho.Ku))(selbri.Rest)
	return ok(SelbriShorthand{Quantifier: quant.Value, Selbri: selbri.Value, Ku: ku.Value}, ku.Rest)
}

// RelativeClauses is one or more trailing "noi"/"poi"/"goi"-class relative
// clauses attached to a sumti.
type RelativeClauses struct {
	Clauses []RelativeClause
}

// RelativeClause is a single relative clause: either a "noi"/"poi"
// incidental/restrictive clause wrapping a subsentence, or a "goi"/"pe"/
// "ne"-class clause wrapping a bound term.
type RelativeClause struct {
	Noi *NoiRelativeClause
	Goi *GoiRelativeClause
}

// NoiRelativeClause is "noi"/"poi" + a subsentence + optional "ku'o".
type NoiRelativeClause struct {
	Word  lexer.Token
	Inner Sentence
	Kuho  *lexer.Token
}

// GoiRelativeClause is "goi"/"ne"/"no'u"/"po'u"/"pe"/"po" + a bound term +
// optional "ge'u".
type GoiRelativeClause struct {
	Word lexer.Token
	Arg  Arg
	Gehu *lexer.Token
}

func parseRelativeClauses(input []lexer.Token) Result[RelativeClauses] {
	clauses := Many1(parseRelativeClause)(input)
	if !clauses.Ok {
		return fail[RelativeClauses](input)
	}
	return ok(RelativeClauses{Clauses: clauses.Value}, clauses.Rest)
}

func parseRelativeClause(input []lexer.Token) Result[RelativeClause] {
	noiForm := func(input []lexer.Token) Result[RelativeClause] {
		word := Token(selmaho.Noi)(input)
		if !word.Ok {
			return fail[RelativeClause](input)
		}
		inner := Cut(parseSentence)(word.Rest)
		if !inner.Ok {
			return fatal[RelativeClause](input)
		}
		kuho := Opt(Token(selmaho.Kuho))(inner.Rest)
		return ok(RelativeClause{Noi: &NoiRelativeClause{Word: word.Value, Inner: inner.Value, Kuho: kuho.Value}}, kuho.Rest)
	}
	goiForm := func(input []lexer.Token) Result[RelativeClause] {
		word := Token(selmaho.Goi)(input)
		if !word.Ok {
			return fail[RelativeClause](input)
		}
		arg := Cut(parseArg)(word.Rest)
		if !arg.Ok {
			return fatal[RelativeClause](input)
		}
		gehu := Opt(Token(selmaho.Gehu))(arg.Rest)
		return ok(RelativeClause{Goi: &GoiRelativeClause{Word: word.Value, Arg: arg.Value, Gehu: gehu.Value}}, gehu.Rest)
	}
	return Alt(noiForm, goiForm)(input)
}
