package cst

import (
	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
)

// Tense/modal tag words, grounded on original_source's TagWord/TagWords/
// Time/Space (rules/mod.rs:390,422,457). A tag word is one cmavo from a
// tense-class selmaho (BAI, PU, VA, ZEhA, VEhA, VIhA, FAhA, FEhE, MOhI,
// CAhA) plus an optional trailing "nai". Time and Space compose several
// tag words into the compound tenses CLL describes ("pu za'u", "va'o ca'a",
// etc); both are syntactically permissive on their own (every field is
// optional) but semantically require at least one of their fields to be
// present, which is exactly what Postcond enforces below.

// TagWord is one tense/modal cmavo with its optional "nai".
type TagWord struct {
	Word lexer.Token
	Nai  *lexer.Token
}

func parseTagWord(sel selmaho.Selmaho) Parser[TagWord] {
	return func(input []lexer.Token) Result[TagWord] {
		word := Token(sel)(input)
		if !word.Ok {
			return fail[TagWord](input)
		}
		nai := Opt(Token(selmaho.Nai))(word.Rest)
		return ok(TagWord{Word: word.Value, Nai: nai.Value}, nai.Rest)
	}
}

// Time is a time-tense tag: an offset run (PU-class: pu/ca/ba), an
// optional duration (ZEhA-class), and an optional simple distance
// (ZI-class: zi/za/zu). At least one must be present.
type Time struct {
	Offsets  []TagWord
	Duration *TagWord
	Zi       *TagWord
}

func timeHasContent(t Time) bool {
	return len(t.Offsets) > 0 || t.Duration != nil || t.Zi != nil
}

func parseTimeRaw(input []lexer.Token) Result[Time] {
	offsets := Many0(parseTagWord(selmaho.Pu))(input)
	rest := offsets.Rest

	duration := Opt(parseTagWord(selmaho.Zeha))(rest)
	rest = duration.Rest

	zi := Opt(parseTagWord(selmaho.Zi))(rest)
	rest = zi.Rest

	return ok(Time{Offsets: offsets.Value, Duration: duration.Value, Zi: zi.Value}, rest)
}

// parseTime is Postcond-gated: CLL requires a Time tag to actually carry
// at least one of its fields, so an all-empty match (which the
// zero-or-more/optional shape above would otherwise accept) is rejected.
var parseTime = Postcond(parseTimeRaw, timeHasContent, "time tag with no offset, duration, or zi field")

// Space is a space-tense tag: an offset run (VA-class: va/vi/vu), an
// optional interval marker (VEhA/FEhE-class), an optional direction
// (VIhA-class), an optional distance (FAhA-class), and an optional motion
// marker (MOhI-class). At least one must be present.
type Space struct {
	Offsets   []TagWord
	Interval  *TagWord
	Direction *TagWord
	Distance  *TagWord
	Motion    *TagWord
}

func spaceHasContent(s Space) bool {
	return len(s.Offsets) > 0 || s.Interval != nil || s.Direction != nil || s.Distance != nil || s.Motion != nil
}

func parseSpaceRaw(input []lexer.Token) Result[Space] {
	offsets := Many0(parseTagWord(selmaho.Va))(input)
	rest := offsets.Rest

	interval := Opt(Longest(parseTagWord(selmaho.Veha), parseTagWord(selmaho.Fehe)))(rest)
	rest = interval.Rest

	direction := Opt(parseTagWord(selmaho.Viha))(rest)
	rest = direction.Rest

	distance := Opt(parseTagWord(selmaho.Faha))(rest)
	rest = distance.Rest

	motion := Opt(parseTagWord(selmaho.Mohi))(rest)
	rest = motion.Rest

	return ok(Space{
		Offsets:   offsets.Value,
		Interval:  interval.Value,
		Direction: direction.Value,
		Distance:  distance.Value,
		Motion:    motion.Value,
	}, rest)
}

// parseSpace is Postcond-gated the same way parseTime is.
var parseSpace = Postcond(parseSpaceRaw, spaceHasContent, "space tag with no offset, interval, direction, distance, or motion field")

// TagWords is a compound tense/modal tag: a Time tag, a Space tag, a bare
// BAI modal, or a CAhA event-contour tag.
type TagWords struct {
	Time  *Time
	Space *Space
	Bai   *TagWord
	Caha  *TagWord
}

func parseTagWords(input []lexer.Token) Result[TagWords] {
	timeForm := Map(parseTime, func(t Time) TagWords { return TagWords{Time: &t} })
	spaceForm := Map(parseSpace, func(s Space) TagWords { return TagWords{Space: &s} })
	baiForm := Map(parseTagWord(selmaho.Bai), func(t TagWord) TagWords { return TagWords{Bai: &t} })
	cahaForm := Map(parseTagWord(selmaho.Caha), func(t TagWord) TagWords { return TagWords{Caha: &t} })
	return Alt(timeForm, spaceForm, baiForm, cahaForm)(input)
}
