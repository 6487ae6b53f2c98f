package morph

// postWord checks the word-boundary condition that must hold immediately
// after a candidate word: the next byte, if any, must be a separator
// (whitespace or Lojban pause punctuation), a comma (which is invisible to
// word shape), or end of input. A word is never allowed to run directly
// into another letter.
func postWord(input string) bool {
	rest := input
	for len(rest) > 0 && rest[0] == ',' {
		rest = rest[1:]
	}
	if rest == "" {
		return true
	}
	return isWordSeparator(rest[0])
}

func isWordSeparator(b byte) bool {
	switch b {
	case '.', '\t', '\n', '\r', '?', '!', ' ':
		return true
	default:
		return false
	}
}

// gismu matches a root word: an initial onset, a stressed or plain
// syllable, and a five-letter CVCCV/CCVCV body, with the penultimate vowel
// conventionally bearing stress.
func gismu(input string) (string, bool) {
	return andPeek(longRafsi, postWordParser)(input)
}

func postWordParser(input string) (string, bool) {
	if postWord(input) {
		return input, true
	}
	return input, false
}

// fuhivlaHead matches the unrestricted-shape head syllable(s) of a
// fuhivla, which (unlike a gismu or rafsi) may begin with any permitted
// onset and contain any number of syllables before its final CV, as long
// as no prefix of it would itself parse as a full gismu or rafsi run
// (which would make it ambiguous with a lujvo).
func fuhivlaHead(input string) (string, bool) {
	return seq(
		onset,
		repeat(0, seq(nucleus, onset)),
	)(input)
}

// fuhivla matches a borrowed/extended brivla: a free-form head followed by
// a final consonant-vowel, not itself decomposable into a clean rafsi
// sequence the way a lujvo is.
func fuhivla(input string) (string, bool) {
	return andNot(
		andPeek(
			seq(fuhivlaHead, c, vowel),
			postWordParser,
		),
		lujvoMinimal,
	)(input)
}

// brivla matches any predicate word: gismu, lujvo, or fuhivla, in that
// preference order (longest-match, since gismu and lujvo bodies can be
// textual prefixes of a longer fuhivla).
func brivla(input string) (string, bool) {
	return orLongest(gismu, lujvo, fuhivla)(input)
}

// brivlaMinimal is brivla without the trailing post_word check, used by
// the decomposer while it is still deciding where the word ends.
func brivlaMinimal(input string) (string, bool) {
	return orLongest(longRafsi, lujvoMinimal, fuhivlaHeadOnly)(input)
}

func fuhivlaHeadOnly(input string) (string, bool) {
	return seq(fuhivlaHead, c, vowel)(input)
}

// cmevla matches a name word: any run of letters (permitting internal
// consonant clusters freely) that ends in a consonant, which is the one
// shape reserved exclusively for names.
func cmevla(input string) (string, bool) {
	return andPeek(cmevlaBody, postWordParser)(input)
}

func cmevlaBody(input string) (string, bool) {
	rest, ok := oneOf(consonants + vowels + "'y")(input)
	if !ok {
		return input, false
	}
	for {
		next, ok := oneOf(consonants + vowels + "'y")(rest)
		if !ok {
			break
		}
		rest = next
	}
	if !simpleCmevlaCheck(input, rest) {
		return input, false
	}
	return rest, true
}

// simpleCmevlaCheck reports whether the consumed span (input minus rest)
// ends in a consonant, which is the defining property of a cmevla.
func simpleCmevlaCheck(input, rest string) bool {
	consumed := input[:len(input)-len(rest)]
	if consumed == "" {
		return false
	}
	last := consumed[len(consumed)-1]
	return isConsonant(toLowerByte(last))
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// cmavoForm matches the shape of a structure word, post_word-checked: a
// digit, a run of y's, or a CV/CVV-ish syllable run, as long as it isn't
// actually the head of a CVCy-initial lujvo.
func cmavoForm(input string) (string, bool) {
	return andPeek(cmavoFormMinimal, postWordParser)(input)
}

// cmavoFormMinimal is cmavoForm without the trailing post_word check: a
// structure-word shape that isn't the CVCy-initial prefix of a lujvo.
func cmavoFormMinimal(input string) (string, bool) {
	return seq(not(cvcyLujvo), cmavoFormBody)(input)
}

// cvcyLujvo matches the one lujvo shape that would otherwise be
// indistinguishable from a cmavo by shape alone: a CVC rafsi immediately
// followed by 'y' (which on its own looks like a cmavo's hyphen vowel),
// continuing on into a full brivla.
func cvcyLujvo(input string) (string, bool) {
	return or(
		seq(cvcRafsi, y, opt(h), repeat(0, shortRafsi), brivlaMinimal),
		seq(stressedCvcRafsi, y, shortRafsi),
	)(input)
}

// cmavoFormBody matches the bare shape of a structure word: a digit
// (digits are treated like the numeral cmavo "pa" etc.), a run of one or
// more y's (the hesitation/pause-filler cmavo), or an onset-led syllable
// run, in longest-match order.
func cmavoFormBody(input string) (string, bool) {
	return orLongest(
		digit,
		repeat(1, y),
		seq(
			opt(oneOf(consonants)),
			nucleus,
			repeat(0, seq(h, nucleus)),
		),
	)(input)
}

// lojbanWord matches any single Lojban word of any category: brivla,
// cmevla, or cmavo.
func lojbanWord(input string) (string, bool) {
	return orLongest(cmevla, brivla, cmavoForm)(input)
}

// isConsonantRune classifies a single byte, case-insensitively, against the
// unexported consonant table; IsConsonant exposes it outside this package.
func isConsonantRune(r byte) bool {
	return isConsonant(toLowerByte(r))
}

// IsConsonant reports whether b is a Lojban consonant letter (case
// insensitive).
func IsConsonant(b byte) bool {
	return isConsonantRune(b)
}

// PostWord reports whether it is valid for a word to end at the start of
// rest: either rest is empty, or (after skipping commas) its first byte is
// a separator.
func PostWord(rest string) bool {
	return postWord(rest)
}
