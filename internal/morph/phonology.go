package morph

import "strings"

const (
	vowels     = "aeiou"
	consonants = "bcdfgjklmnprstvxz"
	voiced     = "bdgjvz"
	unvoiced   = "cfkpstx"
	sonorants  = "lmnr"
)

var forbiddenPairs = map[string]bool{
	"cx": true, "xc": true,
	"kx": true, "xk": true,
	"mz": true,
}

var affricates = []string{"dj", "dz", "tc", "ts"}

func isConsonant(b byte) bool {
	return strings.IndexByte(consonants, b) >= 0
}

func isVowel(b byte) bool {
	return strings.IndexByte(vowels, b) >= 0
}

// validConsonantPair reports whether two adjacent consonants may form a
// permitted cluster, per CLL 4.4: no doubled consonant, none of the five
// outright-forbidden pairs, and no voiced/unvoiced clash unless one side
// is a sonorant (l, m, n, r) or the pair is one of the sibilant affricates.
func validConsonantPair(a, b byte) bool {
	if a == b {
		return false
	}
	pair := string([]byte{a, b})
	if forbiddenPairs[pair] {
		return false
	}
	for _, aff := range affricates {
		if pair == aff {
			return true
		}
	}
	aVoiced, aUnvoiced := strings.IndexByte(voiced, a) >= 0, strings.IndexByte(unvoiced, a) >= 0
	bVoiced, bUnvoiced := strings.IndexByte(voiced, b) >= 0, strings.IndexByte(unvoiced, b) >= 0
	if (aVoiced && bUnvoiced) || (aUnvoiced && bVoiced) {
		return false
	}
	return true
}

// c matches any single consonant.
func c(input string) (string, bool) {
	return oneOf(consonants)(input)
}

// vowel matches a, e, i, o, or u (not y, which is not a true vowel).
func vowel(input string) (string, bool) {
	return oneOf(vowels)(input)
}

// y matches the semivowel y, which fills a nucleus slot but carries no
// stress and does not participate in diphthongs.
func y(input string) (string, bool) {
	return oneOf("y")(input)
}

// h matches the apostrophe-letter h, which only ever occurs between two
// vowels and is rendered as an apostrophe in conventional orthography.
func h(input string) (string, bool) {
	return or(oneOf("'"), literal("h"))(input)
}

var diphthongPairs = []string{"ai", "ei", "oi", "au"}

// diphthong matches one of the four permitted diphthongs.
func diphthong(input string) (string, bool) {
	parsers := make([]Parser, len(diphthongPairs))
	for i, d := range diphthongPairs {
		parsers[i] = literal(d)
	}
	return or(parsers...)(input)
}

// nucleus matches a vowel, diphthong, or y -- the vocalic core of a
// syllable.
func nucleus(input string) (string, bool) {
	return or(diphthong, vowel, y)(input)
}

// glide matches an i or u immediately preceding another vowel, forming
// the semivocalic onset of a following syllable (e.g. the "ua" in "fuanpa").
func glide(input string) (string, bool) {
	return andPeek(oneOf("iu"), vowel)(input)
}

func digit(input string) (string, bool) {
	return oneOf("0123456789")(input)
}

// cluster matches two or three permitted consonants in a row.
func cluster(input string) (string, bool) {
	return or(consonantTriple, consonantPair)(input)
}

func consonantPair(input string) (string, bool) {
	rest1, ok := c(input)
	if !ok {
		return input, false
	}
	rest2, ok := c(rest1)
	if !ok {
		return input, false
	}
	if !validConsonantPair(firstByte(input, rest1), firstByte(rest1, rest2)) {
		return input, false
	}
	return rest2, true
}

func consonantTriple(input string) (string, bool) {
	rest1, ok := c(input)
	if !ok {
		return input, false
	}
	rest2, ok := c(rest1)
	if !ok {
		return input, false
	}
	rest3, ok := c(rest2)
	if !ok {
		return input, false
	}
	b1, b2, b3 := firstByte(input, rest1), firstByte(rest1, rest2), firstByte(rest2, rest3)
	if !validConsonantPair(b1, b2) || !validConsonantPair(b2, b3) {
		return input, false
	}
	return rest3, true
}

// firstByte returns the byte that was consumed going from before to after,
// i.e. before[0], under the assumption after == before[1:] (modulo any
// leading commas that oneOf silently skips).
func firstByte(before, after string) byte {
	// Walk past whatever commas oneOf would have skipped.
	i := 0
	for i < len(before) && before[i] == ',' {
		i++
	}
	if i >= len(before) {
		return 0
	}
	return before[i]
}

// onset matches a syllable's leading consonant cluster: nothing, one
// consonant, or a permitted two/three consonant cluster.
func onset(input string) (string, bool) {
	return or(cluster, c, func(s string) (string, bool) { return s, true })(input)
}

// initial matches the onset cluster at the very start of a brivla: a
// permitted cluster or a single consonant. Unlike onset it requires at
// least one consonant; it does not exclude clusters that can only occur
// medially.
func initial(input string) (string, bool) {
	return or(cluster, c)(input)
}

// coda matches a syllable's trailing consonant: nothing or one consonant,
// as long as it is not immediately followed by another consonant (which
// would instead belong to the next syllable's onset/cluster).
func coda(input string) (string, bool) {
	return or(andNot(c, c), func(s string) (string, bool) { return s, true })(input)
}
