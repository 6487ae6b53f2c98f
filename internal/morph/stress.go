package morph

import "strings"

const stressedVowels = "AEIOU"

// stressedVowel matches an uppercase vowel. Since plain text carries no
// diacritics, this implementation follows the decomposer's convention
// (shared with the rest of the pipeline's test corpus) of marking the
// stressed syllable of an otherwise-ambiguous word with capitalization,
// e.g. "miPRAmido" decomposes as {mi, PRAmi, do}.
func stressedVowel(input string) (string, bool) {
	return oneOf(stressedVowels)(input)
}

var stressedDiphthongPairs = []string{"AI", "EI", "OI", "AU"}

func stressedDiphthong(input string) (string, bool) {
	parsers := make([]Parser, len(stressedDiphthongPairs))
	for i, d := range stressedDiphthongPairs {
		parsers[i] = literal(d)
	}
	return or(parsers...)(input)
}

// explicitlyStressedNucleus matches a nucleus whose vowel is uppercase.
func explicitlyStressedNucleus(input string) (string, bool) {
	return or(stressedDiphthong, stressedVowel)(input)
}

func isUpperVowelByte(b byte) bool {
	return strings.IndexByte(stressedVowels, b) >= 0
}

// stressedCvcRafsi matches a CVC rafsi whose vowel is explicitly marked
// stressed, the shape cvcy_lujvo looks for immediately before a lone 'y'
// to tell a lujvo head apart from a cmavo.
func stressedCvcRafsi(input string) (string, bool) {
	return seq(c, stressedVowel, c)(input)
}
