package morph

// This file implements the rafsi (combining form) shapes used to build
// lujvo (compound brivla) and to recognize fuhivla (borrowed brivla) heads.
// Rafsi come in five shapes, from shortest to longest:
//
//	CVC  e.g. "ger"   cvcRafsi
//	CCV  e.g. "tri"   ccvRafsi
//	CVV  e.g. "gau"   cvvRafsi  (diphthong, or vowel+h+vowel)
//	CVCy / CCVy / CVV'y yRafsi / hyRafsi (forms ending in y)
//	CVCCV / CCVCV       longRafsi (five-letter forms, identical in shape to gismu)

func cvcRafsi(input string) (string, bool) {
	return seq(c, vowel, c)(input)
}

func ccvRafsi(input string) (string, bool) {
	return seq(initial, vowel)(input)
}

func cvvRafsi(input string) (string, bool) {
	return seq(c, or(
		seq(vowel, h, vowel),
		diphthong,
	))(input)
}

// shortRafsi matches any of the three-letter rafsi shapes.
func shortRafsi(input string) (string, bool) {
	return or(cvcRafsi, ccvRafsi, cvvRafsi)(input)
}

func yRafsi(input string) (string, bool) {
	return seq(or(cvcRafsi, ccvRafsi), y)(input)
}

func hyRafsi(input string) (string, bool) {
	return seq(cvvRafsi, h, y)(input)
}

// longRafsi matches a five-letter rafsi, which has the same CVCCV/CCVCV
// shape as a gismu root but is not itself a standalone word.
func longRafsi(input string) (string, bool) {
	return or(
		seq(c, vowel, cluster, vowel),
		seq(initial, vowel, c, vowel),
	)(input)
}

// rHyphen matches the consonant hyphen ('r' or 'n') inserted between rafsi
// to avoid an illegal or ambiguous consonant cluster at the join.
func rHyphen(input string) (string, bool) {
	return oneOf("rn")(input)
}

// anyRafsi matches one rafsi of any shape, in longest-match order so that
// e.g. a five-letter long rafsi is preferred over a three-letter short
// rafsi prefix of the same text.
func anyRafsi(input string) (string, bool) {
	return orLongest(longRafsi, hyRafsi, yRafsi, shortRafsi)(input)
}

// lujvo matches a compound brivla: one or more non-final rafsi (each
// possibly followed by a hyphen consonant when needed to keep the compound
// from being misparsed), ending in a final rafsi (see finalRafsi).
func lujvo(input string) (string, bool) {
	return seq(
		repeat(1, seq(anyRafsi, opt(rHyphen))),
		finalRafsi,
	)(input)
}

// lujvoMinimal matches only the rafsi-sequence shape of lujvo without the
// surrounding word-boundary (post_word) check; used by the decomposer's
// tentative peel (through brivlaMinimal), which decides whether to commit
// to the peel point without running post_word itself.
func lujvoMinimal(input string) (string, bool) {
	return lujvo(input)
}

// finalRafsi matches the final, full-shaped member of a lujvo: either a
// five-letter long rafsi or a CVV-shape rafsi, since both of these close
// out a compound the same way a gismu's final vowel does.
func finalRafsi(input string) (string, bool) {
	return orLongest(longRafsi, cvvRafsi)(input)
}
