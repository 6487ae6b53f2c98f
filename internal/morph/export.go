package morph

// MatchResult is the outcome of attempting to match a rule against some
// input: Rest is what remains after the match (equal to the input given if
// Ok is false), and Ok reports success.
type MatchResult struct {
	Rest string
	Ok   bool
}

func result(rest string, ok bool) MatchResult {
	return MatchResult{Rest: rest, Ok: ok}
}

// ConsumedAll reports whether the match succeeded and left nothing
// remaining, i.e. the whole input was one complete word.
func (r MatchResult) ConsumedAll() bool {
	return r.Ok && r.Rest == ""
}

// LojbanWord matches any single word: brivla, cmevla, or cmavo.
func LojbanWord(input string) MatchResult { return result(lojbanWord(input)) }

// Cmevla matches a name word.
func Cmevla(input string) MatchResult { return result(cmevla(input)) }

// CmavoForm matches a structure word, post_word-checked.
func CmavoForm(input string) MatchResult { return result(cmavoForm(input)) }

// CmavoFormMinimal matches a structure word shape without the trailing
// word-boundary check.
func CmavoFormMinimal(input string) MatchResult { return result(cmavoFormMinimal(input)) }

// Gismu matches a root word.
func Gismu(input string) MatchResult { return result(gismu(input)) }

// Brivla matches any predicate word: gismu, lujvo, or fuhivla.
func Brivla(input string) MatchResult { return result(brivla(input)) }

// BrivlaMinimal matches the shape of a predicate word without the trailing
// word-boundary check.
func BrivlaMinimal(input string) MatchResult { return result(brivlaMinimal(input)) }

// Lujvo matches a compound predicate word.
func Lujvo(input string) MatchResult { return result(lujvo(input)) }

// LujvoMinimal matches a lujvo's rafsi-sequence shape without the trailing
// word-boundary check.
func LujvoMinimal(input string) MatchResult { return result(lujvoMinimal(input)) }

// Fuhivla matches a borrowed/extended predicate word.
func Fuhivla(input string) MatchResult { return result(fuhivla(input)) }
