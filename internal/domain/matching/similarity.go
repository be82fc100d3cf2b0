package matching

import "github.com/pmezard/go-difflib/difflib"

// Similarity scores how alike two strings are, in [0,1]. Implementations must
// be safe for concurrent use.
type Similarity interface {
	Score(a, b string) float64
}

type SimilarityFunc func(a, b string) float64

func (f SimilarityFunc) Score(a, b string) float64 {
	return f(a, b)
}

// SequenceRatio returns the Ratcliff/Obershelp similarity 2*M/T of a and b
// compared rune by rune, with difflib's popular-element heuristic for inputs
// of 200 runes or more. Two empty strings are identical.
func SequenceRatio(a, b string) float64 {
	ar, br := runeStrings(a), runeStrings(b)
	if len(ar)+len(br) == 0 {
		return 1
	}
	return difflib.NewMatcher(ar, br).Ratio()
}

func runeStrings(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
