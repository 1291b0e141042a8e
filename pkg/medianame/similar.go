package medianame

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Similarity returns the Jaro-Winkler similarity of two names after
// normalization, in [0, 1]. Jaro-Winkler favors common prefixes, which
// suits media titles.
func Similarity(a, b string) float64 {
	na, nb := CleanTitle(a), CleanTitle(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	return float64(edlib.JaroWinklerSimilarity(na, nb))
}

// BestScore returns the highest similarity between query and any of the
// candidate name variants.
func BestScore(query string, variants []string) float64 {
	best := 0.0
	for _, v := range variants {
		if s := Similarity(query, v); s > best {
			best = s
		}
	}
	return best
}

// IsPrefixMatch reports whether the normalized query is an exact
// case-insensitive prefix of the normalized candidate name.
func IsPrefixMatch(query, candidate string) bool {
	q, c := CleanTitle(query), CleanTitle(candidate)
	if q == "" {
		return false
	}
	return strings.HasPrefix(c, q)
}
