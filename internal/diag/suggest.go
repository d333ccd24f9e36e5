package diag

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// suggestThreshold is the minimum Jaro-Winkler similarity a candidate must
// clear to be offered as a "did you mean" suggestion.
const suggestThreshold = 0.78

// maxSuggestions bounds how many candidates are surfaced per diagnostic.
const maxSuggestions = 3

type scoredCandidate struct {
	name  string
	score float32
}

// Suggest ranks candidates by similarity to name and returns up to
// maxSuggestions names clearing suggestThreshold, highest similarity
// first. Used by ExprCallOfUndefinedFunction and VarNotDeclared to build
// their "possible ... you meant" list (spec.md §4.3 "Calls": the
// unresolved-call path "actively searches for near matches"), grounded on
// the teacher's internal/semantic.FuzzyMatcher Jaro-Winkler usage.
func Suggest(name string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c == name {
			continue
		}
		score, err := edlib.StringsSimilarity(name, c, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if len(name) <= 3 || len(c) <= 3 {
			// Jaro-Winkler overweights short strings; fall back to
			// Levenshtein similarity for short identifiers.
			lev, err := edlib.StringsSimilarity(name, c, edlib.Levenshtein)
			if err == nil {
				score = lev
			}
		}
		if float64(score) >= suggestThreshold {
			scored = append(scored, scoredCandidate{name: c, score: score})
		}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.name
	}
	return out
}
