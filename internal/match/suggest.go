package match

import "sort"

// DefaultMinSimilarity is the lowest similarity Suggest reports.
const DefaultMinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates most similar to name, best first,
// skipping those below DefaultMinSimilarity. Ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(name, c); s >= DefaultMinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if len(ranked) == 0 {
		return nil
	}

	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.name)
	}

	return result
}
