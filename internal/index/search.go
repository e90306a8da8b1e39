package index

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/sahilm/fuzzy"

	"github.com/starford/coderecents/internal/models"
)

// Strategy selects how a query is ranked against project short names.
type Strategy string

// Ranking strategies. Each is applied alone.
const (
	// StrategySubstring keeps projects whose short name contains the query, in scan order.
	StrategySubstring Strategy = "substring"
	// StrategyDistance orders every project by Damerau-Levenshtein distance, closest first.
	StrategyDistance Strategy = "distance"
	// StrategyFuzzy keeps subsequence matches, best score first.
	StrategyFuzzy Strategy = "fuzzy"
)

// DefaultLimit caps Search results when no positive limit is given.
const DefaultLimit = 5

// Search ranks the projects against query with the given strategy and
// returns at most limit of them. Unknown strategies fall back to substring.
func (ix *Index) Search(query string, strategy Strategy, limit int) []models.Project {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var out []models.Project
	switch strategy {
	case StrategyDistance:
		out = ix.searchDistance(query)
	case StrategyFuzzy:
		out = ix.searchFuzzy(query)
	default:
		out = ix.searchSubstring(query)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (ix *Index) searchSubstring(query string) []models.Project {
	var out []models.Project
	for _, p := range ix.projects {
		if strings.Contains(p.ShortName, query) {
			out = append(out, p)
		}
	}
	return out
}

func (ix *Index) searchDistance(query string) []models.Project {
	type scored struct {
		project  models.Project
		distance int
	}
	ranked := make([]scored, len(ix.projects))
	for i, p := range ix.projects {
		ranked[i] = scored{project: p, distance: edlib.DamerauLevenshteinDistance(query, p.ShortName)}
	}
	// Stable: equal distances keep scan order.
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(a.distance, b.distance)
	})

	out := make([]models.Project, len(ranked))
	for i, r := range ranked {
		out[i] = r.project
	}
	return out
}

func (ix *Index) searchFuzzy(query string) []models.Project {
	if query == "" {
		return ix.Projects()
	}
	matches := fuzzy.FindFrom(query, shortNames(ix.projects))
	out := make([]models.Project, 0, len(matches))
	for _, m := range matches {
		out = append(out, ix.projects[m.Index])
	}
	return out
}

type shortNames []models.Project

func (s shortNames) String(i int) string { return s[i].ShortName }

func (s shortNames) Len() int { return len(s) }
