// Package search provides the weighted fuzzy text index over the loaded
// recipe collection. The index is an explicitly constructed value, rebuilt
// deterministically from the record set; there is no hidden global cache.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	lev "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/pantryio/ladle/pkg/models"
)

// Field weights: a match on the recipe name dominates relevance, difficulty
// and the time label contribute progressively less.
const (
	weightName       = 0.7
	weightDifficulty = 0.2
	weightTimeLabel  = 0.1
)

// minQueryRunes is the shortest query the index will match. Anything shorter
// (after trimming) bypasses search entirely and the full set passes through.
const minQueryRunes = 2

// field holds the per-recipe values of one searchable attribute.
type field struct {
	weight float64
	values []string
}

// Index ranks recipes against free-text queries across weighted fields.
type Index struct {
	recipes []models.Recipe
	fields  []field
}

// New builds an index over the given record set. The records are assumed
// immutable; the index holds its own copy of the slice header only.
func New(recipes []models.Recipe) *Index {
	names := make([]string, len(recipes))
	difficulties := make([]string, len(recipes))
	timeLabels := make([]string, len(recipes))
	for i := range recipes {
		names[i] = recipes[i].Name
		difficulties[i] = string(recipes[i].Difficulty)
		timeLabels[i] = recipes[i].TimeLabel
	}
	return &Index{
		recipes: recipes,
		fields: []field{
			{weight: weightName, values: names},
			{weight: weightDifficulty, values: difficulties},
			{weight: weightTimeLabel, values: timeLabels},
		},
	}
}

// Search returns recipes matching query, ordered by descending combined
// relevance with load order breaking ties. An empty, whitespace-only, or
// sub-2-rune query applies no search filter: the full set is returned in
// load order.
func (ix *Index) Search(query string) []models.Recipe {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryRunes {
		cp := make([]models.Recipe, len(ix.recipes))
		copy(cp, ix.recipes)
		return cp
	}

	scores := make([]float64, len(ix.recipes))
	hit := make([]bool, len(ix.recipes))

	for _, f := range ix.fields {
		for _, m := range fuzzy.Find(query, f.values) {
			if matchSpread(m) > maxSpread(query) {
				continue
			}
			scores[m.Index] += f.weight * float64(m.Score)
			hit[m.Index] = true
		}
	}

	// Typo tolerance: subsequence matching misses transpositions, so records
	// with no hit get a whole-token Levenshtein pass over each field.
	q := strings.ToLower(query)
	for i := range ix.recipes {
		if hit[i] {
			continue
		}
		for _, f := range ix.fields {
			if score, ok := bestTokenMatch(q, f.values[i]); ok {
				scores[i] += f.weight * score
				hit[i] = true
			}
		}
	}

	matched := make([]int, 0, len(ix.recipes))
	for i := range ix.recipes {
		if hit[i] {
			matched = append(matched, i)
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return scores[matched[a]] > scores[matched[b]]
	})

	result := make([]models.Recipe, len(matched))
	for i, idx := range matched {
		result[i] = ix.recipes[idx]
	}
	return result
}

// matchSpread is the rune distance between the first and last matched
// character. A spread far wider than the query means the characters matched
// scattered across the value, which reads as noise rather than relevance.
// MatchedIndexes are byte offsets, so the span is re-counted in runes to
// stay comparable with the rune-based budget.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	first := m.MatchedIndexes[0]
	last := m.MatchedIndexes[len(m.MatchedIndexes)-1]
	return utf8.RuneCountInString(m.Str[first:last])
}

func maxSpread(query string) int {
	return 2*utf8.RuneCountInString(query) + 2
}

// bestTokenMatch checks query against each whitespace token of value and
// returns the score of the closest token within the edit-distance budget.
func bestTokenMatch(query, value string) (float64, bool) {
	budget := editBudget(query)
	best := -1.0
	for _, token := range strings.Fields(strings.ToLower(value)) {
		if utf8.RuneCountInString(token) < minQueryRunes {
			continue
		}
		dist := lev.LevenshteinDistance(query, token)
		if dist > budget {
			continue
		}
		if score := float64(utf8.RuneCountInString(token) - dist); score > best {
			best = score
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// editBudget grows with query length: one edit for short queries, two for
// anything five runes or longer.
func editBudget(query string) int {
	if utf8.RuneCountInString(query) < 5 {
		return 1
	}
	return 2
}
