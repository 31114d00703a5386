// Package browse implements the recipe browse pipeline: fuzzy search, facet
// filtering, sorting, and pagination, driven entirely by URL query state.
// Every stage is a pure function over the immutable loaded collection; each
// query is a full, independent recomputation.
package browse

import (
	"sort"
	"strings"

	"github.com/pantryio/ladle/internal/search"
	"github.com/pantryio/ladle/pkg/models"
)

// Engine composes the search index with filtering and sorting over the
// loaded record set.
type Engine struct {
	recipes []models.Recipe
	index   *search.Index
}

// NewEngine builds a browse engine over the given record set. The search
// index is constructed here, owned by the engine, and rebuilt only when a
// new engine is created over a new set.
func NewEngine(recipes []models.Recipe) *Engine {
	return &Engine{
		recipes: recipes,
		index:   search.New(recipes),
	}
}

// Query runs the fixed pipeline: search over the full set, then facet
// filtering over the search results, then a stable sort. Filters apply to
// search matches only, so a search term narrows what the filters see.
func (e *Engine) Query(state QueryState) []models.Recipe {
	matched := e.index.Search(state.SearchText)
	filtered := Filter(matched, state.Difficulties, state.Times, state.Tags)
	return Sort(filtered, state.Sort)
}

// Filter narrows records by the three facet dimensions. Dimensions combine
// with AND; values within a dimension combine with OR. An empty selection
// for a dimension applies no constraint. Input order is preserved.
func Filter(records []models.Recipe, difficulties, times, tags []string) []models.Recipe {
	out := make([]models.Recipe, 0, len(records))
	for i := range records {
		if !matchesDifficulty(&records[i], difficulties) {
			continue
		}
		if !matchesTime(&records[i], times) {
			continue
		}
		if !matchesTags(&records[i], tags) {
			continue
		}
		out = append(out, records[i])
	}
	return out
}

func matchesDifficulty(r *models.Recipe, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, d := range selected {
		if string(r.Difficulty) == d {
			return true
		}
	}
	return false
}

func matchesTime(r *models.Recipe, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, bucket := range selected {
		switch bucket {
		case TimeUnder30:
			if r.TotalTimeMinutes < 30 {
				return true
			}
		case TimeUnder60:
			if r.TotalTimeMinutes < 60 {
				return true
			}
		case TimeOver60:
			if r.TotalTimeMinutes >= 60 {
				return true
			}
		}
	}
	return false
}

func matchesTags(r *models.Recipe, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range selected {
		if r.HasTag(tag) {
			return true
		}
	}
	return false
}

// Sort orders records by the given key. The sort is stable: records that
// compare equal keep their relative input order, which keeps pagination
// deterministic across recomputations of the same state.
func Sort(records []models.Recipe, key models.SortKey) []models.Recipe {
	out := make([]models.Recipe, len(records))
	copy(out, records)
	less := comparator(key.Normalize())
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

// comparator returns the less function for a normalized sort key. CreatedAt
// comparisons are lexicographic, valid because the ISO-8601 format is
// fixed-width.
func comparator(key models.SortKey) func(a, b *models.Recipe) bool {
	switch key {
	case models.SortDateAsc:
		return func(a, b *models.Recipe) bool {
			return strings.Compare(a.CreatedAt, b.CreatedAt) < 0
		}
	case models.SortNameAsc:
		return func(a, b *models.Recipe) bool {
			return strings.Compare(a.Name, b.Name) < 0
		}
	case models.SortNameDesc:
		return func(a, b *models.Recipe) bool {
			return strings.Compare(b.Name, a.Name) < 0
		}
	case models.SortTimeAsc:
		return func(a, b *models.Recipe) bool {
			return a.TotalTimeMinutes < b.TotalTimeMinutes
		}
	case models.SortTimeDesc:
		return func(a, b *models.Recipe) bool {
			return b.TotalTimeMinutes < a.TotalTimeMinutes
		}
	case models.SortDifficultyEasy:
		return func(a, b *models.Recipe) bool {
			return a.Difficulty.Rank() < b.Difficulty.Rank()
		}
	case models.SortDifficultyHard:
		return func(a, b *models.Recipe) bool {
			return a.Difficulty.RankReverse() < b.Difficulty.RankReverse()
		}
	default: // date-desc
		return func(a, b *models.Recipe) bool {
			return strings.Compare(b.CreatedAt, a.CreatedAt) < 0
		}
	}
}
