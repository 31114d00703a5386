package models

// SortKey selects one of the defined browse orderings.
type SortKey string

const (
	SortDateDesc       SortKey = "date-desc"
	SortDateAsc        SortKey = "date-asc"
	SortNameAsc        SortKey = "name-asc"
	SortNameDesc       SortKey = "name-desc"
	SortTimeAsc        SortKey = "time-asc"
	SortTimeDesc       SortKey = "time-desc"
	SortDifficultyEasy SortKey = "difficulty-easy"
	SortDifficultyHard SortKey = "difficulty-hard"
)

// DefaultSort is the ordering applied when no sort parameter is present.
const DefaultSort = SortDateDesc

// SortKeys lists every defined sort mode in display order.
var SortKeys = []SortKey{
	SortDateDesc,
	SortDateAsc,
	SortNameAsc,
	SortNameDesc,
	SortTimeAsc,
	SortTimeDesc,
	SortDifficultyEasy,
	SortDifficultyHard,
}

// Normalize maps unrecognized sort keys to the default ordering.
func (k SortKey) Normalize() SortKey {
	for _, known := range SortKeys {
		if k == known {
			return k
		}
	}
	return DefaultSort
}
