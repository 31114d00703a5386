package models

// FallbackCreatedAt is the timestamp assigned to recipes whose source
// document carries no created_at field. Epoch-era values sort last under the
// default newest-first ordering.
const FallbackCreatedAt = "1970-01-01T00:00:00.000Z"

// Difficulty is the normalized difficulty level of a recipe.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// difficultyRank orders Easy < Medium < Hard < Unknown for the
// difficulty-easy sort mode; unrecognized values rank with Unknown.
var difficultyRank = map[Difficulty]int{
	DifficultyEasy:    0,
	DifficultyMedium:  1,
	DifficultyHard:    2,
	DifficultyUnknown: 3,
}

// difficultyRankReverse orders Hard < Medium < Easy < Unknown for the
// difficulty-hard sort mode. Unknown stays last in both directions.
var difficultyRankReverse = map[Difficulty]int{
	DifficultyHard:    0,
	DifficultyMedium:  1,
	DifficultyEasy:    2,
	DifficultyUnknown: 3,
}

// Rank returns the sort position of d under easiest-first ordering.
func (d Difficulty) Rank() int {
	if r, ok := difficultyRank[d]; ok {
		return r
	}
	return difficultyRank[DifficultyUnknown]
}

// RankReverse returns the sort position of d under hardest-first ordering.
func (d Difficulty) RankReverse() int {
	if r, ok := difficultyRankReverse[d]; ok {
		return r
	}
	return difficultyRankReverse[DifficultyUnknown]
}

// Recipe is the normalized browse-level view of a recipe document.
// Instances are built once at load time and never mutated afterwards.
type Recipe struct {
	ID               int        `json:"id"`
	Slug             string     `json:"slug"`
	Name             string     `json:"name"`
	Difficulty       Difficulty `json:"difficulty"`
	TimeLabel        string     `json:"time"`
	TotalTimeMinutes int        `json:"total_time"`
	Tags             []string   `json:"tags"`
	CreatedAt        string     `json:"created_at"`
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
