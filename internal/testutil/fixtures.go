package testutil

import (
	"fmt"

	"github.com/pantryio/ladle/pkg/models"
)

// NewRecipe returns a Recipe with sensible defaults, suitable for test
// fixtures. Override individual fields via options.
func NewRecipe(id int, opts ...func(*models.Recipe)) models.Recipe {
	r := models.Recipe{
		ID:               id,
		Slug:             fmt.Sprintf("recipe_%d", id),
		Name:             fmt.Sprintf("Recipe %d", id),
		Difficulty:       models.DifficultyEasy,
		TimeLabel:        "30 min",
		TotalTimeMinutes: 30,
		Tags:             []string{},
		CreatedAt:        "2024-01-01T00:00:00.000Z",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithName sets the recipe name.
func WithName(name string) func(*models.Recipe) {
	return func(r *models.Recipe) { r.Name = name }
}

// WithDifficulty sets the difficulty level.
func WithDifficulty(d models.Difficulty) func(*models.Recipe) {
	return func(r *models.Recipe) { r.Difficulty = d }
}

// WithTotalTime sets both the numeric time and its display label.
func WithTotalTime(minutes int) func(*models.Recipe) {
	return func(r *models.Recipe) {
		r.TotalTimeMinutes = minutes
		r.TimeLabel = fmt.Sprintf("%d min", minutes)
	}
}

// WithTags sets the tag list.
func WithTags(tags ...string) func(*models.Recipe) {
	return func(r *models.Recipe) { r.Tags = tags }
}

// WithCreatedAt sets the creation timestamp.
func WithCreatedAt(ts string) func(*models.Recipe) {
	return func(r *models.Recipe) { r.CreatedAt = ts }
}

// WithSlug sets the recipe slug.
func WithSlug(slug string) func(*models.Recipe) {
	return func(r *models.Recipe) { r.Slug = slug }
}
