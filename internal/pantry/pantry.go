// Package pantry loads the static recipe collection into memory. One JSON
// document per recipe, read once at startup; the resulting set is immutable
// for the lifetime of the process.
package pantry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pantryio/ladle/pkg/models"
)

// ErrNotFound is returned by lookups when no recipe matches.
var ErrNotFound = errors.New("recipe not found")

// Repository holds the loaded recipe collection. All accessors return copies
// or read-only views; nothing mutates the set after construction.
type Repository struct {
	recipes []models.Recipe
	raw     []models.RecipeData // raw[i] backs recipes[i]
	bySlug  map[string]int
}

// Load reads every *.json document under dir in lexical filename order and
// builds the normalized collection. Documents that fail to decode are
// skipped with a warning; a missing directory degrades to an empty set.
func Load(dir string, logger *zap.Logger) (*Repository, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("recipe data directory missing, starting with empty collection",
				zap.String("dir", dir))
			return newRepository(nil, nil), nil
		}
		return nil, fmt.Errorf("read recipe dir %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	// ReadDir already sorts, but the load order defines recipe IDs, so the
	// invariant is enforced here rather than assumed.
	sort.Strings(names)

	var (
		recipes []models.Recipe
		raw     []models.RecipeData
	)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping unreadable recipe document",
				zap.String("file", name), zap.Error(err))
			continue
		}
		var doc models.RecipeData
		if err := json.Unmarshal(data, &doc); err != nil {
			logger.Warn("skipping malformed recipe document",
				zap.String("file", name), zap.Error(err))
			continue
		}
		id := len(recipes) + 1
		recipes = append(recipes, normalize(doc, slugFromFilename(name, doc.Title), id))
		raw = append(raw, doc)
	}

	logger.Info("recipe collection loaded",
		zap.String("dir", dir), zap.Int("count", len(recipes)))
	return newRepository(recipes, raw), nil
}

func newRepository(recipes []models.Recipe, raw []models.RecipeData) *Repository {
	bySlug := make(map[string]int, len(recipes))
	for i := range recipes {
		// First document wins on slug collisions; IDs stay unique regardless.
		if _, ok := bySlug[recipes[i].Slug]; !ok {
			bySlug[recipes[i].Slug] = i
		}
	}
	return &Repository{recipes: recipes, raw: raw, bySlug: bySlug}
}

// normalize builds the browse-level summary from a raw document, substituting
// per-field defaults so a partially filled document never fails the load.
func normalize(doc models.RecipeData, slug string, id int) models.Recipe {
	r := models.Recipe{
		ID:        id,
		Slug:      slug,
		Name:      doc.Title,
		TimeLabel: "N/A",
		Tags:      doc.Tags,
		CreatedAt: doc.CreatedAt,
	}
	if doc.Difficulty != nil && *doc.Difficulty != "" {
		r.Difficulty = models.Difficulty(capitalize(*doc.Difficulty))
	} else {
		r.Difficulty = models.DifficultyUnknown
	}
	if doc.TotalTimeMinutes != nil {
		r.TotalTimeMinutes = *doc.TotalTimeMinutes
		r.TimeLabel = fmt.Sprintf("%d min", r.TotalTimeMinutes)
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.CreatedAt == "" {
		r.CreatedAt = models.FallbackCreatedAt
	}
	return r
}

// slugFromFilename strips the .json extension; the filename stem is the
// authoritative slug. An empty stem falls back to a title-derived slug.
func slugFromFilename(name, title string) string {
	slug := strings.TrimSuffix(name, ".json")
	if slug == "" {
		slug = models.Slugify(title)
	}
	return slug
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// All returns a copy of the normalized collection in load order.
func (r *Repository) All() []models.Recipe {
	cp := make([]models.Recipe, len(r.recipes))
	copy(cp, r.recipes)
	return cp
}

// Len returns the number of loaded recipes.
func (r *Repository) Len() int {
	return len(r.recipes)
}

// FindBySlug returns the full raw document and its summary for a slug.
func (r *Repository) FindBySlug(slug string) (models.RecipeData, models.Recipe, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return models.RecipeData{}, models.Recipe{}, ErrNotFound
	}
	return r.raw[i], r.recipes[i], nil
}

// FindByID returns the full raw document and its summary for a 1-based id.
func (r *Repository) FindByID(id int) (models.RecipeData, models.Recipe, error) {
	if id < 1 || id > len(r.recipes) {
		return models.RecipeData{}, models.Recipe{}, ErrNotFound
	}
	return r.raw[id-1], r.recipes[id-1], nil
}
