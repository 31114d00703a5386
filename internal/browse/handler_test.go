package browse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryio/ladle/internal/pantry"
	"github.com/pantryio/ladle/internal/testutil"
	"github.com/pantryio/ladle/pkg/vocab"
)

// newTestHandler loads a 15-recipe collection and mounts the browse API on a
// fresh mux.
func newTestHandler(t *testing.T) *http.ServeMux {
	t.Helper()

	docs := make(map[string]string, 15)
	for i := 1; i <= 15; i++ {
		difficulty := "easy"
		if i%3 == 0 {
			difficulty = "hard"
		}
		docs[fmt.Sprintf("recipe_%02d.json", i)] = fmt.Sprintf(`{
			"title": "Recipe %02d",
			"difficulty": %q,
			"total_time": %d,
			"tags": ["Chicken"],
			"created_at": "2024-01-%02dT00:00:00.000Z"
		}`, i, difficulty, i*10, i)
	}
	dir := testutil.WriteDataDir(t, docs)

	repo, err := pantry.Load(dir, testutil.Logger())
	require.NoError(t, err)

	handler := NewHandler(NewEngine(repo.All()), repo, vocab.New(), 10, testutil.Logger())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleBrowseFirstPage(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BrowseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 15, resp.Total)
	assert.Len(t, resp.Items, 10)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.False(t, resp.HasPrev)
	assert.True(t, resp.ShowPagination)
	assert.Equal(t, 0, resp.ActiveFilters)
	assert.Empty(t, resp.Canonical)
	// Default ordering is newest-first.
	assert.Equal(t, "Recipe 15", resp.Items[0].Name)
}

func TestHandleBrowseSecondPage(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes?page=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BrowseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Items, 5)
	assert.False(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
	assert.Equal(t, "page=2", resp.Canonical)
}

func TestHandleBrowseWithFilters(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes?difficulty=Hard&sort=time-asc")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BrowseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 5, resp.Total) // recipes 3, 6, 9, 12, 15
	assert.Equal(t, 1, resp.ActiveFilters)
	assert.False(t, resp.ShowPagination)
	require.NotEmpty(t, resp.Items)
	assert.Equal(t, "Recipe 03", resp.Items[0].Name)
	for _, r := range resp.Items {
		assert.Equal(t, "Hard", string(r.Difficulty))
	}
}

func TestHandleBrowseNoMatches(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes?q=zzxxqqyy")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BrowseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.False(t, resp.ShowPagination)
}

func TestHandleBySlug(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes/recipe_07")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Recipe 07", resp.Data.Title)
	assert.Equal(t, "recipe_07", resp.Recipe.Slug)
	assert.Equal(t, 7, resp.Recipe.ID)
}

func TestHandleBySlugNotFound(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes/no_such_dish")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestHandleByID(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes/id/3")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Recipe.ID)
}

func TestHandleByIDRejectsNonNumeric(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes/id/seven")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleByIDNotFound(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/recipes/id/99")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleVocab(t *testing.T) {
	mux := newTestHandler(t)

	rec := get(t, mux, "/api/v1/vocab")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VocabResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Tags, 12)
	assert.Len(t, resp.Sorts, 8)
	assert.Len(t, resp.Difficulties, 3)
	assert.Len(t, resp.Times, 3)
}
