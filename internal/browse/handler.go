package browse

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/pantryio/ladle/internal/pantry"
	"github.com/pantryio/ladle/internal/server"
	"github.com/pantryio/ladle/pkg/models"
	"github.com/pantryio/ladle/pkg/vocab"
)

// BrowseResponse is the response for GET /api/v1/recipes.
type BrowseResponse struct {
	Items          []models.Recipe `json:"items"`
	Total          int             `json:"total"`
	Page           int             `json:"page"`
	TotalPages     int             `json:"total_pages"`
	HasNext        bool            `json:"has_next"`
	HasPrev        bool            `json:"has_prev"`
	ShowPagination bool            `json:"show_pagination"`
	ActiveFilters  int             `json:"active_filters"`
	// Canonical is the normalized query string for this state, with
	// default-valued parameters omitted. Clients use it for shareable URLs.
	Canonical string `json:"canonical"`
}

// DetailResponse is the response for single-recipe lookups: the normalized
// summary plus the full raw document.
type DetailResponse struct {
	Recipe models.Recipe     `json:"recipe"`
	Data   models.RecipeData `json:"data"`
}

// VocabResponse lists the selectable facet and sort options.
type VocabResponse struct {
	Difficulties []vocab.Option `json:"difficulties"`
	Times        []vocab.Option `json:"times"`
	Tags         []vocab.Option `json:"tags"`
	Sorts        []vocab.Option `json:"sorts"`
}

// Handler serves the recipe browse API.
type Handler struct {
	engine   *Engine
	repo     *pantry.Repository
	voc      *vocab.Vocabulary
	pageSize int
	logger   *zap.Logger
}

// NewHandler creates a browse API handler. A non-positive pageSize falls
// back to the default of 10.
func NewHandler(engine *Engine, repo *pantry.Repository, voc *vocab.Vocabulary, pageSize int, logger *zap.Logger) *Handler {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Handler{
		engine:   engine,
		repo:     repo,
		voc:      voc,
		pageSize: pageSize,
		logger:   logger,
	}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/recipes", h.handleBrowse)
	mux.HandleFunc("GET /api/v1/recipes/{slug}", h.handleBySlug)
	mux.HandleFunc("GET /api/v1/recipes/id/{id}", h.handleByID)
	mux.HandleFunc("GET /api/v1/vocab", h.handleVocab)
}

// handleBrowse runs the search/filter/sort/paginate pipeline for the query
// state carried in the URL.
//
//	@Summary		Browse recipes
//	@Description	Returns a page of recipes matching the search text, facet filters, and sort mode in the URL query parameters. Unknown facet values are silently dropped.
//	@Tags			recipes
//	@Produce		json
//	@Param			q query string false "Free-text fuzzy search"
//	@Param			difficulty query string false "Comma-separated difficulty facets (Easy,Medium,Hard)"
//	@Param			time query string false "Comma-separated time buckets (under30,under60,over60)"
//	@Param			tag query string false "Comma-separated tags from the fixed vocabulary"
//	@Param			sort query string false "Sort mode" default(date-desc)
//	@Param			page query int false "1-based page number" default(1)
//	@Success		200 {object} BrowseResponse
//	@Router			/recipes [get]
func (h *Handler) handleBrowse(w http.ResponseWriter, r *http.Request) {
	state := DecodeQueryState(r.URL.Query(), h.voc)
	results := h.engine.Query(state)
	page := Paginate(results, state.Page, h.pageSize)

	writeJSON(w, http.StatusOK, BrowseResponse{
		Items:          page.Items,
		Total:          page.Total,
		Page:           page.Number,
		TotalPages:     page.TotalPages,
		HasNext:        page.HasNext,
		HasPrev:        page.HasPrev,
		ShowPagination: page.ShowControls,
		ActiveFilters:  state.ActiveFilterCount(),
		Canonical:      state.Encode().Encode(),
	})
}

// handleBySlug returns the full recipe document for a slug.
//
//	@Summary		Get recipe by slug
//	@Tags			recipes
//	@Produce		json
//	@Param			slug path string true "Recipe slug"
//	@Success		200 {object} DetailResponse
//	@Failure		404 {object} server.Problem
//	@Router			/recipes/{slug} [get]
func (h *Handler) handleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	data, recipe, err := h.repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, pantry.ErrNotFound) {
			server.NotFound(w, "no recipe with slug "+strconv.Quote(slug), r.URL.Path)
			return
		}
		h.logger.Error("recipe lookup failed", zap.String("slug", slug), zap.Error(err))
		server.InternalError(w, "recipe lookup failed", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, DetailResponse{Recipe: recipe, Data: data})
}

// handleByID returns the full recipe document for a numeric id.
//
//	@Summary		Get recipe by id
//	@Tags			recipes
//	@Produce		json
//	@Param			id path int true "1-based recipe id"
//	@Success		200 {object} DetailResponse
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/recipes/id/{id} [get]
func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		server.BadRequest(w, "id must be a positive integer", r.URL.Path)
		return
	}
	data, recipe, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, pantry.ErrNotFound) {
			server.NotFound(w, "no recipe with id "+raw, r.URL.Path)
			return
		}
		h.logger.Error("recipe lookup failed", zap.Int("id", id), zap.Error(err))
		server.InternalError(w, "recipe lookup failed", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, DetailResponse{Recipe: recipe, Data: data})
}

// handleVocab returns the facet and sort vocabularies for client UIs.
//
//	@Summary		List facet vocabularies
//	@Tags			recipes
//	@Produce		json
//	@Success		200 {object} VocabResponse
//	@Failure		500 {object} server.Problem
//	@Router			/vocab [get]
func (h *Handler) handleVocab(w http.ResponseWriter, r *http.Request) {
	fail := func(err error) {
		h.logger.Error("failed to load vocabulary", zap.Error(err))
		server.InternalError(w, "failed to load vocabulary", r.URL.Path)
	}

	difficulties, err := h.voc.Difficulties()
	if err != nil {
		fail(err)
		return
	}
	times, err := h.voc.Times()
	if err != nil {
		fail(err)
		return
	}
	tags, err := h.voc.Tags()
	if err != nil {
		fail(err)
		return
	}
	sorts, err := h.voc.Sorts()
	if err != nil {
		fail(err)
		return
	}

	writeJSON(w, http.StatusOK, VocabResponse{
		Difficulties: difficulties,
		Times:        times,
		Tags:         tags,
		Sorts:        sorts,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
