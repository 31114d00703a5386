package browse

import "github.com/pantryio/ladle/pkg/models"

// DefaultPageSize is the number of recipes per browse page.
const DefaultPageSize = 10

// Page is one fixed-size slice of an ordered result set.
type Page struct {
	Items      []models.Recipe
	Total      int
	Number     int
	TotalPages int
	HasNext    bool
	HasPrev    bool
	// ShowControls reports whether pagination controls should render at all:
	// hidden entirely when the whole result set fits on a single page.
	ShowControls bool
}

// Paginate slices records into the requested page. The page number is
// clamped to [1, totalPages] before slicing, so out-of-range requests return
// the nearest valid page rather than an empty one. An empty result set
// yields a single empty page.
func Paginate(records []models.Recipe, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	items := make([]models.Recipe, end-start)
	copy(items, records[start:end])

	return Page{
		Items:        items,
		Total:        total,
		Number:       page,
		TotalPages:   totalPages,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
		ShowControls: total > pageSize,
	}
}
