package browse

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pantryio/ladle/pkg/models"
	"github.com/pantryio/ladle/pkg/vocab"
)

// Time-bucket facet values. Buckets overlap: a 20-minute recipe matches both
// under30 and under60.
const (
	TimeUnder30 = "under30"
	TimeUnder60 = "under60"
	TimeOver60  = "over60"
)

// Query parameter names carried in browse URLs.
const (
	ParamQuery      = "q"
	ParamDifficulty = "difficulty"
	ParamTime       = "time"
	ParamTag        = "tag"
	ParamSort       = "sort"
	ParamPage       = "page"
)

// QueryState is the full browse state decoded from URL query parameters.
// It has no lifecycle of its own: every request decodes a fresh value.
type QueryState struct {
	SearchText   string
	Difficulties []string
	Times        []string
	Tags         []string
	Sort         models.SortKey
	Page         int
}

// ActiveFilterCount is the number of selected facet values across all three
// dimensions, exposed for UI affordance only.
func (s QueryState) ActiveFilterCount() int {
	return len(s.Difficulties) + len(s.Times) + len(s.Tags)
}

// DecodeQueryState reads browse state from URL query parameters. Unknown
// facet values are silently dropped against the closed vocabulary, an
// unknown sort key falls back to the default, and a missing or malformed
// page clamps to 1.
func DecodeQueryState(values url.Values, voc *vocab.Vocabulary) QueryState {
	return QueryState{
		SearchText:   values.Get(ParamQuery),
		Difficulties: parseListParam(values.Get(ParamDifficulty), voc.DifficultyValues()),
		Times:        parseListParam(values.Get(ParamTime), voc.TimeValues()),
		Tags:         parseListParam(values.Get(ParamTag), voc.TagValues()),
		Sort:         models.SortKey(values.Get(ParamSort)).Normalize(),
		Page:         parsePage(values.Get(ParamPage)),
	}
}

// Encode serializes the state back to URL query parameters, omitting every
// default-valued field so equivalent states produce identical, shareable
// URLs.
func (s QueryState) Encode() url.Values {
	values := url.Values{}
	if s.SearchText != "" {
		values.Set(ParamQuery, s.SearchText)
	}
	if len(s.Difficulties) > 0 {
		values.Set(ParamDifficulty, strings.Join(s.Difficulties, ","))
	}
	if len(s.Times) > 0 {
		values.Set(ParamTime, strings.Join(s.Times, ","))
	}
	if len(s.Tags) > 0 {
		values.Set(ParamTag, strings.Join(s.Tags, ","))
	}
	if key := s.Sort.Normalize(); key != models.DefaultSort {
		values.Set(ParamSort, string(key))
	}
	if s.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return values
}

// parseListParam splits a comma-separated parameter and keeps only values
// present in the allowed vocabulary, preserving order.
func parseListParam(raw string, allowed []string) []string {
	if raw == "" {
		return nil
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		allowedSet[v] = struct{}{}
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if _, ok := allowedSet[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
