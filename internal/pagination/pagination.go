package pagination

import "strings"

const (
	DefaultLimit     = 10
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
)

// Options are the raw, possibly-unset list parameters from the request.
type Options struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// Pages is the normalized query spec derived from Options.
type Pages struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

// Calculate substitutes defaults for missing or invalid fields. It never
// fails: a non-positive page or limit simply falls back to the default.
func Calculate(opts Options) Pages {
	page := opts.Page
	if page < 1 {
		page = 1
	}

	limit := opts.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	sortOrder := strings.ToLower(opts.SortOrder)
	if sortOrder != "asc" {
		sortOrder = DefaultSortOrder
	}

	return Pages{
		Page:      page,
		Limit:     limit,
		Skip:      (page - 1) * limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

// TotalPages is ceil(total/limit) for the response meta.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
