package service

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// clampLimit keeps an explicit limit inside [1,100]; zero means "not sent"
// and takes the default.
func clampLimit(limit int) int {
	if limit == 0 {
		return defaultPageSize
	}
	if limit < 1 {
		return 1
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func totalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
