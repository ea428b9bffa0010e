package helpers

import (
	"net/http"
	"strconv"

	"sportevents/internal/domain"
)

// ParsePagination reads page and page_size from the query string. Unparseable values count as
// absent; domain.NewPage applies the defaults and the cap.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.NewPage(queryInt(q.Get("page")), queryInt(q.Get("page_size")))
}

func queryInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// PaginationMeta describes the page returned by a paginated list.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPaginationMeta derives the page count from total. A zero page size yields zero pages.
func NewPaginationMeta(p domain.PaginationParams, total int) PaginationMeta {
	meta := PaginationMeta{Page: p.Page, PageSize: p.PageSize, Total: total}
	if p.PageSize > 0 {
		meta.TotalPages = (total + p.PageSize - 1) / p.PageSize
	}
	meta.HasNext = p.Page < meta.TotalPages
	return meta
}
