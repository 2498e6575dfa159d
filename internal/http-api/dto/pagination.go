package dto

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationInfo is attached to every paginated envelope.
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewPaginationInfo computes total_pages with real division before the
// ceiling, so total = 0 yields zero pages and has_more = false for any
// page.
func NewPaginationInfo(page, pageSize int, total int64) PaginationInfo {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return PaginationInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// NormalizePagination clamps page and page_size into bounds and derives
// the row offset. Out-of-range values are clamped, never rejected. Every
// paginated view goes through this so the page-size contract is uniform
// across the API.
func NormalizePagination(page, pageSize, maxSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	offset := (page - 1) * pageSize
	return page, pageSize, offset
}

// PaginationFromQuery reads page/page_size query parameters, substituting
// the configured default when page_size is absent, and normalizes the
// result. Unparsable values behave like zero and get clamped.
func PaginationFromQuery(c *gin.Context, defaultSize, maxSize int) (int, int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	return NormalizePagination(page, pageSize, maxSize)
}
