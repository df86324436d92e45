package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cankurt/commune/internal/app/models/dto"
)

const (
	// PerPage is the fixed page size for all list endpoints.
	PerPage = 10
	// DefaultPage is 1-based
	DefaultPage = 1
)

// ParsePageParam extracts the 1-based page number from the request query.
func ParsePageParam(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	return page
}

// CalculateOffsetLimit converts a 1-based page number into an SQL offset
// and limit.
func CalculateOffsetLimit(page int) (offset uint64, limit int) {
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * PerPage), PerPage
}

// NewPageMeta builds the pagination meta block for list responses.
func NewPageMeta(total int64, page int) dto.PageMeta {
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(PerPage)))
	}

	return dto.PageMeta{
		Total: total,
		Pages: pages,
		Page:  page,
	}
}
