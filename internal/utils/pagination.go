package utils

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// PageParams holds the validated pagination query parameters.
type PageParams struct {
	Page     int
	PageSize int
}

var (
	errBadPage     = errors.New("page must be an integer >= 1")
	errBadPageSize = errors.New("page_size must be an integer between 1 and the allowed maximum")
)

// ParsePageParams reads `page` and `page_size` from the query string.
// Out-of-range values are an error rather than silently clamped, so
// the frontend notices broken bindings.
func ParsePageParams(c *fiber.Ctx, defaultSize, maxSize int) (PageParams, error) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return PageParams{}, errBadPage
	}

	size, err := strconv.Atoi(c.Query("page_size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 || size > maxSize {
		return PageParams{}, errBadPageSize
	}

	return PageParams{Page: page, PageSize: size}, nil
}

// TotalPages calculates the number of pages for the given item count,
// with a floor of one page for an empty result.
func TotalPages(totalItems int64, pageSize int) int {
	if totalItems <= 0 {
		return 1
	}
	pages := int(totalItems) / pageSize
	if int(totalItems)%pageSize > 0 {
		pages++
	}
	return pages
}
