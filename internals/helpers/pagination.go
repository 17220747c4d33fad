package helper

import (
	"strconv"
	"strings"
)

const PageSize = 10

// Page is the result of Paginate.
type Page struct {
	Current    int
	Limit      int
	Offset     int
	TotalPages int
}

// Paginate validates the raw ?page= value against totalItems.
// Order of checks: integer, >= 1, <= total pages.
func Paginate(totalItems int64, page string) (Page, error) {
	n, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil {
		return Page{}, ErrValidation("Page must be an integer")
	}
	if n < 1 {
		return Page{}, ErrValidation("Page must be larger than 0")
	}
	totalPages := int((totalItems + PageSize - 1) / PageSize)
	if n > totalPages {
		return Page{}, ErrValidation("Total pages are %d", totalPages)
	}
	return Page{
		Current:    n,
		Limit:      PageSize,
		Offset:     (n - 1) * PageSize,
		TotalPages: totalPages,
	}, nil
}
