package utils

import (
	"math"
)

// Pagination is a 1-indexed window over a listing. Pages out of range are
// clamped: page < 1 becomes 1, page > TotalPages becomes TotalPages, so a
// request beyond the end returns the last valid page instead of an error.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

func Paginate(page, perPage int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Pagination) PrevPage() int {
	return p.Page - 1
}

func (p Pagination) NextPage() int {
	return p.Page + 1
}
