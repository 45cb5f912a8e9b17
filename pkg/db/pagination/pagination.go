package pagination

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrInvalidSkip  = errors.New("invalid_skip")
	ErrInvalidLimit = errors.New("invalid_limit")
)

// Page is an offset window over an ordered result set.
type Page struct {
	Skip  int
	Limit int
}

// Meta describes the window that produced a page together with the unwindowed total.
type Meta struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// New builds a Page from optional query values. A missing limit falls back to
// defaultLimit; present values must satisfy skip >= 0 and 1 <= limit <= maxLimit.
func New(skip, limit *int, defaultLimit, maxLimit int) (Page, error) {
	page := Page{Skip: 0, Limit: defaultLimit}

	if skip != nil {
		if *skip < 0 {
			return Page{}, ErrInvalidSkip
		}
		page.Skip = *skip
	}
	if limit != nil {
		page.Limit = *limit
	}
	if page.Limit < 1 || page.Limit > maxLimit {
		return Page{}, ErrInvalidLimit
	}

	return page, nil
}

// Apply adds OFFSET and LIMIT to the statement.
func (p Page) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.Offset(p.Skip).Limit(p.Limit)
}

func (p Page) Meta(total int64) Meta {
	return Meta{Skip: p.Skip, Limit: p.Limit, Total: total}
}
