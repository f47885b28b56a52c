package models

import "time"

type PaginationQuery struct {
	Page     int    `form:"page" json:"page"`
	Limit    int    `form:"limit" json:"limit"`
	Search   string `form:"search" json:"search"`
	Sorter   string `form:"sorter" json:"sorter"`
	SortDesc bool   `form:"desc" json:"desc"`
}

// Normalize clamps pagination input to sane values
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

type PaginationResult struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPaginationResult computes page metadata for a listing response
func NewPaginationResult(total int64, page, pageSize int) PaginationResult {
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	offset := (page - 1) * pageSize
	return PaginationResult{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    int64(offset+pageSize) < total,
		HasPrev:    page > 1,
	}
}
