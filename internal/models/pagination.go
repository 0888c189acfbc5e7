package models

// Pagination is derived state recomputed on every fetch, never persisted.
// Page numbers are 1-based.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNextPage"`
	HasPrev     bool `json:"hasPrevPage"`
}

// PaginateContent slices one page out of records. Requests beyond the last
// page return empty items with pagination state reflecting the request as
// made; clamping is left to the caller.
func PaginateContent(records []ContentRecord, page, pageSize int) ([]ContentRecord, Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	p := Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []ContentRecord{}, p
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return records[start:end], p
}
