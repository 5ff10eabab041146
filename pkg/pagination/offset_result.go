package pagination

// OffsetResult is one page of items plus enough bookkeeping for a client to
// render pagination controls without a second round trip.
type OffsetResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	HasMore bool  `json:"has_more"`
}

// NewOffsetResult builds a page result. Total is the full result count
// before slicing, not the page length.
func NewOffsetResult[T any](items []T, total int64, page, size int) *OffsetResult[T] {
	offset := (page - 1) * size
	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		HasMore: int64(offset+size) < total,
	}
}
