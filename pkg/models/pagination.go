package models

// Pagination describes the window of a paginated list response.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// Consistent reports whether HasMore agrees with the window arithmetic.
// The backend guarantees hasMore == (offset+limit < total) for every response.
func (p Pagination) Consistent() bool {
	return p.HasMore == (p.Offset+p.Limit < p.Total)
}
