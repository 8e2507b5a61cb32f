package models

// ErrorResponse is the JSON body of every handled error.
//
// Details carries the raw underlying error text and is only filled when the
// server runs with verbose errors enabled.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the JSON body of acknowledgement-only endpoints
// (logout, password change, delete, ...).
type MessageResponse struct {
	Message string `json:"message"`
}

// Page is one window of a paginated listing.
//
// Next and Prev are 1-based page numbers, or null when there is no such page.
// TotalCount is the cardinality of the whole collection at request time.
type Page[T any] struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	Next       *int        `json:"next"`
	Prev       *int        `json:"prev"`
	TotalCount int64       `json:"total_count"`
	Results    []Record[T] `json:"results"`
}
