package domain

// Page is the paginated envelope every backend search endpoint returns.
// Current is 1-based; Pages is the total page count.
type Page[T any] struct {
	Records []T `json:"records"`
	Total   int `json:"total"`
	Size    int `json:"size"`
	Current int `json:"current"`
	Pages   int `json:"pages"`
}
