package request

import (
	"net/url"

	"cinema-ticketing/pkg/utils"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PaginatedRequest pages a list the backend returns in one piece.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// PaginationFromQuery reads ?page=&per_page=. Missing or non-positive values
// fall back to the first page of DefaultPerPage.
func PaginationFromQuery(query url.Values) PaginatedRequest {
	return PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), DefaultPerPage),
	}
}

// Limit is PerPage clamped to [1, MaxPerPage].
func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	return min(p.PerPage, MaxPerPage)
}
