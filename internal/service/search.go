package service

import (
	"context"
	"fmt"
	"log/slog"

	domainerrors "github.com/adityakumar2809/recipe-app-api/internal/errors"
	"github.com/adityakumar2809/recipe-app-api/internal/search"
)

// SearchService provides full-text recipe search scoped to the caller.
type SearchService struct {
	index  *search.SearchIndex
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.SearchIndex, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		logger: logger,
	}
}

// Search runs a query against the user's recipes.
func (s *SearchService) Search(ctx context.Context, userID string, params search.SearchParams) (*search.SearchResult, error) {
	if userID == "" {
		return nil, domainerrors.Unauthorized("authentication required")
	}

	params.UserID = userID
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = search.DefaultSearchParams().Limit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}

	return result, nil
}
