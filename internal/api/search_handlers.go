package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/adityakumar2809/recipe-app-api/internal/errors"
	"github.com/adityakumar2809/recipe-app-api/internal/money"
	"github.com/adityakumar2809/recipe-app-api/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchRecipes",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search recipes",
		Description: "Full-text search over the current user's recipe titles, tags, and ingredients",
		Tags:        []string{"Search"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSearchRecipes)
}

// === DTOs ===

// SearchInput contains search query parameters.
type SearchInput struct {
	Authorization string `header:"Authorization"`
	Query         string `query:"q" doc:"Search query"`
	MaxTime       int    `query:"max_time" doc:"Maximum preparation time in minutes (0 = no limit)"`
	MaxPrice      string `query:"max_price" doc:"Maximum price as a decimal string (empty = no limit)"`
	Limit         int    `query:"limit" doc:"Maximum number of hits to return"`
	Offset        int    `query:"offset" doc:"Number of hits to skip"`
	Sort          string `query:"sort" doc:"Sort field: relevance, title, recent, or time"`
	Order         string `query:"order" doc:"Sort order: asc or desc"`
}

// SearchHitResponse is a single search result.
type SearchHitResponse struct {
	ID          string            `json:"id" doc:"Recipe ID"`
	Score       float64           `json:"score" doc:"Relevance score"`
	Title       string            `json:"title" doc:"Recipe title"`
	Tags        []string          `json:"tags,omitempty" doc:"Tag names"`
	Ingredients []string          `json:"ingredients,omitempty" doc:"Ingredient names"`
	TimeMinutes int               `json:"time_minutes,omitempty" doc:"Preparation time in minutes"`
	Price       string            `json:"price,omitempty" doc:"Price as a decimal string"`
	Highlights  map[string]string `json:"highlights,omitempty" doc:"Match highlights by field"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Query  string              `json:"query" doc:"Original search query"`
	Total  uint64              `json:"total" doc:"Total matching recipes"`
	TookMs int64               `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHitResponse `json:"hits" doc:"Search hits"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearchRecipes(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	params := search.DefaultSearchParams()
	params.Query = input.Query
	params.UserID = userID
	params.MaxTimeMinutes = input.MaxTime
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	if input.Offset > 0 {
		params.Offset = input.Offset
	}
	if input.Sort != "" {
		params.SortBy = input.Sort
	}
	if input.Order != "" {
		params.SortOrder = input.Order
	}
	if input.MaxPrice != "" {
		cents, err := money.ParseCents(input.MaxPrice)
		if err != nil {
			return nil, domainerrors.Validation("max_price must be a non-negative decimal").WithCause(err)
		}
		params.MaxPriceCents = cents
	}

	result, err := s.services.Search.Search(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	hits := make([]SearchHitResponse, len(result.Hits))
	for i, hit := range result.Hits {
		hits[i] = SearchHitResponse{
			ID:          hit.ID,
			Score:       hit.Score,
			Title:       hit.Title,
			Tags:        hit.Tags,
			Ingredients: hit.Ingredients,
			TimeMinutes: hit.TimeMinutes,
			Highlights:  hit.Highlights,
		}
		if hit.PriceCents > 0 {
			hits[i].Price = money.FormatCents(hit.PriceCents)
		}
	}

	return &SearchOutput{
		Body: SearchResponse{
			Query:  result.Query,
			Total:  result.Total,
			TookMs: result.TookMs,
			Hits:   hits,
		},
	}, nil
}
