package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	"github.com/adityakumar2809/recipe-app-api/internal/money"
	"github.com/adityakumar2809/recipe-app-api/internal/service"
)

func (s *Server) registerRecipeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes",
		Summary:     "List recipes",
		Description: "Returns the current user's recipes, newest first, with relations as ID lists",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListRecipes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes/{id}",
		Summary:     "Get recipe",
		Description: "Returns a recipe with tags and ingredients expanded to full objects",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createRecipe",
		Method:        http.MethodPost,
		Path:          "/api/v1/recipes",
		Summary:       "Create recipe",
		Description:   "Creates a new recipe owned by the current user",
		Tags:          []string{"Recipes"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateRecipe)
}

// === DTOs ===

// ListRecipesInput contains parameters for listing recipes.
type ListRecipesInput struct {
	Authorization string `header:"Authorization"`
}

// RecipeResponse is the summary form of a recipe: relations are ID lists.
type RecipeResponse struct {
	ID          string   `json:"id" doc:"Recipe ID"`
	Title       string   `json:"title" doc:"Recipe title"`
	TimeMinutes int      `json:"time_minutes" doc:"Preparation time in minutes"`
	Price       string   `json:"price" doc:"Price as a decimal string"`
	Link        string   `json:"link,omitempty" doc:"External link"`
	Tags        []string `json:"tags" doc:"Attached tag IDs"`
	Ingredients []string `json:"ingredients" doc:"Attached ingredient IDs"`
}

// ListRecipesResponse contains a list of recipe summaries.
type ListRecipesResponse struct {
	Recipes []RecipeResponse `json:"recipes" doc:"List of recipes, newest first"`
}

// ListRecipesOutput wraps the list recipes response for Huma.
type ListRecipesOutput struct {
	Body ListRecipesResponse
}

// GetRecipeInput contains parameters for getting a recipe.
type GetRecipeInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Recipe ID"`
}

// RecipeDetailResponse is the detail form: relations expanded to objects.
type RecipeDetailResponse struct {
	ID          string               `json:"id" doc:"Recipe ID"`
	Title       string               `json:"title" doc:"Recipe title"`
	TimeMinutes int                  `json:"time_minutes" doc:"Preparation time in minutes"`
	Price       string               `json:"price" doc:"Price as a decimal string"`
	Link        string               `json:"link,omitempty" doc:"External link"`
	Tags        []TagResponse        `json:"tags" doc:"Attached tags"`
	Ingredients []IngredientResponse `json:"ingredients" doc:"Attached ingredients"`
}

// RecipeDetailOutput wraps the recipe detail response for Huma.
type RecipeDetailOutput struct {
	Body RecipeDetailResponse
}

// CreateRecipeRequest is the request body for creating a recipe.
type CreateRecipeRequest struct {
	Title       string   `json:"title" doc:"Recipe title"`
	TimeMinutes int      `json:"time_minutes,omitempty" doc:"Preparation time in minutes"`
	Price       string   `json:"price" doc:"Price as a decimal string, e.g. \"5.50\""`
	Link        string   `json:"link,omitempty" doc:"External link"`
	Tags        []string `json:"tags,omitempty" doc:"Tag IDs to attach"`
	Ingredients []string `json:"ingredients,omitempty" doc:"Ingredient IDs to attach"`
}

// CreateRecipeInput wraps the create recipe request for Huma.
type CreateRecipeInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateRecipeRequest
}

// === Handlers ===

func (s *Server) handleListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	recipes, err := s.services.Recipe.ListRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		resp[i] = mapRecipeResponse(r)
	}

	return &ListRecipesOutput{Body: ListRecipesResponse{Recipes: resp}}, nil
}

func (s *Server) handleGetRecipe(ctx context.Context, input *GetRecipeInput) (*RecipeDetailOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	detail, err := s.services.Recipe.GetRecipe(ctx, input.ID, userID)
	if err != nil {
		return nil, err
	}

	return &RecipeDetailOutput{Body: mapRecipeDetailResponse(detail)}, nil
}

func (s *Server) handleCreateRecipe(ctx context.Context, input *CreateRecipeInput) (*RecipeDetailOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	r, err := s.services.Recipe.CreateRecipe(ctx, userID, service.CreateRecipeRequest{
		Title:         input.Body.Title,
		TimeMinutes:   input.Body.TimeMinutes,
		Price:         input.Body.Price,
		Link:          input.Body.Link,
		TagIDs:        input.Body.Tags,
		IngredientIDs: input.Body.Ingredients,
	})
	if err != nil {
		return nil, err
	}

	detail, err := s.services.Recipe.GetRecipe(ctx, r.ID, userID)
	if err != nil {
		return nil, err
	}

	return &RecipeDetailOutput{Body: mapRecipeDetailResponse(detail)}, nil
}

// === Helpers ===

func mapRecipeResponse(r *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       money.FormatCents(r.PriceCents),
		Link:        r.Link,
		Tags:        r.TagIDs,
		Ingredients: r.IngredientIDs,
	}
}

func mapRecipeDetailResponse(detail *domain.RecipeDetail) RecipeDetailResponse {
	tags := make([]TagResponse, len(detail.Tags))
	for i := range detail.Tags {
		tags[i] = mapTagResponse(&detail.Tags[i])
	}
	ingredients := make([]IngredientResponse, len(detail.Ingredients))
	for i := range detail.Ingredients {
		ingredients[i] = mapIngredientResponse(&detail.Ingredients[i])
	}

	return RecipeDetailResponse{
		ID:          detail.ID,
		Title:       detail.Title,
		TimeMinutes: detail.TimeMinutes,
		Price:       money.FormatCents(detail.PriceCents),
		Link:        detail.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}
