package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	domainerrors "github.com/adityakumar2809/recipe-app-api/internal/errors"
	"github.com/adityakumar2809/recipe-app-api/internal/id"
	"github.com/adityakumar2809/recipe-app-api/internal/money"
	"github.com/adityakumar2809/recipe-app-api/internal/store"
)

// RecipeService orchestrates recipe operations. Recipes are strictly
// owner-scoped: reads for another user's recipe look identical to reads
// for a missing one.
type RecipeService struct {
	store  store.Store
	logger *slog.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(store store.Store, logger *slog.Logger) *RecipeService {
	return &RecipeService{
		store:  store,
		logger: logger,
	}
}

// CreateRecipeRequest contains the recipe creation payload. Price is a
// decimal string ("5.50") converted to cents for storage.
type CreateRecipeRequest struct {
	Title         string   `json:"title" validate:"required"`
	TimeMinutes   int      `json:"time_minutes" validate:"gte=0"`
	Price         string   `json:"price" validate:"required"`
	Link          string   `json:"link"`
	TagIDs        []string `json:"tags"`
	IngredientIDs []string `json:"ingredients"`
}

// CreateRecipe validates and persists a new recipe for the user.
// Attached tag and ingredient ids are resolved against the global pool;
// any unknown id fails the whole request before a row is written.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID string, req CreateRecipeRequest) (*domain.Recipe, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	priceCents, err := money.ParseCents(req.Price)
	if err != nil {
		return nil, domainerrors.Validation("price must be a non-negative decimal with at most two places").WithCause(err)
	}

	if err := s.resolveTagIDs(ctx, req.TagIDs); err != nil {
		return nil, err
	}
	if err := s.resolveIngredientIDs(ctx, req.IngredientIDs); err != nil {
		return nil, err
	}

	recipeID, err := id.Generate("recipe")
	if err != nil {
		return nil, fmt.Errorf("generate recipe ID: %w", err)
	}

	recipe := &domain.Recipe{
		Syncable: domain.Syncable{
			ID: recipeID,
		},
		UserID:        userID,
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		PriceCents:    priceCents,
		Link:          req.Link,
		TagIDs:        dedupe(req.TagIDs),
		IngredientIDs: dedupe(req.IngredientIDs),
	}
	recipe.InitTimestamps()

	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			return nil, domainerrors.Validation("unknown tag or ingredient id").WithCause(err)
		}
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	s.logger.Info("recipe created", "recipe_id", recipeID, "user_id", userID)

	return recipe, nil
}

// ListRecipes returns the user's recipes, newest first, with relation ids
// attached but not expanded.
func (s *RecipeService) ListRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	return s.store.ListUserRecipes(ctx, userID)
}

// GetRecipe returns a single recipe with its tags and ingredients
// expanded to full objects. Unknown ids and other users' recipes both
// come back as not found.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID, userID string) (*domain.RecipeDetail, error) {
	recipe, err := s.store.GetUserRecipe(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("recipe not found")
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	tags, err := s.store.GetTagsByIDs(ctx, recipe.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	ingredients, err := s.store.GetIngredientsByIDs(ctx, recipe.IngredientIDs)
	if err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}

	detail := &domain.RecipeDetail{
		Recipe:      *recipe,
		Tags:        make([]domain.Tag, 0, len(tags)),
		Ingredients: make([]domain.Ingredient, 0, len(ingredients)),
	}
	for _, t := range tags {
		detail.Tags = append(detail.Tags, *t)
	}
	for _, ing := range ingredients {
		detail.Ingredients = append(detail.Ingredients, *ing)
	}

	return detail, nil
}

// resolveTagIDs verifies every id exists. The attach pool is global:
// tags created by other users are valid attachments.
func (s *RecipeService) resolveTagIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tags, err := s.store.GetTagsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve tags: %w", err)
	}
	if len(tags) != len(dedupe(ids)) {
		return domainerrors.Validation("one or more tag ids do not exist")
	}
	return nil
}

// resolveIngredientIDs verifies every id exists, same global pool rule
// as tags.
func (s *RecipeService) resolveIngredientIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	ingredients, err := s.store.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve ingredients: %w", err)
	}
	if len(ingredients) != len(dedupe(ids)) {
		return domainerrors.Validation("one or more ingredient ids do not exist")
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
