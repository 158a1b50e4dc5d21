package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	domainerrors "github.com/adityakumar2809/recipe-app-api/internal/errors"
	"github.com/adityakumar2809/recipe-app-api/internal/id"
	"github.com/adityakumar2809/recipe-app-api/internal/store"
)

// IngredientService orchestrates ingredient operations, owned per user
// like tags.
type IngredientService struct {
	store  store.Store
	logger *slog.Logger
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(store store.Store, logger *slog.Logger) *IngredientService {
	return &IngredientService{
		store:  store,
		logger: logger,
	}
}

// ListIngredients returns the user's ingredients ordered by name
// descending. With assignedOnly set, only ingredients referenced by at
// least one of the user's recipes are returned, each at most once.
func (s *IngredientService) ListIngredients(ctx context.Context, userID string, assignedOnly bool) ([]*domain.Ingredient, error) {
	return s.store.ListUserIngredients(ctx, userID, assignedOnly)
}

// CreateIngredient creates an ingredient for the user. Name must be
// non-empty after trimming.
func (s *IngredientService) CreateIngredient(ctx context.Context, userID, name string) (*domain.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.Validation("name is required")
	}

	ingredientID, err := id.Generate("ingr")
	if err != nil {
		return nil, fmt.Errorf("generate ingredient ID: %w", err)
	}

	now := time.Now()
	ingredient := &domain.Ingredient{
		ID:        ingredientID,
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateIngredient(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("create ingredient: %w", err)
	}

	s.logger.Info("ingredient created", "ingredient_id", ingredientID, "user_id", userID)

	return ingredient, nil
}
