package store

import (
	"context"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error
	Ping(ctx context.Context) error
	SetSearchIndexer(indexer SearchIndexer)

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error

	// Auth Sessions
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	GetSessionByRefreshToken(ctx context.Context, tokenHash string) (*domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
	DeleteSession(ctx context.Context, id string) error
	ListUserSessions(ctx context.Context, userID string) ([]*domain.Session, error)
	DeleteExpiredSessions(ctx context.Context) (int, error)

	// Tags
	CreateTag(ctx context.Context, tag *domain.Tag) error
	GetTag(ctx context.Context, id string) (*domain.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error)
	ListUserTags(ctx context.Context, userID string, assignedOnly bool) ([]*domain.Tag, error)

	// Ingredients
	CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error
	GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []string) ([]*domain.Ingredient, error)
	ListUserIngredients(ctx context.Context, userID string, assignedOnly bool) ([]*domain.Ingredient, error)

	// Recipes
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	GetUserRecipe(ctx context.Context, id, userID string) (*domain.Recipe, error)
	ListUserRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error)
}

// SearchIndexer maintains the full-text search index as recipes change.
// The store calls it after successful writes; implementations must be safe
// for concurrent use.
type SearchIndexer interface {
	IndexRecipe(recipe *domain.Recipe, tagNames, ingredientNames []string)
	RemoveRecipe(recipeID string)
}

// NewNoopSearchIndexer returns an indexer that does nothing.
// Used before the real index is wired up, and in store-level tests.
func NewNoopSearchIndexer() SearchIndexer {
	return noopSearchIndexer{}
}

type noopSearchIndexer struct{}

func (noopSearchIndexer) IndexRecipe(*domain.Recipe, []string, []string) {}
func (noopSearchIndexer) RemoveRecipe(string)                            {}
