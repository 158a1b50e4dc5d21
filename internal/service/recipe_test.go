package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakumar2809/recipe-app-api/internal/store"
	"github.com/adityakumar2809/recipe-app-api/internal/store/sqlite"
)

// setupRecipeTest creates the recipe, tag, and ingredient services over
// temporary storage.
func setupRecipeTest(t *testing.T) (*RecipeService, *TagService, *IngredientService, store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "recipe-service-test-*")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s, err := sqlite.Open(filepath.Join(tmpDir, "test.db"), logger)
	require.NoError(t, err)

	recipeService := NewRecipeService(s, logger)
	tagService := NewTagService(s, logger)
	ingredientService := NewIngredientService(s, logger)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return recipeService, tagService, ingredientService, s, cleanup
}

func TestRecipeService_CreateRecipe_Success(t *testing.T) {
	recipeService, tagService, ingredientService, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	user := createServiceTestUser(t, s, "recipes@example.com")

	tag, err := tagService.CreateTag(ctx, user.ID, "Dessert")
	require.NoError(t, err)
	ing, err := ingredientService.CreateIngredient(ctx, user.ID, "Chocolate")
	require.NoError(t, err)

	recipe, err := recipeService.CreateRecipe(ctx, user.ID, CreateRecipeRequest{
		Title:         "Chocolate cheesecake",
		TimeMinutes:   30,
		Price:         "5.50",
		Link:          "https://example.com/cheesecake",
		TagIDs:        []string{tag.ID},
		IngredientIDs: []string{ing.ID},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, user.ID, recipe.UserID)
	assert.Equal(t, "Chocolate cheesecake", recipe.Title)
	assert.Equal(t, 30, recipe.TimeMinutes)
	assert.Equal(t, int64(550), recipe.PriceCents)
	assert.Equal(t, []string{tag.ID}, recipe.TagIDs)
	assert.Equal(t, []string{ing.ID}, recipe.IngredientIDs)
}

func TestRecipeService_CreateRecipe_ValidationErrors(t *testing.T) {
	recipeService, _, _, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	user := createServiceTestUser(t, s, "validation@example.com")

	tests := []struct {
		name    string
		req     CreateRecipeRequest
		wantErr string
	}{
		{
			name:    "missing title",
			req:     CreateRecipeRequest{Title: "", TimeMinutes: 5, Price: "1.00"},
			wantErr: "title",
		},
		{
			name:    "negative time",
			req:     CreateRecipeRequest{Title: "Soup", TimeMinutes: -1, Price: "1.00"},
			wantErr: "time_minutes",
		},
		{
			name:    "negative price",
			req:     CreateRecipeRequest{Title: "Soup", TimeMinutes: 5, Price: "-1.00"},
			wantErr: "price",
		},
		{
			name:    "malformed price",
			req:     CreateRecipeRequest{Title: "Soup", TimeMinutes: 5, Price: "cheap"},
			wantErr: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recipeService.CreateRecipe(ctx, user.ID, tt.req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	// None of the failed creates left a recipe behind.
	recipes, err := recipeService.ListRecipes(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeService_CreateRecipe_UnknownTagID(t *testing.T) {
	recipeService, _, _, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	user := createServiceTestUser(t, s, "unknowntag@example.com")

	_, err := recipeService.CreateRecipe(ctx, user.ID, CreateRecipeRequest{
		Title:       "Mystery dish",
		TimeMinutes: 5,
		Price:       "1.00",
		TagIDs:      []string{"tag-does-not-exist"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tag ids")
}

func TestRecipeService_CreateRecipe_CrossUserTag(t *testing.T) {
	recipeService, tagService, _, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	owner := createServiceTestUser(t, s, "tagowner@example.com")
	other := createServiceTestUser(t, s, "tagborrower@example.com")

	// The attach pool is global: another user's tag id is accepted.
	tag, err := tagService.CreateTag(ctx, owner.ID, "Shared")
	require.NoError(t, err)

	recipe, err := recipeService.CreateRecipe(ctx, other.ID, CreateRecipeRequest{
		Title:       "Borrowed tag dish",
		TimeMinutes: 5,
		Price:       "1.00",
		TagIDs:      []string{tag.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{tag.ID}, recipe.TagIDs)
}

func TestRecipeService_GetRecipe_ExpandsRelations(t *testing.T) {
	recipeService, tagService, ingredientService, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	user := createServiceTestUser(t, s, "detail@example.com")

	tag, err := tagService.CreateTag(ctx, user.ID, "Dinner")
	require.NoError(t, err)
	ing, err := ingredientService.CreateIngredient(ctx, user.ID, "Prawns")
	require.NoError(t, err)

	created, err := recipeService.CreateRecipe(ctx, user.ID, CreateRecipeRequest{
		Title:         "Prawn curry",
		TimeMinutes:   25,
		Price:         "12.50",
		TagIDs:        []string{tag.ID},
		IngredientIDs: []string{ing.ID},
	})
	require.NoError(t, err)

	detail, err := recipeService.GetRecipe(ctx, created.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, detail.ID)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, "Dinner", detail.Tags[0].Name)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "Prawns", detail.Ingredients[0].Name)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	recipeService, _, _, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	user := createServiceTestUser(t, s, "missing@example.com")

	_, err := recipeService.GetRecipe(ctx, "recipe-nonexistent", user.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRecipeService_GetRecipe_CrossUser(t *testing.T) {
	recipeService, _, _, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	owner := createServiceTestUser(t, s, "secret@example.com")
	other := createServiceTestUser(t, s, "snoop@example.com")

	created, err := recipeService.CreateRecipe(ctx, owner.ID, CreateRecipeRequest{
		Title:       "Secret sauce",
		TimeMinutes: 5,
		Price:       "1.00",
	})
	require.NoError(t, err)

	// Cross-user access reports not found, never forbidden.
	_, err = recipeService.GetRecipe(ctx, created.ID, other.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRecipeService_ListRecipes_OwnerOnly(t *testing.T) {
	recipeService, _, _, s, cleanup := setupRecipeTest(t)
	defer cleanup()

	ctx := context.Background()
	alice := createServiceTestUser(t, s, "alice@example.com")
	bob := createServiceTestUser(t, s, "bob@example.com")

	_, err := recipeService.CreateRecipe(ctx, alice.ID, CreateRecipeRequest{
		Title: "Alice's pie", TimeMinutes: 40, Price: "3.00",
	})
	require.NoError(t, err)
	_, err = recipeService.CreateRecipe(ctx, bob.ID, CreateRecipeRequest{
		Title: "Bob's stew", TimeMinutes: 90, Price: "4.00",
	})
	require.NoError(t, err)

	recipes, err := recipeService.ListRecipes(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Alice's pie", recipes[0].Title)
}
