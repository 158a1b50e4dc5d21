package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	"github.com/adityakumar2809/recipe-app-api/internal/store"
)

// recipeColumns is the ordered list of columns selected in recipe queries.
// Must match the scan order in scanRecipe.
const recipeColumns = `id, user_id, created_at, updated_at, deleted_at, title,
	time_minutes, price_cents, link`

// scanRecipe scans a sql.Row (or sql.Rows via its Scan method) into a domain.Recipe.
// Relation ids are not populated here; see loadRecipeRelations.
func scanRecipe(scanner interface{ Scan(dest ...any) error }) (*domain.Recipe, error) {
	var r domain.Recipe

	var (
		createdAt string
		updatedAt string
		deletedAt sql.NullString
		link      sql.NullString
	)

	err := scanner.Scan(
		&r.ID,
		&r.UserID,
		&createdAt,
		&updatedAt,
		&deletedAt,
		&r.Title,
		&r.TimeMinutes,
		&r.PriceCents,
		&link,
	)
	if err != nil {
		return nil, err
	}

	r.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	r.DeletedAt, err = parseNullableTime(deletedAt)
	if err != nil {
		return nil, err
	}

	if link.Valid {
		r.Link = link.String
	}

	return &r, nil
}

// CreateRecipe inserts a recipe and its tag/ingredient associations in a
// single transaction. Referenced tag or ingredient ids that do not exist
// surface as store.ErrInvalidInput via the foreign key constraint, so no
// partial recipe row survives a bad attach.
func (s *Store) CreateRecipe(ctx context.Context, r *domain.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (
			id, user_id, created_at, updated_at, deleted_at, title,
			time_minutes, price_cents, link
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.UserID,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
		nullTimeString(r.DeletedAt),
		r.Title,
		r.TimeMinutes,
		r.PriceCents,
		nullString(r.Link),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	now := formatTime(time.Now().UTC())
	for _, tagID := range r.TagIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_tags (recipe_id, tag_id, created_at)
			VALUES (?, ?, ?)`,
			r.ID, tagID, now,
		); err != nil {
			if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
				return fmt.Errorf("unknown tag id %s: %w", tagID, store.ErrInvalidInput)
			}
			return fmt.Errorf("insert recipe_tag: %w", err)
		}
	}
	for _, ingredientID := range r.IngredientIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, created_at)
			VALUES (?, ?, ?)`,
			r.ID, ingredientID, now,
		); err != nil {
			if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
				return fmt.Errorf("unknown ingredient id %s: %w", ingredientID, store.ErrInvalidInput)
			}
			return fmt.Errorf("insert recipe_ingredient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.indexRecipe(ctx, r)
	return nil
}

// indexRecipe pushes a recipe into the search index with its relation names
// denormalized. Index failures are logged, never surfaced: search staleness
// must not fail a write.
func (s *Store) indexRecipe(ctx context.Context, r *domain.Recipe) {
	tags, err := s.GetTagsByIDs(ctx, r.TagIDs)
	if err != nil {
		s.logger.Warn("load tags for search indexing", "recipe_id", r.ID, "error", err)
		return
	}
	ingredients, err := s.GetIngredientsByIDs(ctx, r.IngredientIDs)
	if err != nil {
		s.logger.Warn("load ingredients for search indexing", "recipe_id", r.ID, "error", err)
		return
	}

	tagNames := make([]string, 0, len(tags))
	for _, t := range tags {
		tagNames = append(tagNames, t.Name)
	}
	ingredientNames := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientNames = append(ingredientNames, ing.Name)
	}

	s.searchIndexer.IndexRecipe(r, tagNames, ingredientNames)
}

// GetUserRecipe retrieves a recipe by ID scoped to its owner.
// A recipe belonging to another user is indistinguishable from a missing
// one: both return store.ErrNotFound.
func (s *Store) GetUserRecipe(ctx context.Context, id, userID string) (*domain.Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 WHERE id = ? AND user_id = ? AND deleted_at IS NULL`, id, userID)

	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadRecipeRelations(ctx, []*domain.Recipe{r}); err != nil {
		return nil, err
	}
	return r, nil
}

// ListUserRecipes returns the user's recipes, newest first.
func (s *Store) ListUserRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 WHERE user_id = ? AND deleted_at IS NULL
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if recipes == nil {
		recipes = []*domain.Recipe{}
	}

	if err := s.loadRecipeRelations(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// loadRecipeRelations populates TagIDs and IngredientIDs for a batch of
// recipes with two grouped queries instead of two per recipe.
func (s *Store) loadRecipeRelations(ctx context.Context, recipes []*domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Recipe, len(recipes))
	placeholders := strings.Repeat("?,", len(recipes)-1) + "?"
	args := make([]any, len(recipes))
	for i, r := range recipes {
		r.TagIDs = []string{}
		r.IngredientIDs = []string{}
		byID[r.ID] = r
		args[i] = r.ID
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT recipe_id, tag_id FROM recipe_tags
		WHERE recipe_id IN (`+placeholders+`) ORDER BY rowid ASC`, args...)
	if err != nil {
		return fmt.Errorf("query recipe_tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID, tagID string
		if err := rows.Scan(&recipeID, &tagID); err != nil {
			return fmt.Errorf("scan recipe_tag: %w", err)
		}
		if r, ok := byID[recipeID]; ok {
			r.TagIDs = append(r.TagIDs, tagID)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	ingRows, err := s.db.QueryContext(ctx, `
		SELECT recipe_id, ingredient_id FROM recipe_ingredients
		WHERE recipe_id IN (`+placeholders+`) ORDER BY rowid ASC`, args...)
	if err != nil {
		return fmt.Errorf("query recipe_ingredients: %w", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var recipeID, ingredientID string
		if err := ingRows.Scan(&recipeID, &ingredientID); err != nil {
			return fmt.Errorf("scan recipe_ingredient: %w", err)
		}
		if r, ok := byID[recipeID]; ok {
			r.IngredientIDs = append(r.IngredientIDs, ingredientID)
		}
	}
	return ingRows.Err()
}
