// Package search provides full-text recipe search using Bleve.
// Recipes are indexed with their tag and ingredient names denormalized
// so a single query covers all three, with results scoped per owner.
package search

import (
	"github.com/adityakumar2809/recipe-app-api/internal/domain"
)

// SearchDocument is the document structure for the Bleve index.
//
// Design note: tag and ingredient names are denormalized into recipe
// documents so one query covers all searchable text. The trade-off is
// stale names after a tag rename until the recipe is reindexed.
type SearchDocument struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"` // Owner filter, exact match only

	Title       string   `json:"title"`
	Tags        []string `json:"tags,omitempty"`        // Denormalized tag names
	Ingredients []string `json:"ingredients,omitempty"` // Denormalized ingredient names

	// Numeric fields for range queries and sorting
	TimeMinutes int   `json:"time_minutes,omitempty"`
	PriceCents  int64 `json:"price_cents,omitempty"`

	CreatedAt int64 `json:"created_at"` // Unix millis
	UpdatedAt int64 `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *SearchDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"user_id":    d.UserID,
		"title":      d.Title,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if len(d.Ingredients) > 0 {
		m["ingredients"] = d.Ingredients
	}
	if d.TimeMinutes > 0 {
		m["time_minutes"] = d.TimeMinutes
	}
	if d.PriceCents > 0 {
		m["price_cents"] = d.PriceCents
	}

	return m
}

// RecipeToSearchDocument converts a domain Recipe to a SearchDocument.
// Tag and ingredient names must be provided by the caller, as the search
// package shouldn't depend on store.
func RecipeToSearchDocument(r *domain.Recipe, tagNames, ingredientNames []string) *SearchDocument {
	return &SearchDocument{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Tags:        tagNames,
		Ingredients: ingredientNames,
		TimeMinutes: r.TimeMinutes,
		PriceCents:  r.PriceCents,
		CreatedAt:   r.CreatedAt.UnixMilli(),
		UpdatedAt:   r.UpdatedAt.UnixMilli(),
	}
}
