package domain

import "time"

// Ingredient is a user-owned pantry item referenced by recipes.
// Like tags, ingredients belong to exactly one user.
type Ingredient struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (i *Ingredient) Touch() {
	i.UpdatedAt = time.Now()
}

// RecipeIngredient represents the many-to-many relationship between recipes
// and ingredients.
type RecipeIngredient struct {
	RecipeID     string    `json:"recipe_id"`
	IngredientID string    `json:"ingredient_id"`
	CreatedAt    time.Time `json:"created_at"`
}
