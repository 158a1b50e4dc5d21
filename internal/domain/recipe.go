package domain

// Recipe is the central entity: a dish owned by a single user, optionally
// labeled with tags and composed of ingredients.
//
// Price is stored as integer cents to avoid float money arithmetic; the API
// layer renders it as a decimal string.
type Recipe struct {
	Syncable
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	TimeMinutes int    `json:"time_minutes"`
	PriceCents  int64  `json:"price_cents"`
	Link        string `json:"link,omitempty"`

	// Relation ids, populated by the store on read.
	TagIDs        []string `json:"tag_ids"`
	IngredientIDs []string `json:"ingredient_ids"`
}

// RecipeDetail is a recipe with its tag and ingredient relations expanded
// to full objects. Used by the retrieve endpoint.
type RecipeDetail struct {
	Recipe
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}
