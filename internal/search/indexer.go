package search

import (
	"log/slog"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
)

// Indexer feeds recipe writes into the search index. It satisfies the
// store's SearchIndexer interface so the store stays decoupled from Bleve.
// Failures are logged and swallowed: a stale index is recoverable, a
// failed write is not.
type Indexer struct {
	index  *SearchIndex
	logger *slog.Logger
}

// NewIndexer wraps a SearchIndex for use as a store indexer.
func NewIndexer(index *SearchIndex, logger *slog.Logger) *Indexer {
	return &Indexer{index: index, logger: logger}
}

func (i *Indexer) IndexRecipe(recipe *domain.Recipe, tagNames, ingredientNames []string) {
	doc := RecipeToSearchDocument(recipe, tagNames, ingredientNames)
	if err := i.index.IndexDocument(doc); err != nil {
		i.logger.Warn("index recipe", "recipe_id", recipe.ID, "error", err)
	}
}

func (i *Indexer) RemoveRecipe(recipeID string) {
	if err := i.index.DeleteDocument(recipeID); err != nil {
		i.logger.Warn("remove recipe from index", "recipe_id", recipeID, "error", err)
	}
}
