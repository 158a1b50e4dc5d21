package api

import (
	"encoding/hex"
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/adityakumar2809/recipe-app-api/internal/auth"
	"github.com/adityakumar2809/recipe-app-api/internal/search"
	"github.com/adityakumar2809/recipe-app-api/internal/service"
	"github.com/adityakumar2809/recipe-app-api/internal/store/sqlite"
)

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	V       string `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api          humatest.TestAPI
	tokenService *auth.TokenService
}

// setupTestServer creates a fully wired server over a temp-dir sqlite store
// and search index.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := sqlite.Open(filepath.Join(tmpDir, "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	index, err := search.NewSearchIndex(search.Options{
		DataPath: tmpDir,
		Logger:   logger,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	st.SetSearchIndexer(search.NewIndexer(index, logger))

	authKey, err := auth.LoadOrGenerateKey(tmpDir)
	require.NoError(t, err)

	tokenService, err := auth.NewTokenService(
		hex.EncodeToString(authKey),
		15*time.Minute,
		30*24*time.Hour,
	)
	require.NoError(t, err)

	sessionService := service.NewSessionService(st, tokenService, logger)
	authService := service.NewAuthService(st, tokenService, sessionService, logger)

	services := &Services{
		Auth:       authService,
		Session:    sessionService,
		Tag:        service.NewTagService(st, logger),
		Ingredient: service.NewIngredientService(st, logger),
		Recipe:     service.NewRecipeService(st, logger),
		Search:     service.NewSearchService(index, logger),
	}

	s := NewServer(st, services, index, logger)

	return &testServer{
		Server:       s,
		api:          humatest.Wrap(t, s.api),
		tokenService: tokenService,
	}
}

// registerUser creates an account via the API and returns its access token
// and user ID.
func (ts *testServer) registerUser(t *testing.T, email, password string) (token string, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/v1/auth/register", map[string]any{
		"email":    email,
		"password": password,
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "Register failed: %s", resp.Body.String())

	resp = ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.Code, "Login failed: %s", resp.Body.String())

	var envelope testEnvelope[AuthResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	return envelope.Data.AccessToken, envelope.Data.User.ID
}

// createTag creates a tag via the API and returns its ID.
func (ts *testServer) createTag(t *testing.T, token, name string) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/tags",
		map[string]any{"name": name},
		"Authorization: Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.Code, "Create tag failed: %s", resp.Body.String())

	var envelope testEnvelope[TagResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	return envelope.Data.ID
}

// createIngredient creates an ingredient via the API and returns its ID.
func (ts *testServer) createIngredient(t *testing.T, token, name string) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/ingredients",
		map[string]any{"name": name},
		"Authorization: Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.Code, "Create ingredient failed: %s", resp.Body.String())

	var envelope testEnvelope[IngredientResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	return envelope.Data.ID
}

// createRecipe creates a recipe via the API and returns its detail form.
func (ts *testServer) createRecipe(t *testing.T, token string, body map[string]any) RecipeDetailResponse {
	t.Helper()

	resp := ts.api.Post("/api/v1/recipes", body, "Authorization: Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.Code, "Create recipe failed: %s", resp.Body.String())

	var envelope testEnvelope[RecipeDetailResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	return envelope.Data
}
