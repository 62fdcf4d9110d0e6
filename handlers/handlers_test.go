package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishpalate_backend/auth"
	"dishpalate_backend/models"
	"dishpalate_backend/store"
)

type testEnv struct {
	router  http.Handler
	users   *store.MemoryUserStore
	recipes *store.MemoryRecipeStore
	tokens  *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := store.NewMemoryUserStore()
	recipes := store.NewMemoryRecipeStore()
	tokens := auth.NewTokenService("test-secret")
	return &testEnv{
		router:  NewRouter(users, recipes, tokens),
		users:   users,
		recipes: recipes,
		tokens:  tokens,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	token, err := e.tokens.Issue(map[string]interface{}{"email": "test@x.com"})
	require.NoError(t, err)
	return token
}

func (e *testEnv) seedUser(t *testing.T, email string, coin int) {
	t.Helper()
	err := e.users.Create(context.Background(), &models.User{
		DisplayName: "User " + email,
		Email:       email,
		Coin:        coin,
	})
	require.NoError(t, err)
}

func (e *testEnv) seedRecipe(t *testing.T, recipe models.Recipe) string {
	t.Helper()
	err := e.recipes.Create(context.Background(), &recipe)
	require.NoError(t, err)
	return recipe.ID
}

func (e *testEnv) userCoin(t *testing.T, email string) int {
	t.Helper()
	user, err := e.users.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	return user.Coin
}

func (e *testEnv) recipe(t *testing.T, id string) *models.Recipe {
	t.Helper()
	recipe, err := e.recipes.GetByID(context.Background(), id)
	require.NoError(t, err)
	return recipe
}

func newRawRequest(t *testing.T, method, path string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Server is running", body["message"])
	assert.Contains(t, body, "timestamp")
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	// Generate at least one observation first.
	env.do(t, http.MethodGet, "/", nil, "")

	rec := env.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dishpalate_http_requests_total")
}
