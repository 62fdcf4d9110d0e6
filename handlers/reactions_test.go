package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishpalate_backend/models"
)

func TestToggleReaction_AddThenRemove(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@x.com", 0)
	id := env.seedRecipe(t, models.Recipe{RecipeName: "Soup", CreatorEmail: "b@x.com"})

	body := map[string]string{"userEmail": "a@x.com"}

	rec := env.do(t, http.MethodPatch, "/api/v1/recipes/"+id+"/reaction", body, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reaction added", decodeResponse(t, rec).Message)
	assert.Equal(t, []string{"a@x.com"}, env.recipe(t, id).Reaction)

	rec = env.do(t, http.MethodPatch, "/api/v1/recipes/"+id+"/reaction", body, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reaction removed", decodeResponse(t, rec).Message)
	assert.Empty(t, env.recipe(t, id).Reaction)
}

func TestToggleReaction_OneEntryPerUser(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@x.com", 0)
	env.seedUser(t, "b@x.com", 0)
	id := env.seedRecipe(t, models.Recipe{RecipeName: "Soup", CreatorEmail: "c@x.com"})

	env.do(t, http.MethodPatch, "/api/v1/recipes/"+id+"/reaction", map[string]string{"userEmail": "a@x.com"}, "")
	env.do(t, http.MethodPatch, "/api/v1/recipes/"+id+"/reaction", map[string]string{"userEmail": "b@x.com"}, "")

	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com"}, env.recipe(t, id).Reaction)
}

func TestToggleReaction_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedRecipe(t, models.Recipe{RecipeName: "Soup", CreatorEmail: "b@x.com"})

	rec := env.do(t, http.MethodPatch, "/api/v1/recipes/"+id+"/reaction",
		map[string]string{"userEmail": "ghost@x.com"}, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeResponse(t, rec).Message)
	assert.Empty(t, env.recipe(t, id).Reaction)
}

func TestToggleReaction_UnknownRecipe(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@x.com", 0)

	rec := env.do(t, http.MethodPatch, "/api/v1/recipes/missing/reaction",
		map[string]string{"userEmail": "a@x.com"}, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Recipe not found", decodeResponse(t, rec).Message)
}
