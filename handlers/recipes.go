package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"dishpalate_backend/models"
	"dishpalate_backend/store"
)

// CreateRecipe inserts a new recipe. Unlock/reaction tracking fields start
// empty regardless of what the caller sends.
func CreateRecipe(recipes store.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var recipe models.Recipe
		if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid request payload")
			return
		}

		recipe.Reaction = []string{}
		recipe.PurchasedBy = []string{}
		recipe.WatchCount = 0

		if err := recipes.Create(r.Context(), &recipe); err != nil {
			log.Error().Err(err).Str("recipeName", recipe.RecipeName).Msg("failed to create recipe")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to create recipe")
			return
		}

		writeJSON(w, http.StatusCreated, recipe)
	}
}

// ListRecipes returns recipes matching the optional category, country and
// search query parameters.
func ListRecipes(recipes store.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.RecipeFilter{
			Category: r.URL.Query().Get("category"),
			Country:  r.URL.Query().Get("country"),
			Search:   r.URL.Query().Get("search"),
		}

		list, err := recipes.List(r.Context(), filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to list recipes")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to fetch recipes")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GetRecipe returns a single recipe by id.
func GetRecipe(recipes store.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		recipe, err := recipes.GetByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, false, "Recipe not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to fetch recipe")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to fetch recipe")
			return
		}

		writeJSON(w, http.StatusOK, recipe)
	}
}
