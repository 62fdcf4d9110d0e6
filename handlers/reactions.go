package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"dishpalate_backend/store"
)

type reactionRequest struct {
	UserEmail string `json:"userEmail"`
}

// ToggleReaction flips the user's reaction on a recipe: present → removed,
// absent → added. The user lookup is an existence gate only.
func ToggleReaction(users store.UserStore, recipes store.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req reactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid request payload")
			return
		}

		ctx := r.Context()

		if _, err := users.GetByEmail(ctx, req.UserEmail); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, false, "User not found")
				return
			}
			log.Error().Err(err).Str("email", req.UserEmail).Msg("failed to look up user")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to update reaction")
			return
		}

		recipe, err := recipes.GetByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, false, "Recipe not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("recipeId", id).Msg("failed to look up recipe")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to update reaction")
			return
		}

		reacted := false
		for _, e := range recipe.Reaction {
			if e == req.UserEmail {
				reacted = true
				break
			}
		}

		if reacted {
			err = recipes.RemoveReaction(ctx, id, req.UserEmail)
		} else {
			err = recipes.AddReaction(ctx, id, req.UserEmail)
		}
		if err != nil {
			log.Error().Err(err).Str("recipeId", id).Msg("failed to update reaction")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to update reaction")
			return
		}

		if reacted {
			writeMessage(w, http.StatusOK, true, "Reaction removed")
			return
		}
		writeMessage(w, http.StatusOK, true, "Reaction added")
	}
}
