package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"dishpalate_backend/store"
)

// Unlock pricing is fixed for every recipe.
const (
	unlockCost    = 10
	creatorReward = 1
)

type coinPurchaseRequest struct {
	UserEmail   string `json:"userEmail"`
	BoughtCoins int    `json:"boughtCoins"`
}

// PurchaseCoins adds boughtCoins to the user's balance. The amount is applied
// as sent; a negative value reduces the balance.
func PurchaseCoins(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req coinPurchaseRequest
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
			writeMessage(w, http.StatusInternalServerError, false, "Failed to update coins")
			return
		}

		if err := users.AddCoins(ctx, req.UserEmail, req.BoughtCoins); err != nil {
			log.Error().Err(err).Str("email", req.UserEmail).Msg("failed to update coin balance")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to update coins")
			return
		}

		writeMessage(w, http.StatusOK, true, "Coins updated successfully")
	}
}

type unlockRequest struct {
	UserEmail string `json:"userEmail"`
	RecipeID  string `json:"recipeId"`
}

// UnlockRecipe runs the coin-gated unlock workflow: debit the viewer, credit
// the creator, record the purchase, bump the watch count. The four writes are
// sequential single-document updates with no transaction spanning them, so a
// failure part-way leaves the earlier writes in place.
func UnlockRecipe(users store.UserStore, recipes store.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req unlockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid request payload")
			return
		}

		ctx := r.Context()

		viewer, err := users.GetByEmail(ctx, req.UserEmail)
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, false, "User not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("email", req.UserEmail).Msg("failed to look up viewer")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to unlock recipe")
			return
		}

		recipe, err := recipes.GetByID(ctx, req.RecipeID)
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, false, "Recipe not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("recipeId", req.RecipeID).Msg("failed to look up recipe")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to unlock recipe")
			return
		}

		if err := users.AddCoins(ctx, viewer.Email, -unlockCost); err != nil {
			log.Error().Err(err).Str("email", viewer.Email).Msg("failed to debit viewer")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to unlock recipe")
			return
		}

		// The creator is credited by email with no existence check; a deleted
		// creator means the update matches nothing and the workflow continues.
		if err := users.AddCoins(ctx, recipe.CreatorEmail, creatorReward); err != nil {
			log.Error().Err(err).Str("email", recipe.CreatorEmail).Msg("failed to credit creator")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to unlock recipe")
			return
		}

		if err := recipes.AppendPurchaser(ctx, recipe.ID, viewer.Email); err != nil {
			log.Error().Err(err).Str("recipeId", recipe.ID).Msg("failed to record purchase")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to unlock recipe")
			return
		}

		if err := recipes.IncrementWatchCount(ctx, recipe.ID); err != nil {
			log.Error().Err(err).Str("recipeId", recipe.ID).Msg("failed to increment watch count")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to unlock recipe")
			return
		}

		writeMessage(w, http.StatusOK, true, "Recipe unlocked successfully")
	}
}
