package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"dishpalate_backend/models"
	"dishpalate_backend/store"
)

// RegisterUser creates a user record, rejecting duplicate emails.
func RegisterUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid request payload")
			return
		}

		err := users.Create(r.Context(), &user)
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, false, "User already exists")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("email", user.Email).Msg("failed to register user")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to register user")
			return
		}

		writeMessage(w, http.StatusCreated, true, "User registered successfully")
	}
}

// ListUsers returns every user record.
func ListUsers(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := users.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to list users")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to fetch users")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}
