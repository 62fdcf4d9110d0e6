package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"dishpalate_backend/auth"
)

// IssueToken signs whatever JSON object the caller sends as the token claims.
// No shape validation is applied to the payload.
func IssueToken(tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var claims map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid request payload")
			return
		}

		token, err := tokens.Issue(claims)
		if err != nil {
			log.Error().Err(err).Msg("failed to sign token")
			writeMessage(w, http.StatusInternalServerError, false, "Failed to issue token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}
