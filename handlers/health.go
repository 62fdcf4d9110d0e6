package handlers

import (
	"net/http"
	"time"
)

// Health reports liveness.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":   "Server is running",
			"timestamp": time.Now(),
		})
	}
}
