package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dishpalate_backend/auth"
	"dishpalate_backend/config"
	"dishpalate_backend/handlers"
	"dishpalate_backend/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	if cfg.CredentialsFile != "" {
		if err := os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cfg.CredentialsFile); err != nil {
			log.Fatal().Err(err).Msg("failed to set GOOGLE_APPLICATION_CREDENTIALS")
		}
	}

	// One client for the life of the process; stores and handlers share it.
	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Firestore client")
	}
	defer client.Close()

	users := store.NewFirestoreUserStore(client)
	recipes := store.NewFirestoreRecipeStore(client)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	router := handlers.NewRouter(users, recipes, tokens)

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := http.ListenAndServe(addr, c.Handler(router)); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
