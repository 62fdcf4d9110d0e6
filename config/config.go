// Package config loads the service configuration from the environment.
package config

import (
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port               int    `env:"PORT,default=5000"`
	FirestoreProjectID string `env:"FIRESTORE_PROJECT_ID,default=dish-palate"`
	CredentialsFile    string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	JWTSecret          string `env:"JWT_SECRET,default=dish-palate-dev-secret"`
	CORSOrigins        string `env:"CORS_ORIGINS,default=http://localhost:5173"`
}

// Load reads .env when present and decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // allow .env for local runs

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
