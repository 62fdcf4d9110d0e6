package handlers

import (
	"github.com/gorilla/mux"

	"dishpalate_backend/auth"
	"dishpalate_backend/metrics"
	"dishpalate_backend/middleware"
	"dishpalate_backend/store"
)

// NewRouter assembles the full HTTP surface.
func NewRouter(users store.UserStore, recipes store.RecipeStore, tokens *auth.TokenService) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.HandleFunc("/", Health()).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/user", RegisterUser(users)).Methods("POST")
	api.HandleFunc("/users", ListUsers(users)).Methods("GET")
	api.HandleFunc("/jwt", IssueToken(tokens)).Methods("POST")
	api.HandleFunc("/image", FetchImage()).Methods("GET")

	api.HandleFunc("/recipe", middleware.RequireToken(tokens, CreateRecipe(recipes))).Methods("POST")
	api.HandleFunc("/recipes", middleware.RequireToken(tokens, ListRecipes(recipes))).Methods("GET")
	api.HandleFunc("/recipes/{id}", middleware.RequireToken(tokens, GetRecipe(recipes))).Methods("GET")
	api.HandleFunc("/coin", middleware.RequireToken(tokens, PurchaseCoins(users))).Methods("PATCH")

	// The unlock and reaction routes are called by clients before they hold a
	// token, so they ship without the Bearer check.
	api.HandleFunc("/recipe-update", UnlockRecipe(users, recipes)).Methods("PATCH")
	api.HandleFunc("/recipes/{id}/reaction", ToggleReaction(users, recipes)).Methods("PATCH")

	return r
}
