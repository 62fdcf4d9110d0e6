// Package store persists users and recipes in a document database. Each
// operation touches a single document (or a set of documents matched by one
// query); nothing here spans documents atomically.
package store

import (
	"context"
	"errors"

	"dishpalate_backend/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering an email that already
	// has a user document.
	ErrDuplicateEmail = errors.New("email already registered")
)

// RecipeFilter holds optional list predicates. Zero-valued fields add no
// predicate; non-zero fields are combined with AND.
type RecipeFilter struct {
	Category string
	Country  string
	Search   string
}

type UserStore interface {
	// Create inserts a new user, generating an id when none is set.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// AddCoins adjusts the balance of every user document whose email
	// matches. Matching zero documents is not an error.
	AddCoins(ctx context.Context, email string, delta int) error
}

type RecipeStore interface {
	// Create inserts a new recipe, generating an id when none is set.
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error)
	// AppendPurchaser appends email to the recipe's purchased_by sequence.
	// Repeat purchasers produce repeat entries.
	AppendPurchaser(ctx context.Context, id, email string) error
	IncrementWatchCount(ctx context.Context, id string) error
	// AddReaction and RemoveReaction keep set semantics on the reaction
	// field: adding twice stores one entry.
	AddReaction(ctx context.Context, id, email string) error
	RemoveReaction(ctx context.Context, id, email string) error
}
