package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"dishpalate_backend/models"
)

// MemoryUserStore is a mutex-guarded in-memory UserStore. It backs the
// handler tests.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *MemoryUserStore) AddCoins(ctx context.Context, email string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			u.Coin += delta
		}
	}
	return nil
}

// MemoryRecipeStore is a mutex-guarded in-memory RecipeStore.
type MemoryRecipeStore struct {
	mu      sync.Mutex
	recipes []*models.Recipe
}

func NewMemoryRecipeStore() *MemoryRecipeStore {
	return &MemoryRecipeStore{}
}

func (s *MemoryRecipeStore) Create(ctx context.Context, recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	normalizeRecipe(recipe)
	stored := copyRecipe(recipe)
	s.recipes = append(s.recipes, stored)
	return nil
}

func (s *MemoryRecipeStore) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return nil, ErrNotFound
	}
	return copyRecipe(r), nil
}

func (s *MemoryRecipeStore) List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes := []models.Recipe{}
	for _, r := range s.recipes {
		if filter.Category != "" && r.Category != filter.Category {
			continue
		}
		if filter.Country != "" && r.Country != filter.Country {
			continue
		}
		if !matchesSearch(r.RecipeName, filter.Search) {
			continue
		}
		recipes = append(recipes, *copyRecipe(r))
	}
	return recipes, nil
}

func (s *MemoryRecipeStore) AppendPurchaser(ctx context.Context, id, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return ErrNotFound
	}
	r.PurchasedBy = append(r.PurchasedBy, email)
	return nil
}

func (s *MemoryRecipeStore) IncrementWatchCount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return ErrNotFound
	}
	r.WatchCount++
	return nil
}

func (s *MemoryRecipeStore) AddReaction(ctx context.Context, id, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return ErrNotFound
	}
	for _, e := range r.Reaction {
		if e == email {
			return nil
		}
	}
	r.Reaction = append(r.Reaction, email)
	return nil
}

func (s *MemoryRecipeStore) RemoveReaction(ctx context.Context, id, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return ErrNotFound
	}
	kept := r.Reaction[:0]
	for _, e := range r.Reaction {
		if e != email {
			kept = append(kept, e)
		}
	}
	r.Reaction = kept
	return nil
}

// find returns the stored recipe, not a copy. Callers hold the lock.
func (s *MemoryRecipeStore) find(id string) *models.Recipe {
	for _, r := range s.recipes {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func copyRecipe(r *models.Recipe) *models.Recipe {
	c := *r
	c.Ingredients = append([]string{}, r.Ingredients...)
	c.Instructions = append([]string{}, r.Instructions...)
	c.Reaction = append([]string{}, r.Reaction...)
	c.PurchasedBy = append([]string{}, r.PurchasedBy...)
	return &c
}
