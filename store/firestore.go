package store

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"dishpalate_backend/models"
)

const (
	usersCollection   = "users"
	recipesCollection = "recipes"
)

// FirestoreUserStore keeps user documents in the "users" collection, keyed by
// the generated user id.
type FirestoreUserStore struct {
	client *firestore.Client
}

func NewFirestoreUserStore(client *firestore.Client) *FirestoreUserStore {
	return &FirestoreUserStore{client: client}
}

func (s *FirestoreUserStore) users() *firestore.CollectionRef {
	return s.client.Collection(usersCollection)
}

func (s *FirestoreUserStore) Create(ctx context.Context, user *models.User) error {
	iter := s.users().Where("email", "==", user.Email).Limit(1).Documents(ctx)
	_, err := iter.Next()
	if err == nil {
		return ErrDuplicateEmail
	}
	if err != iterator.Done {
		return fmt.Errorf("check existing email: %w", err)
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if _, err := s.users().Doc(user.ID).Set(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *FirestoreUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := s.users().Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

func (s *FirestoreUserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	iter := s.users().Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

// AddCoins updates every document matching email. The unlock workflow credits
// creators through this without checking they still exist, so zero matches
// just means zero updates.
func (s *FirestoreUserStore) AddCoins(ctx context.Context, email string, delta int) error {
	iter := s.users().Where("email", "==", email).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lookup user: %w", err)
		}

		_, err = doc.Ref.Update(ctx, []firestore.Update{
			{Path: "coin", Value: firestore.Increment(delta)},
		})
		if err != nil {
			return fmt.Errorf("update coin balance: %w", err)
		}
	}
}

// FirestoreRecipeStore keeps recipe documents in the "recipes" collection,
// keyed by recipe id.
type FirestoreRecipeStore struct {
	client *firestore.Client
}

func NewFirestoreRecipeStore(client *firestore.Client) *FirestoreRecipeStore {
	return &FirestoreRecipeStore{client: client}
}

func (s *FirestoreRecipeStore) recipes() *firestore.CollectionRef {
	return s.client.Collection(recipesCollection)
}

func (s *FirestoreRecipeStore) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	normalizeRecipe(recipe)

	if _, err := s.recipes().Doc(recipe.ID).Set(ctx, recipe); err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

func (s *FirestoreRecipeStore) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	iter := s.recipes().Where("id", "==", id).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup recipe: %w", err)
	}

	var recipe models.Recipe
	if err := doc.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}
	normalizeRecipe(&recipe)
	return &recipe, nil
}

// List pushes the equality predicates down as Firestore filters. The search
// term is applied in memory afterwards because Firestore has no substring
// query.
func (s *FirestoreRecipeStore) List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, error) {
	q := s.recipes().Query
	if filter.Category != "" {
		q = q.Where("category", "==", filter.Category)
	}
	if filter.Country != "" {
		q = q.Where("country", "==", filter.Country)
	}

	recipes := []models.Recipe{}
	iter := q.Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list recipes: %w", err)
		}

		var recipe models.Recipe
		if err := doc.DataTo(&recipe); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
		if !matchesSearch(recipe.RecipeName, filter.Search) {
			continue
		}
		normalizeRecipe(&recipe)
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// AppendPurchaser reads the current sequence and writes it back extended by
// one entry. ArrayUnion would collapse repeat purchases, so it is not used
// here.
func (s *FirestoreRecipeStore) AppendPurchaser(ctx context.Context, id, email string) error {
	recipe, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	purchased := append(recipe.PurchasedBy, email)
	_, err = s.recipes().Doc(id).Update(ctx, []firestore.Update{
		{Path: "purchased_by", Value: purchased},
	})
	if err != nil {
		return fmt.Errorf("append purchaser: %w", err)
	}
	return nil
}

func (s *FirestoreRecipeStore) IncrementWatchCount(ctx context.Context, id string) error {
	_, err := s.recipes().Doc(id).Update(ctx, []firestore.Update{
		{Path: "watchCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("increment watch count: %w", err)
	}
	return nil
}

func (s *FirestoreRecipeStore) AddReaction(ctx context.Context, id, email string) error {
	_, err := s.recipes().Doc(id).Update(ctx, []firestore.Update{
		{Path: "reaction", Value: firestore.ArrayUnion(email)},
	})
	if err != nil {
		return fmt.Errorf("add reaction: %w", err)
	}
	return nil
}

func (s *FirestoreRecipeStore) RemoveReaction(ctx context.Context, id, email string) error {
	_, err := s.recipes().Doc(id).Update(ctx, []firestore.Update{
		{Path: "reaction", Value: firestore.ArrayRemove(email)},
	})
	if err != nil {
		return fmt.Errorf("remove reaction: %w", err)
	}
	return nil
}

// matchesSearch reports whether name contains term, case-insensitively. An
// empty term matches everything.
func matchesSearch(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// normalizeRecipe replaces nil slices so responses serialize as [] instead of
// null.
func normalizeRecipe(recipe *models.Recipe) {
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	if recipe.Reaction == nil {
		recipe.Reaction = []string{}
	}
	if recipe.PurchasedBy == nil {
		recipe.PurchasedBy = []string{}
	}
}
