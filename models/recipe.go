package models

// Recipe is a shared recipe. Reaction holds one entry per reacting user;
// PurchasedBy is an append-only log of unlocks and may repeat an email when
// the same viewer unlocks more than once.
type Recipe struct {
	ID           string   `firestore:"id" json:"id"`
	RecipeName   string   `firestore:"recipeName" json:"recipeName"`
	Category     string   `firestore:"category" json:"category"`
	Country      string   `firestore:"country" json:"country"`
	CreatorEmail string   `firestore:"creatorEmail" json:"creatorEmail"`
	ImageURL     string   `firestore:"imageUrl" json:"imageUrl"`
	Ingredients  []string `firestore:"ingredients" json:"ingredients"`
	Instructions []string `firestore:"instructions" json:"instructions"`
	Reaction     []string `firestore:"reaction" json:"reaction"`
	PurchasedBy  []string `firestore:"purchased_by" json:"purchased_by"`
	WatchCount   int      `firestore:"watchCount" json:"watchCount"`
}
