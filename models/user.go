package models

// User is a registered account. Email is the lookup key used throughout the
// API; uniqueness is enforced at registration time, not by the store.
type User struct {
	ID          string `firestore:"id" json:"id"`
	DisplayName string `firestore:"displayName" json:"displayName"`
	PhotoURL    string `firestore:"photoUrl" json:"photoUrl"`
	Email       string `firestore:"email" json:"email"`
	Coin        int    `firestore:"coin" json:"coin"`
}
