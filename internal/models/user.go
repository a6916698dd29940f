package models

// User is the registration payload and the stored shape of a user document.
// The store assigns _id on insert.
type User struct {
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"password"`
}
