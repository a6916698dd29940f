package models

// Item references a catalog product by its public id.
type Item struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// UserCart is the add-to-cart payload and the stored shape of a cart
// document. Every add inserts a new document; entries for the same
// user and product are never merged.
type UserCart struct {
	Item   Item   `bson:"item" json:"item"`
	UserID string `bson:"user_id" json:"user_id"`
}
