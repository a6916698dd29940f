package models

// OrderItem is one resolved cart line in a checkout summary.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderUser is the identity slice of a user echoed in a checkout summary.
type OrderUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// OrderSummary is computed at checkout and never persisted. Skipped holds
// the product ids of cart lines that no longer resolve against the catalog.
type OrderSummary struct {
	User       OrderUser   `json:"user"`
	OrderItems []OrderItem `json:"order_items"`
	Skipped    []string    `json:"skipped"`
	Total      float64     `json:"total"`
}
