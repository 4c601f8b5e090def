package models

import "time"

// LostFoundItem is a lost-and-found report.
type LostFoundItem struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"itemName"`
	Status    string    `json:"status"` // "lost" or "found", free-form
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarketplaceItem is an item offered for sale between students.
type MarketplaceItem struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"itemName"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Condition   string    `json:"condition"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Ride is a ride-share offer.
type Ride struct {
	ID          string    `json:"id"`
	Departure   string    `json:"departure"`
	Destination string    `json:"destination"`
	Time        string    `json:"time"` // free-form, e.g. "9am"
	CreatedAt   time.Time `json:"createdAt"`
}

// ExchangePost is a skill/book exchange post.
type ExchangePost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
