package models

import "time"

type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CategoryID  int       `json:"category_id"`
	IsAvailable bool      `json:"is_available"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItemInput is the payload for creating or updating a menu item.
// Pointer fields are omitted when nil so a partial PUT leaves the rest of the
// record untouched.
type MenuItemInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CategoryID  *int     `json:"category_id,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	SortOrder   *int     `json:"sort_order,omitempty"`
}
