package models

import "time"

type Banner struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	DiscountText *string   `json:"discount_text"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Link         *string   `json:"link"`
	IsActive     bool      `json:"is_active"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// BannerInput is the payload for creating or updating a banner.
type BannerInput struct {
	Title        *string `json:"title,omitempty"`
	DiscountText *string `json:"discount_text,omitempty"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	Link         *string `json:"link,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	SortOrder    *int    `json:"sort_order,omitempty"`
}
