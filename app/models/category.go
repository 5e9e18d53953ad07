package models

import "time"

// Category groups products for navigation. It carries no stored product
// count; counts are computed live by filtering the product set, so a
// category can never drift out of sync with its products.
type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string    `json:"icon,omitempty" bson:"icon,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Status      string    `json:"status" bson:"status"` // active | inactive
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
