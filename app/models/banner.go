package models

import "time"

// Banner is a promotional image shown on the storefront home page.
// ImagePath points into pkg/storage (local disk or S3).
type Banner struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title" validate:"required,max=255"`
	Subtitle  string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	ImagePath string    `json:"image_path" bson:"image_path"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	LinkURL   string    `json:"link_url,omitempty" bson:"link_url,omitempty" validate:"nullable,url"`
	Position  int       `json:"position" bson:"position"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
