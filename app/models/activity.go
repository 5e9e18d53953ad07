package models

import "time"

// Activity is one entry in the admin action log (product edited, order
// approved, …). Written asynchronously through the job queue so mutating
// requests never wait on it.
type Activity struct {
	ID        string    `json:"id" bson:"_id"`
	Kind      string    `json:"kind" bson:"kind"` // order | product | category | user | banner
	Title     string    `json:"title" bson:"title"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Notification backs the unread badge in the admin header.
type Notification struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
