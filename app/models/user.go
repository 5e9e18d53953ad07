package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a storefront account. Role decides whether the session gate lets
// the account into the admin panel.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name" validate:"required,min=2,max=255"`
	Email        string    `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string    `json:"password_hash,omitempty" bson:"password_hash"` // bcrypt
	Role         string    `json:"role" bson:"role"`                             // customer | admin
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Public returns a copy safe to hand to API responses. The hash must be
// present in the stored document (the SQL and memory drivers persist the
// JSON encoding), so it is stripped here instead of with a json:"-" tag.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
