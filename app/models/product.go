package models

import "time"

// ProductStatus is the catalogue visibility state of a product.
type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductInactive   ProductStatus = "inactive"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductOutOfStock:
		return true
	}
	return false
}

// Product is a storefront catalogue entry. CategoryID may reference a
// category that has since been deleted; lookups fall back to the raw id.
type Product struct {
	ID            string        `json:"id" bson:"_id"`
	Name          string        `json:"name" bson:"name" validate:"required,min=2,max=255"`
	CategoryID    string        `json:"category_id" bson:"category_id"`
	Price         float64       `json:"price" bson:"price" validate:"required,gt=0"`
	OriginalPrice float64       `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Stock         int           `json:"stock" bson:"stock" validate:"gte=0"`
	Status        ProductStatus `json:"status" bson:"status"`
	Image         string        `json:"image,omitempty" bson:"image,omitempty"`
	Images        []string      `json:"images,omitempty" bson:"images,omitempty"`
	Description   string        `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
