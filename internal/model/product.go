package model

import "encoding/xml"

// Product is the catalog entity persisted in the products file. Timestamps
// are RFC 3339 UTC strings so records round-trip through the file and the
// XML representation without loss.
type Product struct {
	XMLName     xml.Name `json:"-" xml:"product"`
	ID          string   `json:"id" xml:"id"`
	Name        string   `json:"name" xml:"name"`
	SKU         string   `json:"sku" xml:"sku"`
	Description string   `json:"description" xml:"description"`
	Price       float64  `json:"price" xml:"price"`
	Stock       int      `json:"stock" xml:"stock"`
	Category    string   `json:"category" xml:"category"`
	CreatedAt   string   `json:"createdAt" xml:"createdAt"`
	UpdatedAt   string   `json:"updatedAt" xml:"updatedAt"`
}

// CreateProductRequest carries the client-supplied fields of a new product.
// Price and Stock are pointers so an absent field is distinguishable from a
// legitimate zero; id and timestamps are never client-supplied.
type CreateProductRequest struct {
	XMLName     xml.Name `json:"-" xml:"product"`
	Name        string   `json:"name" xml:"name" validate:"required"`
	SKU         string   `json:"sku" xml:"sku" validate:"required"`
	Description string   `json:"description" xml:"description"`
	Price       *float64 `json:"price" xml:"price" validate:"required,gt=0"`
	Stock       *int     `json:"stock" xml:"stock" validate:"required,gte=0"`
	Category    string   `json:"category" xml:"category" validate:"required"`
}

// UpdateProductRequest carries a partial update. Nil means "leave the field
// untouched".
type UpdateProductRequest struct {
	XMLName     xml.Name `json:"-" xml:"product"`
	Name        *string  `json:"name" xml:"name"`
	SKU         *string  `json:"sku" xml:"sku"`
	Description *string  `json:"description" xml:"description"`
	Price       *float64 `json:"price" xml:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" xml:"stock" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" xml:"category"`
}
