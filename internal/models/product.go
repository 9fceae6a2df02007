package models

import "gorm.io/gorm"

// Product represents a catalog item available for sale.
// PackageSize is the sellable stock count; it is decremented at checkout and
// must never go negative. SalesPrice is the selling price and is expected to
// stay at or below MRP by convention (not enforced).
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	MRP         float64  `json:"mrp" validate:"required,gt=0"`
	SalesPrice  float64  `json:"salesPrice" validate:"required,gt=0"`
	PackageSize int      `json:"packageSize" validate:"gte=0"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Tags        []string `json:"tags" gorm:"serializer:json"`
	Images      []string `json:"images" gorm:"serializer:json"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductSummary is the slim view of a product embedded in cart responses.
type ProductSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

// Summary returns the slim view of the product.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:     p.ID,
		Name:   p.Name,
		Images: p.Images,
	}
}
