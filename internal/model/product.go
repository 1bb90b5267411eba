package model

import (
	"github.com/shopspring/decimal"
)

// init makes every decimal.Decimal in the process marshal as a bare JSON
// number instead of a quoted string. This is a global setting of the decimal
// package; importing model turns it on for all callers, so product prices
// travel as numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents an item in the catalogue.
type Product struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Stock      int             `json:"stock" gorm:"not null;default:0"`
	CategoryID uint            `json:"category_id" gorm:"column:category_id;not null;index"`
	Category   *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Product) TableName() string { return "products" }

// ProductInput is the request payload for creating a product.
type ProductInput struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID uint            `json:"category_id"`
}

// Product converts the input into a row ready for insertion.
func (in ProductInput) Product() Product {
	return Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
	}
}

// ProductPatch is the request payload for a partial product update.
// Nil fields are left untouched.
type ProductPatch struct {
	Name       *string          `json:"name,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Stock      *int             `json:"stock,omitempty"`
	CategoryID *uint            `json:"category_id,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Stock == nil && p.CategoryID == nil
}

// Columns returns the column/value pairs set by the patch.
func (p ProductPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Stock != nil {
		cols["stock"] = *p.Stock
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	return cols
}

// ProductFilter narrows a product listing. Nil fields do not constrain the result.
type ProductFilter struct {
	Category *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
