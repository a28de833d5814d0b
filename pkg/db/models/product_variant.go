package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shortshop/shortshop-backend/pkg/enums"
)

// ProductVariant is one stocked color/size combination of a product.
// (product_id, color, size) is unique (uq_product_variant).
type ProductVariant struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID         `gorm:"column:product_id;type:uuid;not null"`
	Color     string            `gorm:"column:color;not null"`
	Size      enums.VariantSize `gorm:"column:size;type:variant_size;not null"`
	InStock   bool              `gorm:"column:in_stock;not null;default:false"`
}

func (v *ProductVariant) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
