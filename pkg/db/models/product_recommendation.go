package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRecommendation is a directed edge between two products.
// (base_product_id, recommended_product_id) is unique
// (uq_product_recommendation) and self-edges are rejected at the schema
// level. Deleting either endpoint cascades the edge away.
type ProductRecommendation struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BaseProductID        uuid.UUID `gorm:"column:base_product_id;type:uuid;not null"`
	RecommendedProductID uuid.UUID `gorm:"column:recommended_product_id;type:uuid;not null"`
}

func (r *ProductRecommendation) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
