package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the catalog root. Variants, images, and recommendation edges
// share its lifetime via ON DELETE CASCADE.
type Product struct {
	ID                uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name              string                  `gorm:"column:name;not null"`
	Price             decimal.Decimal         `gorm:"column:price;type:numeric(10,2);not null"`
	Description       string                  `gorm:"column:description;type:text;not null"`
	LifetimeGuarantee bool                    `gorm:"column:lifetime_guarantee;not null;default:true"`
	Variants          []ProductVariant        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images            []ProductImage          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Recommendations   []ProductRecommendation `gorm:"foreignKey:BaseProductID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
