package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductReview is append-only. product_id is intentionally not a foreign
// key: reviews may outlive the product they reference.
type ProductReview struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID   uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	AuthorName  string    `gorm:"column:author_name;not null"`
	Score       int       `gorm:"column:score;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (r *ProductReview) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
