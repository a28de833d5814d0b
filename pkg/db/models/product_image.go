package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductImage stores a catalog image URL. The optional color tag loosely
// associates the image with a variant color; it is a free string, not a
// foreign key.
type ProductImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Color     *string   `gorm:"column:color"`
	ImageURL  string    `gorm:"column:image_url;not null"`
}

func (i *ProductImage) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
