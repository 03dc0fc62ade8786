package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a user-submitted rating and comment on a product.
type Review struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProductID     uuid.UUID `json:"productId" gorm:"type:char(36);not null;index"`
	ReviewerEmail string    `json:"reviewerEmail" gorm:"size:255;not null"`
	ReviewerName  string    `json:"reviewerName" gorm:"size:255"`
	ReviewerImage string    `json:"reviewerImage,omitempty" gorm:"size:512"`
	Description   string    `json:"description" gorm:"type:text"`
	Rating        int       `json:"rating" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
