package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStatus represents the moderation state of a product.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusAccepted ProductStatus = "accepted"
	ProductStatusRejected ProductStatus = "rejected"
)

// Product represents a listed product awaiting or past moderation.
type Product struct {
	ID           uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string        `json:"name" gorm:"size:255;not null;index"`
	Image        string        `json:"image" gorm:"size:512"`
	Description  string        `json:"description" gorm:"type:text"`
	ExternalLink string        `json:"externalLink,omitempty" gorm:"size:512"`
	Tags         []string      `json:"tags" gorm:"serializer:json;type:text"`
	OwnerEmail   string        `json:"ownerEmail" gorm:"size:255;not null;index"`
	OwnerName    string        `json:"ownerName" gorm:"size:255"`
	OwnerImage   string        `json:"ownerImage,omitempty" gorm:"size:512"`
	Status       ProductStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	IsFeatured   bool          `json:"isFeatured" gorm:"default:false;index"`
	Upvotes      int           `json:"upvote" gorm:"not null;default:0"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Relations
	Votes   []ProductVote   `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reports []ProductReport `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductVote records a single upvote. The composite unique index makes a
// second vote from the same email fail at the store, so the membership check
// in the service cannot race with the insert.
type ProductVote struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:char(36);not null;uniqueIndex:idx_product_voter"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_product_voter"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductReport records a single report, same uniqueness rule as votes.
type ProductReport struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:char(36);not null;uniqueIndex:idx_product_reporter"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_product_reporter"`
	CreatedAt time.Time `json:"created_at"`
}
