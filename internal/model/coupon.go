package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Coupon is a discount code for the membership subscription.
type Coupon struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Code        string          `json:"code" gorm:"uniqueIndex;size:64;not null"`
	Discount    decimal.Decimal `json:"discount" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description" gorm:"size:512"`
	ExpiresAt   time.Time       `json:"expiresAt" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Valid reports whether the coupon can still be redeemed at t.
func (c *Coupon) Valid(t time.Time) bool {
	return c.ExpiresAt.After(t)
}
