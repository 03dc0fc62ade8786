package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentIntentStatus represents the lifecycle of a payment intent.
type PaymentIntentStatus string

const (
	PaymentIntentStatusCreated   PaymentIntentStatus = "created"
	PaymentIntentStatusSucceeded PaymentIntentStatus = "succeeded"
)

// PaymentIntent is a server-issued handle for a pending subscription charge.
// The client secret is handed to the caller and quoted back when the
// payment is recorded.
type PaymentIntent struct {
	ID           uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string              `json:"email" gorm:"size:255;not null;index"`
	Amount       decimal.Decimal     `json:"amount" gorm:"type:decimal(20,2);not null"`
	Currency     string              `json:"currency" gorm:"size:8;not null;default:'usd'"`
	ClientSecret string              `json:"clientSecret" gorm:"size:128;not null"`
	Status       PaymentIntentStatus `json:"status" gorm:"type:varchar(20);not null;default:'created'"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PaymentIntent) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Payment is a recorded, completed membership payment.
type Payment struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Email         string          `json:"email" gorm:"size:255;not null;index"`
	UserName      string          `json:"userName,omitempty" gorm:"size:255"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	TransactionID string          `json:"transactionId" gorm:"size:128;not null"`
	Status        string          `json:"status" gorm:"size:20;not null;default:'succeeded'"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
