package repository

import (
	"context"

	"gorm.io/gorm"

	"hunthub/internal/model"
)

// PaymentRepository defines payment and payment-intent persistence operations.
type PaymentRepository interface {
	CreateIntent(ctx context.Context, intent *model.PaymentIntent) error
	FindIntentBySecret(ctx context.Context, clientSecret string) (*model.PaymentIntent, error)
	MarkIntentSucceeded(ctx context.Context, clientSecret string) (int64, error)
	CreatePayment(ctx context.Context, payment *model.Payment) error
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository builds a GORM-backed repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateIntent(ctx context.Context, intent *model.PaymentIntent) error {
	return r.db.WithContext(ctx).Create(intent).Error
}

func (r *paymentRepository) FindIntentBySecret(ctx context.Context, clientSecret string) (*model.PaymentIntent, error) {
	var intent model.PaymentIntent
	if err := r.db.WithContext(ctx).Where("client_secret = ?", clientSecret).First(&intent).Error; err != nil {
		return nil, err
	}
	return &intent, nil
}

func (r *paymentRepository) MarkIntentSucceeded(ctx context.Context, clientSecret string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PaymentIntent{}).
		Where("client_secret = ?", clientSecret).
		Update("status", model.PaymentIntentStatusSucceeded)
	return res.RowsAffected, res.Error
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
