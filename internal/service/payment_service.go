package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hunthub/internal/errors"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

// PaymentService exposes the membership payment flow: intent creation,
// payment recording, and per-user history.
type PaymentService interface {
	CreateIntent(ctx context.Context, email string, amount decimal.Decimal, currency string) (*model.PaymentIntent, error)
	RecordPayment(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	History(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentService struct {
	payments repository.PaymentRepository
	users    repository.UserRepository
}

// NewPaymentService builds a PaymentService.
func NewPaymentService(payments repository.PaymentRepository, users repository.UserRepository) PaymentService {
	return &paymentService{payments: payments, users: users}
}

// CreateIntent issues a payment intent with a fresh client secret for the
// given amount. Provider integration happens outside this service; the
// intent record is the contract the recorded payment is checked against.
func (s *paymentService) CreateIntent(ctx context.Context, email string, amount decimal.Decimal, currency string) (*model.PaymentIntent, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	if currency == "" {
		currency = "usd"
	}

	intent := &model.PaymentIntent{
		Email:        email,
		Amount:       amount,
		Currency:     currency,
		ClientSecret: newClientSecret(),
		Status:       model.PaymentIntentStatusCreated,
	}
	if err := s.payments.CreateIntent(ctx, intent); err != nil {
		return nil, err
	}
	return intent, nil
}

// RecordPayment stores a completed payment against its intent and marks the
// payer as subscribed. The transaction id must be a known client secret.
func (s *paymentService) RecordPayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	intent, err := s.payments.FindIntentBySecret(ctx, payment.TransactionID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrIntentNotFound
		}
		return nil, err
	}

	payment.Amount = intent.Amount
	payment.Status = "succeeded"
	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	if _, err := s.payments.MarkIntentSucceeded(ctx, intent.ClientSecret); err != nil {
		return nil, err
	}
	if _, err := s.users.SetSubscribed(ctx, payment.Email); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) History(ctx context.Context, email string) ([]model.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

func newClientSecret() string {
	return fmt.Sprintf("pi_%s_secret_%s", uuid.NewString(), uuid.NewString())
}
