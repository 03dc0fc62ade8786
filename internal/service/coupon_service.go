package service

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hunthub/internal/errors"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

// CouponService exposes coupon administration and validity checks.
type CouponService interface {
	Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	ListValid(ctx context.Context) ([]model.Coupon, error)
	Validate(ctx context.Context, code string) (*model.Coupon, bool, error)
	Update(ctx context.Context, coupon *model.Coupon) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type couponService struct {
	repo repository.CouponRepository
	now  func() time.Time
}

// NewCouponService builds a CouponService.
func NewCouponService(repo repository.CouponRepository) CouponService {
	return &couponService{repo: repo, now: time.Now}
}

func (s *couponService) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if err := s.repo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *couponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.repo.List(ctx)
}

func (s *couponService) ListValid(ctx context.Context) ([]model.Coupon, error) {
	return s.repo.ListValid(ctx, s.now())
}

// Validate looks up a code and reports whether it is still redeemable.
// An unknown code is a 404, an expired one is found but invalid.
func (s *couponService) Validate(ctx context.Context, code string) (*model.Coupon, bool, error) {
	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, errors.ErrCouponNotFound
		}
		return nil, false, err
	}
	return coupon, coupon.Valid(s.now()), nil
}

// Update overwrites the coupon after confirming it exists. The row count of
// the update itself only reflects changed rows, so a no-change overwrite of
// an existing coupon returns 0 without being a miss.
func (s *couponService) Update(ctx context.Context, coupon *model.Coupon) (int64, error) {
	if _, err := s.repo.FindByID(ctx, coupon.ID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.ErrCouponNotFound
		}
		return 0, err
	}
	return s.repo.Update(ctx, coupon)
}

func (s *couponService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, errors.ErrCouponNotFound
	}
	return deleted, nil
}
