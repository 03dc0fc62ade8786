package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hunthub/internal/model"
)

// CouponRepository defines coupon persistence operations.
type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	ListValid(ctx context.Context, now time.Time) ([]model.Coupon, error)
	Update(ctx context.Context, coupon *model.Coupon) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository builds a GORM-backed repository.
func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	var coupons []model.Coupon
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) ListValid(ctx context.Context, now time.Time) ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := r.db.WithContext(ctx).
		Where("expires_at > ?", now).
		Order("expires_at ASC").
		Find(&coupons).Error
	return coupons, err
}

// Update overwrites the coupon fields. RowsAffected counts changed rows, not
// matched rows, under the MySQL driver's defaults; a same-value overwrite
// reports 0 even though the row exists.
func (r *couponRepository) Update(ctx context.Context, coupon *model.Coupon) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("id = ?", coupon.ID).
		Updates(map[string]interface{}{
			"code":        coupon.Code,
			"discount":    coupon.Discount,
			"description": coupon.Description,
			"expires_at":  coupon.ExpiresAt,
		})
	return res.RowsAffected, res.Error
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Coupon{})
	return res.RowsAffected, res.Error
}
