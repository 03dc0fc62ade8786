package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hunthub/internal/model"
)

// ProductRepository defines product persistence operations, including the
// vote/report membership sets.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	SearchAccepted(ctx context.Context, term string, offset, limit int) ([]model.Product, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)
	ListTrending(ctx context.Context, limit int) ([]model.Product, error)
	ListByOwner(ctx context.Context, email string) ([]model.Product, error)
	ListQueue(ctx context.Context) ([]model.Product, error)
	ListReported(ctx context.Context) ([]model.Product, error)

	HasVoted(ctx context.Context, productID uuid.UUID, email string) (bool, error)
	AddVote(ctx context.Context, productID uuid.UUID, email string) error
	HasReported(ctx context.Context, productID uuid.UUID, email string) (bool, error)
	AddReport(ctx context.Context, productID uuid.UUID, email string) error

	SetStatus(ctx context.Context, id uuid.UUID, status model.ProductStatus) (int64, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":          product.Name,
			"image":         product.Image,
			"description":   product.Description,
			"external_link": product.ExternalLink,
			"tags":          product.Tags,
		})
	return res.RowsAffected, res.Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

// SearchAccepted lists accepted products, newest first, optionally filtered
// by a tag term. Tags are stored as a JSON array so the term match is a
// substring match on the serialized column, as is usual for tag search
// without a separate tag table.
func (r *productRepository) SearchAccepted(ctx context.Context, term string, offset, limit int) ([]model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("status = ?", model.ProductStatusAccepted)
	if term != "" {
		q = q.Where("tags LIKE ?", "%"+term+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_featured = ? AND status = ?", true, model.ProductStatusAccepted).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListTrending(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ProductStatusAccepted).
		Order("upvotes DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListByOwner(ctx context.Context, email string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// ListQueue returns all products with pending ones first, for the moderator
// review queue.
func (r *productRepository) ListQueue(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END, created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListReported(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN product_reports ON product_reports.product_id = products.id").
		Distinct().
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) HasVoted(ctx context.Context, productID uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductVote{}).
		Where("product_id = ? AND email = ?", productID, email).
		Count(&count).Error
	return count > 0, err
}

// AddVote inserts the voter membership row and increments the counter in one
// transaction. The unique index on (product_id, email) rejects a concurrent
// duplicate, so the counter only moves when the membership insert lands.
func (r *productRepository) AddVote(ctx context.Context, productID uuid.UUID, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.ProductVote{ProductID: productID, Email: email}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Product{}).
			Where("id = ?", productID).
			Update("upvotes", gorm.Expr("upvotes + ?", 1)).Error
	})
}

func (r *productRepository) HasReported(ctx context.Context, productID uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductReport{}).
		Where("product_id = ? AND email = ?", productID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *productRepository) AddReport(ctx context.Context, productID uuid.UUID, email string) error {
	return r.db.WithContext(ctx).
		Create(&model.ProductReport{ProductID: productID, Email: email}).Error
}

func (r *productRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.ProductStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *productRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_featured", featured)
	return res.RowsAffected, res.Error
}
