package service

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hunthub/internal/errors"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

// ReviewService exposes review operations.
type ReviewService interface {
	Add(ctx context.Context, review *model.Review) (*model.Review, error)
	ByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error)
}

type reviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

// NewReviewService builds a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository) ReviewService {
	return &reviewService{reviews: reviews, products: products}
}

// Add stores a review after confirming the product exists.
func (s *reviewService) Add(ctx context.Context, review *model.Review) (*model.Review, error) {
	if _, err := s.products.FindByID(ctx, review.ProductID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}
