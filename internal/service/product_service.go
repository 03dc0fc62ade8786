package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hunthub/internal/cache"
	"hunthub/internal/errors"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

const (
	featuredCacheKey = "products:featured"
	trendingCacheKey = "products:trending"
	listCacheTTL     = 5 * time.Minute

	featuredLimit = 4
	trendingLimit = 6
)

// ProductPage is the paginated search result shape.
type ProductPage struct {
	Products    []model.Product `json:"products"`
	TotalPages  int64           `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// ProductService exposes product listing, mutation and moderation operations.
type ProductService interface {
	Search(ctx context.Context, term string, page, limit int) (*ProductPage, error)
	Featured(ctx context.Context) ([]model.Product, error)
	Trending(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ByOwner(ctx context.Context, email string) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, callerEmail string, product *model.Product) (int64, error)
	Delete(ctx context.Context, id uuid.UUID, callerEmail string) (int64, error)
	Upvote(ctx context.Context, id uuid.UUID, email string) (int64, error)
	Report(ctx context.Context, id uuid.UUID, email string) (int64, error)
	Queue(ctx context.Context) ([]model.Product, error)
	Reported(ctx context.Context) ([]model.Product, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.ProductStatus) (int64, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (int64, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService builds a ProductService with repository and cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

// Search lists accepted products filtered by tag term with pagination.
// An empty result yields totalPages 0 and the requested page number.
func (s *productService) Search(ctx context.Context, term string, page, limit int) (*ProductPage, error) {
	offset := (page - 1) * limit
	products, total, err := s.repo.SearchAccepted(ctx, term, offset, limit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &ProductPage{
		Products:    products,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *productService) Featured(ctx context.Context) ([]model.Product, error) {
	return s.cachedList(ctx, featuredCacheKey, func() ([]model.Product, error) {
		return s.repo.ListFeatured(ctx, featuredLimit)
	})
}

func (s *productService) Trending(ctx context.Context) ([]model.Product, error) {
	return s.cachedList(ctx, trendingCacheKey, func() ([]model.Product, error) {
		return s.repo.ListTrending(ctx, trendingLimit)
	})
}

func (s *productService) cachedList(ctx context.Context, key string, load func() ([]model.Product, error)) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, key, payload, listCacheTTL)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ByOwner(ctx context.Context, email string) ([]model.Product, error) {
	return s.repo.ListByOwner(ctx, email)
}

// Create inserts a new product as pending with a zeroed counter regardless
// of what the caller posted.
func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.ID = uuid.Nil
	product.Status = model.ProductStatusPending
	product.IsFeatured = false
	product.Upvotes = 0
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, callerEmail string, product *model.Product) (int64, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing.OwnerEmail != callerEmail {
		return 0, errors.ErrNotOwner
	}
	product.ID = id
	return s.repo.Update(ctx, product)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID, callerEmail string) (int64, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if existing.OwnerEmail != callerEmail {
		return 0, errors.ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

// Upvote applies the guarded increment: 404 when the product is missing,
// 400 when the caller already voted, otherwise the counter moves and the
// caller joins the voter set. The membership check runs first; the unique
// voter index catches the duplicate if a concurrent request from the same
// caller slips between check and write.
func (s *productService) Upvote(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}

	voted, err := s.repo.HasVoted(ctx, id, email)
	if err != nil {
		return 0, err
	}
	if voted {
		return 0, errors.ErrAlreadyVoted
	}

	if err := s.repo.AddVote(ctx, id, email); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.ErrAlreadyVoted
		}
		return 0, err
	}

	_ = s.cache.Delete(ctx, trendingCacheKey)
	return 1, nil
}

// Report mirrors Upvote: existence first, then the duplicate guard, then
// the append.
func (s *productService) Report(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}

	reported, err := s.repo.HasReported(ctx, id, email)
	if err != nil {
		return 0, err
	}
	if reported {
		return 0, errors.ErrAlreadyReported
	}

	if err := s.repo.AddReport(ctx, id, email); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.ErrAlreadyReported
		}
		return 0, err
	}
	return 1, nil
}

func (s *productService) Queue(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListQueue(ctx)
}

func (s *productService) Reported(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListReported(ctx)
}

// SetStatus overwrites the moderation status. Writing the same value twice
// is harmless; the returned count is the number of rows actually changed,
// which is 0 on a repeat.
func (s *productService) SetStatus(ctx context.Context, id uuid.UUID, status model.ProductStatus) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}
	modified, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return 0, err
	}
	_ = s.cache.Delete(ctx, featuredCacheKey)
	_ = s.cache.Delete(ctx, trendingCacheKey)
	return modified, nil
}

func (s *productService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (int64, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}
	modified, err := s.repo.SetFeatured(ctx, id, featured)
	if err != nil {
		return 0, err
	}
	_ = s.cache.Delete(ctx, featuredCacheKey)
	return modified, nil
}
