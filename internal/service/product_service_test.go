package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hunthub/internal/errors"
	"hunthub/internal/model"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) SearchAccepted(ctx context.Context, term string, offset, limit int) ([]model.Product, int64, error) {
	args := m.Called(ctx, term, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListTrending(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListByOwner(ctx context.Context, email string) ([]model.Product, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListQueue(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListReported(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) HasVoted(ctx context.Context, productID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, productID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) AddVote(ctx context.Context, productID uuid.UUID, email string) error {
	args := m.Called(ctx, productID, email)
	return args.Error(0)
}

func (m *MockProductRepository) HasReported(ctx context.Context, productID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, productID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) AddReport(ctx context.Context, productID uuid.UUID, email string) error {
	args := m.Called(ctx, productID, email)
	return args.Error(0)
}

func (m *MockProductRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.ProductStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (int64, error) {
	args := m.Called(ctx, id, featured)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_Upvote(t *testing.T) {
	id := uuid.New()
	caller := "voter@example.com"
	product := &model.Product{ID: id, Name: "HuntHub CLI"}

	tests := []struct {
		name      string
		setupMock func(*MockProductRepository)
		wantErr   error
	}{
		{
			name: "first vote succeeds",
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, id).Return(product, nil)
				m.On("HasVoted", mock.Anything, id, caller).Return(false, nil)
				m.On("AddVote", mock.Anything, id, caller).Return(nil)
			},
		},
		{
			name: "second vote is rejected",
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, id).Return(product, nil)
				m.On("HasVoted", mock.Anything, id, caller).Return(true, nil)
			},
			wantErr: errors.ErrAlreadyVoted,
		},
		{
			name: "concurrent duplicate maps to already voted",
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, id).Return(product, nil)
				m.On("HasVoted", mock.Anything, id, caller).Return(false, nil)
				m.On("AddVote", mock.Anything, id, caller).Return(gorm.ErrDuplicatedKey)
			},
			wantErr: errors.ErrAlreadyVoted,
		},
		{
			name: "missing product is not found",
			setupMock: func(m *MockProductRepository) {
				m.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			tt.setupMock(repo)
			svc := NewProductService(repo, nil)

			modified, err := svc.Upvote(context.Background(), id, caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), modified)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_Report(t *testing.T) {
	id := uuid.New()
	caller := "reporter@example.com"
	product := &model.Product{ID: id, Name: "TagTrail"}

	t.Run("missing product returns not found before the guard", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProductService(repo, nil)
		_, err := svc.Report(context.Background(), id, caller)
		assert.ErrorIs(t, err, errors.ErrProductNotFound)
		repo.AssertNotCalled(t, "HasReported", mock.Anything, id, caller)
	})

	t.Run("second report is rejected", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(product, nil)
		repo.On("HasReported", mock.Anything, id, caller).Return(true, nil)

		svc := NewProductService(repo, nil)
		_, err := svc.Report(context.Background(), id, caller)
		assert.ErrorIs(t, err, errors.ErrAlreadyReported)
		repo.AssertNotCalled(t, "AddReport", mock.Anything, id, caller)
	})

	t.Run("first report is appended", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(product, nil)
		repo.On("HasReported", mock.Anything, id, caller).Return(false, nil)
		repo.On("AddReport", mock.Anything, id, caller).Return(nil)

		svc := NewProductService(repo, nil)
		modified, err := svc.Report(context.Background(), id, caller)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
		repo.AssertExpectations(t)
	})
}

func TestProductService_Search(t *testing.T) {
	t.Run("empty result has zero pages", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("SearchAccepted", mock.Anything, "no-such-tag", 0, 6).
			Return([]model.Product{}, int64(0), nil)

		svc := NewProductService(repo, nil)
		page, err := svc.Search(context.Background(), "no-such-tag", 1, 6)
		assert.NoError(t, err)
		assert.Empty(t, page.Products)
		assert.Equal(t, int64(0), page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
	})

	t.Run("total pages round up", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("SearchAccepted", mock.Anything, "", 6, 6).
			Return([]model.Product{{Name: "HuntHub CLI"}}, int64(7), nil)

		svc := NewProductService(repo, nil)
		page, err := svc.Search(context.Background(), "", 2, 6)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), page.TotalPages)
		assert.Equal(t, 2, page.CurrentPage)
	})
}

func TestProductService_Create(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	svc := NewProductService(repo, nil)
	created, err := svc.Create(context.Background(), &model.Product{
		Name:       "TagTrail",
		OwnerEmail: "maker@example.com",
		Status:     model.ProductStatusAccepted, // the caller cannot self-approve
		Upvotes:    99,
		IsFeatured: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.ProductStatusPending, created.Status)
	assert.Equal(t, 0, created.Upvotes)
	assert.False(t, created.IsFeatured)
}

func TestProductService_OwnerChecks(t *testing.T) {
	id := uuid.New()
	owned := &model.Product{ID: id, OwnerEmail: "owner@example.com"}

	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, id).Return(owned, nil)

	svc := NewProductService(repo, nil)

	_, err := svc.Delete(context.Background(), id, "stranger@example.com")
	assert.ErrorIs(t, err, errors.ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, id)

	_, err = svc.Update(context.Background(), id, "stranger@example.com", &model.Product{Name: "X"})
	assert.ErrorIs(t, err, errors.ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_SetStatus(t *testing.T) {
	id := uuid.New()
	product := &model.Product{ID: id, Name: "Gadget", Status: model.ProductStatusPending}

	t.Run("accepts a pending product", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(product, nil)
		repo.On("SetStatus", mock.Anything, id, model.ProductStatusAccepted).Return(int64(1), nil)

		svc := NewProductService(repo, nil)
		modified, err := svc.SetStatus(context.Background(), id, model.ProductStatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), modified)
		repo.AssertExpectations(t)
	})

	// Re-applying the current status changes nothing and is not an error.
	t.Run("repeat overwrite is harmless", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(product, nil)
		repo.On("SetStatus", mock.Anything, id, model.ProductStatusPending).Return(int64(0), nil)

		svc := NewProductService(repo, nil)
		modified, err := svc.SetStatus(context.Background(), id, model.ProductStatusPending)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), modified)
	})

	t.Run("missing product is not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProductService(repo, nil)
		_, err := svc.SetStatus(context.Background(), id, model.ProductStatusAccepted)
		assert.ErrorIs(t, err, errors.ErrProductNotFound)
		repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
