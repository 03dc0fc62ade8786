package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hunthub/internal/auth"
	"hunthub/internal/errors"
	"hunthub/internal/middleware"
	"hunthub/internal/model"
	"hunthub/internal/service"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Search(ctx context.Context, term string, page, limit int) (*service.ProductPage, error) {
	args := m.Called(ctx, term, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductPage), args.Error(1)
}

func (m *MockProductService) Featured(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Trending(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) ByOwner(ctx context.Context, email string) ([]model.Product, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, callerEmail string, product *model.Product) (int64, error) {
	args := m.Called(ctx, id, callerEmail, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID, callerEmail string) (int64, error) {
	args := m.Called(ctx, id, callerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Upvote(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	args := m.Called(ctx, id, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Report(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	args := m.Called(ctx, id, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) Queue(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Reported(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) SetStatus(ctx context.Context, id uuid.UUID, status model.ProductStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (int64, error) {
	args := m.Called(ctx, id, featured)
	return args.Get(0).(int64), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

const testSecret = "test-secret"

func newApp(svc service.ProductService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	h := NewProductHandler(svc)
	verify := middleware.TokenVerifier(testSecret)
	e.GET("/products", h.Search)
	e.PATCH("/products/upvote/:id", h.Upvote, verify, middleware.ValidateID)
	return e
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateToken(email, "", "")
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestProductHandler_Search_InvalidPagination(t *testing.T) {
	svc := new(MockProductService)
	e := newApp(svc)

	for _, q := range []string{"?page=0", "?page=abc", "?limit=-1", "?limit=9999"} {
		req := httptest.NewRequest(http.MethodGet, "/products"+q, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Contains(t, rec.Body.String(), "Invalid pagination parameter")
	}
	svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_Search_Defaults(t *testing.T) {
	svc := new(MockProductService)
	svc.On("Search", mock.Anything, "", 1, 6).
		Return(&service.ProductPage{Products: []model.Product{}, TotalPages: 0, CurrentPage: 1}, nil)

	e := newApp(svc)
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[],"totalPages":0,"currentPage":1}`, rec.Body.String())
}

func TestProductHandler_Upvote(t *testing.T) {
	id := uuid.New()

	t.Run("malformed id is rejected before the service", func(t *testing.T) {
		svc := new(MockProductService)
		e := newApp(svc)

		req := httptest.NewRequest(http.MethodPatch, "/products/upvote/not-an-id", nil)
		req.Header.Set(echo.HeaderAuthorization, bearer(t, "voter@example.com"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Upvote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		svc := new(MockProductService)
		e := newApp(svc)

		req := httptest.NewRequest(http.MethodPatch, "/products/upvote/"+id.String(), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("duplicate vote maps to 400", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Upvote", mock.Anything, id, "voter@example.com").
			Return(int64(0), errors.ErrAlreadyVoted)

		e := newApp(svc)
		req := httptest.NewRequest(http.MethodPatch, "/products/upvote/"+id.String(), nil)
		req.Header.Set(echo.HeaderAuthorization, bearer(t, "voter@example.com"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Already voted")
	})

	t.Run("first vote succeeds", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Upvote", mock.Anything, id, "voter@example.com").
			Return(int64(1), nil)

		e := newApp(svc)
		req := httptest.NewRequest(http.MethodPatch, "/products/upvote/"+id.String(), nil)
		req.Header.Set(echo.HeaderAuthorization, bearer(t, "voter@example.com"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"modifiedCount":1`)
	})
}
