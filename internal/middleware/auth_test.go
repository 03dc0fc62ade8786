package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hunthub/internal/auth"
	"hunthub/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetSubscribed(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

const testSecret = "test-secret"

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func request(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTokenVerifier(t *testing.T) {
	e := echo.New()
	e.GET("/protected", okHandler, TokenVerifier(testSecret))

	jwtService := auth.NewJWTService(testSecret)
	valid, err := jwtService.GenerateToken("maker@example.com", "Maker", "")
	assert.NoError(t, err)

	foreign, err := auth.NewJWTService("other-secret").GenerateToken("maker@example.com", "", "")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed token", "not-a-token", http.StatusUnauthorized},
		{"wrong signature", foreign, http.StatusUnauthorized},
		{"valid token", valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(e, http.MethodGet, "/protected", tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "Unauthorized access")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	jwtService := auth.NewJWTService(testSecret)
	token, err := jwtService.GenerateToken("caller@example.com", "", "")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		required   model.Role
		setupMock  func(*MockUserRepository)
		wantStatus int
	}{
		{
			name:     "exact match passes",
			required: model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "caller@example.com").
					Return(&model.User{Email: "caller@example.com", Role: model.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:     "wrong role fails",
			required: model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "caller@example.com").
					Return(&model.User{Email: "caller@example.com", Role: model.RoleModerator}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "admin does not pass moderator check",
			required: model.RoleModerator,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "caller@example.com").
					Return(&model.User{Email: "caller@example.com", Role: model.RoleAdmin}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "unknown user fails",
			required: model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "caller@example.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tt.setupMock(users)

			e := echo.New()
			e.GET("/gated", okHandler, TokenVerifier(testSecret), RequireRole(users, tt.required))

			rec := request(e, http.MethodGet, "/gated", token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "Forbidden access")
			}
			users.AssertExpectations(t)
		})
	}
}

func TestRequireRole_NoToken(t *testing.T) {
	users := new(MockUserRepository)
	e := echo.New()
	e.GET("/gated", okHandler, TokenVerifier(testSecret), RequireRole(users, model.RoleAdmin))

	rec := request(e, http.MethodGet, "/gated", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The verifier short-circuits before the role lookup runs.
	users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestValidateID(t *testing.T) {
	called := false
	e := echo.New()
	e.GET("/items/:id", func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}, ValidateID)

	rec := request(e, http.MethodGet, "/items/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid id")
	assert.False(t, called)

	rec = request(e, http.MethodGet, "/items/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
