package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken("maker@example.com", "Maker", "")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken("maker@example.com", "Maker", "https://img.example.com/m.png")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "maker@example.com", claims.Email)
	assert.Equal(t, "Maker", claims.Name)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", func() string {
			other := NewJWTService("other-secret")
			token, _ := other.GenerateToken("maker@example.com", "", "")
			return token
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "test-secret"
	service := NewJWTService(secret)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "maker@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	token, err := expired.SignedString([]byte(secret))
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	service := NewJWTService("test-secret")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Email: "maker@example.com"})
	token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
