package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capstone-backend/app/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	id := uuid.New()
	token, err := GenerateToken(id, model.RoleDosenPenguji)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, model.RoleDosenPenguji, claims.Role)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateToken(uuid.New(), model.RoleAdmin)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	claims := JWTCustomClaims{
		UserID: uuid.New(),
		Role:   model.RoleMahasiswa,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("rahasia-test"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_UnknownRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")
	token, err := GenerateToken(uuid.New(), model.Role("SUPERUSER"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken(uuid.New(), model.RoleAdmin)
	assert.Error(t, err)
}
