package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"capstone-backend/app/model"
	"capstone-backend/config"
)

/*
 JWTCustomClaims

 Token menyimpan:
 - UserID (uuid) : identitas user
 - Role   (enum) : MAHASISWA / DOSEN_PENGUJI / ADMIN
*/
type JWTCustomClaims struct {
	UserID uuid.UUID  `json:"userId"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// getJWTSecret membaca JWT_SECRET setiap kali dipanggil.
// Ini menghindari masalah ketika .env baru di-load setelah package di-import.
func getJWTSecret() ([]byte, error) {
	secret := config.JWTSecret()
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return []byte(secret), nil
}

// GenerateToken membuat JWT access token berisi userID dan role.
func GenerateToken(userID uuid.UUID, role model.Role) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	ttl := config.JWTTTL()
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := JWTCustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken mem-validasi JWT dan mengembalikan *JWTCustomClaims jika valid.
// - Mengecek signing method (HMAC).
// - Mengecek expiration dan validitas klaim.
func ValidateToken(tokenString string) (*JWTCustomClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&JWTCustomClaims{},
		func(t *jwt.Token) (interface{}, error) {
			// verifikasi signing method HMAC
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("invalid role claim")
	}

	return claims, nil
}
