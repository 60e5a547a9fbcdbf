package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	ctxUserID      = "userID"
	ctxRole        = "role"
	ctxActiveCheck = "activeUserCheck"
)

// UserFinder sumber status user terkini (UserRepository).
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ActiveUserCheck dipasang di level engine. Setelah token valid,
// AuthMiddleware memastikan user masih ada dan aktif sehingga user yang
// dinonaktifkan admin langsung kehilangan akses walau token belum kedaluwarsa.
func ActiveUserCheck(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxActiveCheck, users)
		c.Next()
	}
}

// AuthMiddleware memvalidasi JWT dari header Authorization (Bearer token)
// dan menyimpan userID dan role ke dalam context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Ambil header Authorization
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "missing_or_invalid_authorization_header", nil))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "empty_token", nil))
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			return
		}

		if v, exists := c.Get(ctxActiveCheck); exists {
			if !userStillActive(c, v.(UserFinder), claims.UserID) {
				return
			}
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// userStillActive response sudah dikirim bila hasilnya false.
func userStillActive(c *gin.Context, users UserFinder, id uuid.UUID) bool {
	user, err := users.FindByID(c.Request.Context(), id)
	var notFound *apperror.NotFoundError
	switch {
	case errors.As(err, &notFound):
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Akun tidak ditemukan", "user_not_found", nil))
		return false
	case err != nil:
		log.Printf("[AUTH] gagal cek status user %s: %v", id, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Terjadi kesalahan server", "internal_server_error", nil))
		return false
	case !user.IsActive:
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Akun sudah dinonaktifkan", "account_inactive", nil))
		return false
	}
	return true
}

// RequireRoles menolak request dengan 403 bila role di context tidak termasuk roles.
// Harus dipasang setelah AuthMiddleware.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			utils.BuildResponseFailed("Anda tidak memiliki akses ke fitur ini", "forbidden", nil))
	}
}

// CurrentUserID userID dari token; uuid.Nil bila belum terautentikasi.
func CurrentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(ctxUserID)
	id, _ := v.(uuid.UUID)
	return id
}

// CurrentRole role dari token.
func CurrentRole(c *gin.Context) model.Role {
	v, _ := c.Get(ctxRole)
	role, _ := v.(model.Role)
	return role
}
