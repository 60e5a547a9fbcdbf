package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/utils"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(), RequireRoles(model.RoleAdmin, model.RoleDosenPenguji), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "role": CurrentRole(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	adminToken, err := utils.GenerateToken(uuid.New(), model.RoleAdmin)
	require.NoError(t, err)
	mhsToken, err := utils.GenerateToken(uuid.New(), model.RoleMahasiswa)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "no header", header: "", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer  ", wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantCode: http.StatusUnauthorized},
		{name: "role not allowed", header: "Bearer " + mhsToken, wantCode: http.StatusForbidden},
		{name: "admin", header: "Bearer " + adminToken, wantCode: http.StatusOK},
	}
	r := newEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

type fakeUsers map[uuid.UUID]*model.User

func (f fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, apperror.NewNotFound("user")
	}
	return u, nil
}

func TestAuthMiddleware_DeactivatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	activeID, inactiveID, deletedID := uuid.New(), uuid.New(), uuid.New()
	users := fakeUsers{
		activeID:   {ID: activeID, Role: model.RoleAdmin, IsActive: true},
		inactiveID: {ID: inactiveID, Role: model.RoleAdmin, IsActive: false},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ActiveUserCheck(users))
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c)})
	})

	tests := []struct {
		name     string
		id       uuid.UUID
		wantCode int
	}{
		{name: "active", id: activeID, wantCode: http.StatusOK},
		{name: "deactivated with valid token", id: inactiveID, wantCode: http.StatusUnauthorized},
		{name: "user removed", id: deletedID, wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := utils.GenerateToken(tt.id, model.RoleAdmin)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}
