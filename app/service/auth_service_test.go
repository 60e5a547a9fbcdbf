package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository/mocks"
	"capstone-backend/utils"
)

func TestRegister_ForcesMahasiswa(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(users)

	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
		assert.Equal(t, model.RoleMahasiswa, u.Role)
		assert.Equal(t, "alice@kampus.ac.id", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia123")))
		return nil
	})

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    " Alice@Kampus.ac.id ",
		Password: "rahasia123",
		FullName: "Alice",
	})
	require.NoError(t, err)
	assert.True(t, u.IsActive)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := hashPassword("rahasia123")
	require.NoError(t, err)
	active := &model.User{ID: leaderID, Email: "alice@kampus.ac.id", PasswordHash: hash, Role: model.RoleMahasiswa, IsActive: true}
	inactive := &model.User{ID: memberID, Email: "bob@kampus.ac.id", PasswordHash: hash, Role: model.RoleMahasiswa}

	tests := []struct {
		name     string
		email    string
		password string
		user     *model.User
		findErr  error
		wantErr  interface{}
	}{
		{"berhasil", "alice@kampus.ac.id", "rahasia123", active, nil, nil},
		{"password salah", "alice@kampus.ac.id", "salah", active, nil, &apperror.ValidationError{}},
		{"email tidak ada", "x@kampus.ac.id", "rahasia123", nil, apperror.NewNotFound("user"), &apperror.ValidationError{}},
		{"nonaktif", "bob@kampus.ac.id", "rahasia123", inactive, nil, &apperror.ForbiddenError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUserRepository(ctrl)
			users.EXPECT().FindByEmail(gomock.Any(), tt.email).Return(tt.user, tt.findErr)

			res, err := NewAuthService(users).Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.IsType(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			claims, err := utils.ValidateToken(res.Token)
			require.NoError(t, err)
			assert.Equal(t, leaderID, claims.UserID)
			assert.Equal(t, model.RoleMahasiswa, claims.Role)
		})
	}
}
