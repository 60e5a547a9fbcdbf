package service

import (
	"context"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput body registrasi mandiri (selalu menjadi MAHASISWA).
type RegisterInput struct {
	Username       string  `json:"username" binding:"required,min=3,max=50"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
	FullName       string  `json:"fullName" binding:"required"`
	IdentityNumber *string `json:"identityNumber"`
	GithubUsername *string `json:"githubUsername"`
}

// LoginResult token JWT beserta data user.
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Interface AuthService mendefinisikan apa saja yang bisa dilakukan layanan ini.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService menghubungkan Service dengan Repository
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

var errInvalidCredentials = apperror.NewValidationError("email atau password salah")

// Register: mendaftarkan mahasiswa baru
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	// 1. Hash password, password asli tidak pernah disimpan
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// 2. Role dipaksa MAHASISWA; dosen & admin dibuat lewat menu admin
	user := &model.User{
		Username:       strings.TrimSpace(in.Username),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:   hash,
		FullName:       strings.TrimSpace(in.FullName),
		IdentityNumber: in.IdentityNumber,
		GithubUsername: in.GithubUsername,
		Role:           model.RoleMahasiswa,
		IsActive:       true,
	}

	// 3. Simpan; email/username duplikat menjadi ConflictError dari repository
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login: cek email & password lalu terbitkan token
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		var nf *apperror.NotFoundError
		if errors.As(err, &nf) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperror.NewForbidden("akun anda dinonaktifkan")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
