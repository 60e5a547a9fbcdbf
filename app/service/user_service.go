package service

import (
	"context"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"

	"github.com/google/uuid"
)

// CreateUserInput body admin membuat user dengan role apa pun.
type CreateUserInput struct {
	Username       string     `json:"username" binding:"required,min=3,max=50"`
	Email          string     `json:"email" binding:"required,email"`
	Password       string     `json:"password" binding:"required,min=6"`
	FullName       string     `json:"fullName" binding:"required"`
	Role           model.Role `json:"role" binding:"required,oneof=MAHASISWA DOSEN_PENGUJI ADMIN"`
	IdentityNumber *string    `json:"identityNumber"`
	GithubUsername *string    `json:"githubUsername"`
}

// UserService manajemen user oleh admin dan pencarian calon anggota tim.
type UserService interface {
	List(ctx context.Context, filter repository.UserFilter) ([]model.User, int64, error)
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	SetActive(ctx context.Context, caller Caller, id uuid.UUID, active bool) (*model.User, error)
	SearchMahasiswa(ctx context.Context, query string) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter) ([]model.User, int64, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, 0, apperror.NewValidationError("filter tidak valid",
			apperror.FieldError{Field: "role", Error: "role tidak dikenal"})
	}
	return s.userRepo.List(ctx, filter)
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if !in.Role.Valid() {
		return nil, apperror.NewValidationError("input tidak valid",
			apperror.FieldError{Field: "role", Error: "role tidak dikenal"})
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:       strings.TrimSpace(in.Username),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:   hash,
		FullName:       strings.TrimSpace(in.FullName),
		IdentityNumber: in.IdentityNumber,
		GithubUsername: in.GithubUsername,
		Role:           in.Role,
		IsActive:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive admin tidak bisa menonaktifkan akunnya sendiri.
func (s *userService) SetActive(ctx context.Context, caller Caller, id uuid.UUID, active bool) (*model.User, error) {
	if id == caller.UserID && !active {
		return nil, apperror.NewValidationError("tidak dapat menonaktifkan akun sendiri")
	}
	if err := s.userRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, id)
}

// SearchMahasiswa mencari mahasiswa aktif berdasarkan nama / username / email.
func (s *userService) SearchMahasiswa(ctx context.Context, query string) ([]model.User, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []model.User{}, nil
	}
	users, _, err := s.userRepo.List(ctx, repository.UserFilter{
		Role:       model.RoleMahasiswa,
		Search:     query,
		ActiveOnly: true,
		Pagination: repository.Pagination{Limit: 10},
	})
	return users, err
}
