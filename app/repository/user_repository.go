package repository

import (
	"context"
	"strings"

	"capstone-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter filter daftar user untuk admin dan pencarian anggota tim.
type UserFilter struct {
	Role       model.Role
	Search     string
	ActiveOnly bool
	Pagination
}

// UserRepository mendefinisikan kontrak operasi database untuk entity User.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
	List(ctx context.Context, filter UserFilter) ([]model.User, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// userRepository adalah implementasi konkret UserRepository berbasis GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository membuat instance baru userRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// Create menyimpan data user baru ke database.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "user", "create user")
}

// FindByEmail mencari user berdasarkan email (digunakan saat login).
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, translate(err, "user", "find user by email")
	}
	return &user, nil
}

// FindByID mengambil user berdasarkan ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "user", "find user by id")
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	users := []model.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, translate(err, "user", "find users by ids")
	}
	return users, nil
}

// List daftar user dengan filter role, pencarian nama/username/email/NIM dan paging.
func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]model.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR identity_number LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "user", "count users")
	}

	offset, limit := filter.normalize()
	users := []model.User{}
	err := q.Order("full_name ASC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, translate(err, "user", "list users")
	}
	return users, total, nil
}

func (r *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return translate(res.Error, "user", "set user active")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "user", "")
	}
	return nil
}
