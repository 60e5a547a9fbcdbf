package repository

import (
	"context"

	"capstone-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RubrikRepository interface {
	Create(ctx context.Context, r *model.Rubrik) error
	Update(ctx context.Context, r *model.Rubrik) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rubrik, error)
	// List diurutkan berdasarkan urutan lalu nama.
	List(ctx context.Context, activeOnly bool) ([]model.Rubrik, error)
	// IsUsed true bila rubrik sudah dipakai pada skor review.
	IsUsed(ctx context.Context, id uuid.UUID) (bool, error)
}

type rubrikRepository struct {
	db *gorm.DB
}

func NewRubrikRepository(db *gorm.DB) RubrikRepository {
	return &rubrikRepository{db: db}
}

func (r *rubrikRepository) Create(ctx context.Context, rb *model.Rubrik) error {
	return translate(r.db.WithContext(ctx).Create(rb).Error, "rubrik", "create rubrik")
}

func (r *rubrikRepository) Update(ctx context.Context, rb *model.Rubrik) error {
	res := r.db.WithContext(ctx).Model(&model.Rubrik{}).Where("id = ?", rb.ID).Updates(map[string]interface{}{
		"name":        rb.Name,
		"description": rb.Description,
		"kategori":    rb.Kategori,
		"bobot_max":   rb.BobotMax,
		"urutan":      rb.Urutan,
		"is_active":   rb.IsActive,
	})
	if res.Error != nil {
		return translate(res.Error, "rubrik", "update rubrik")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "rubrik", "")
	}
	return nil
}

func (r *rubrikRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Rubrik{})
	if res.Error != nil {
		return translate(res.Error, "rubrik", "delete rubrik")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "rubrik", "")
	}
	return nil
}

func (r *rubrikRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Rubrik, error) {
	var rb model.Rubrik
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rb).Error; err != nil {
		return nil, translate(err, "rubrik", "find rubrik")
	}
	return &rb, nil
}

func (r *rubrikRepository) List(ctx context.Context, activeOnly bool) ([]model.Rubrik, error) {
	q := r.db.WithContext(ctx).Model(&model.Rubrik{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	out := []model.Rubrik{}
	if err := q.Order("urutan ASC, name ASC").Find(&out).Error; err != nil {
		return nil, translate(err, "rubrik", "list rubrik")
	}
	return out, nil
}

func (r *rubrikRepository) IsUsed(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.ReviewScore{}).Where("rubrik_id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err, "rubrik", "count rubrik usage")
	}
	return n > 0, nil
}
