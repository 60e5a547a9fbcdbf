package repository

import (
	"context"

	"capstone-backend/app/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SemesterRepository interface {
	Create(ctx context.Context, s *model.Semester) error
	Update(ctx context.Context, s *model.Semester) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Semester, error)
	List(ctx context.Context) ([]model.Semester, error)
	// FindActive mengembalikan (nil, nil) bila belum ada semester aktif.
	FindActive(ctx context.Context) (*model.Semester, error)
	// Activate menonaktifkan semua semester lain lalu mengaktifkan id, dalam satu transaksi.
	Activate(ctx context.Context, id uuid.UUID) error
}

type semesterRepository struct {
	db *gorm.DB
}

func NewSemesterRepository(db *gorm.DB) SemesterRepository {
	return &semesterRepository{db: db}
}

func (r *semesterRepository) Create(ctx context.Context, s *model.Semester) error {
	// semester baru selalu non-aktif; aktivasi lewat Activate
	s.IsActive = false
	return translate(r.db.WithContext(ctx).Create(s).Error, "semester", "create semester")
}

func (r *semesterRepository) Update(ctx context.Context, s *model.Semester) error {
	res := r.db.WithContext(ctx).Model(&model.Semester{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":           s.Name,
		"tahun_akademik": s.TahunAkademik,
		"start_date":     s.StartDate,
		"end_date":       s.EndDate,
	})
	if res.Error != nil {
		return translate(res.Error, "semester", "update semester")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "semester", "")
	}
	return nil
}

func (r *semesterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Semester{})
	if res.Error != nil {
		return translate(res.Error, "semester", "delete semester")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "semester", "")
	}
	return nil
}

func (r *semesterRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Semester, error) {
	var s model.Semester
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err, "semester", "find semester")
	}
	return &s, nil
}

func (r *semesterRepository) List(ctx context.Context) ([]model.Semester, error) {
	out := []model.Semester{}
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&out).Error; err != nil {
		return nil, translate(err, "semester", "list semester")
	}
	return out, nil
}

func (r *semesterRepository) FindActive(ctx context.Context) (*model.Semester, error) {
	var s model.Semester
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "semester", "find active semester")
	}
	return &s, nil
}

// semesterActivationLock key pg_advisory_xact_lock untuk aktivasi semester.
const semesterActivationLock = 20250901

func (r *semesterRepository) Activate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return activateSemester(tx, id)
	})
}

// activateSemester aktivasi paralel diantrikan lewat advisory lock sehingga
// langkah menonaktifkan semester lain selalu melihat aktivasi yang sudah commit.
// Index unik parsial idx_semesters_single_active menjadi pengaman terakhir.
func activateSemester(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", semesterActivationLock).Error; err != nil {
		return translate(err, "semester", "lock semester activation")
	}
	if err := tx.Model(&model.Semester{}).
		Where("id <> ? AND is_active = ?", id, true).
		Update("is_active", false).Error; err != nil {
		return translate(err, "semester", "deactivate semesters")
	}
	res := tx.Model(&model.Semester{}).Where("id = ?", id).Update("is_active", true)
	if res.Error != nil {
		return translate(res.Error, "semester", "activate semester")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "semester", "")
	}
	return nil
}
