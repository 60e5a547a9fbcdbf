package repository

import (
	"context"

	"capstone-backend/app/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequirementsRepository akses dokumen requirements (one-to-one dengan project).
type RequirementsRepository interface {
	// FindByProjectID mengembalikan (nil, nil) bila project belum punya requirements.
	FindByProjectID(ctx context.Context, projectID uuid.UUID) (*model.ProjectRequirements, error)
	// Upsert insert atau update berdasarkan project_id.
	Upsert(ctx context.Context, req *model.ProjectRequirements) error
}

type requirementsRepository struct {
	db *gorm.DB
}

func NewRequirementsRepository(db *gorm.DB) RequirementsRepository {
	return &requirementsRepository{db: db}
}

func (r *requirementsRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) (*model.ProjectRequirements, error) {
	var req model.ProjectRequirements
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "requirements", "find requirements")
	}
	return &req, nil
}

func (r *requirementsRepository) Upsert(ctx context.Context, req *model.ProjectRequirements) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"integrasi_matakuliah", "metodologi",
			"ruang_lingkup", "sumber_daya_batasan", "fitur_utama",
			"analisis_temuan", "presentasi_ujian", "stakeholder", "kepatuhan_etika",
			"production_url", "production_url_status", "testing_username", "testing_password", "testing_notes",
			"completion_percent", "updated_by", "updated_at",
		}),
	}).Create(req).Error
	return translate(err, "requirements", "upsert requirements")
}
