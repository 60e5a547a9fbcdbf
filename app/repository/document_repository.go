package repository

import (
	"context"

	"capstone-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.ProjectDocument) error
	FindByID(ctx context.Context, projectID, id uuid.UUID) (*model.ProjectDocument, error)
	// ListByProject kind kosong berarti semua jenis.
	ListByProject(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) ([]model.ProjectDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *model.ProjectDocument) error {
	return translate(r.db.WithContext(ctx).Create(d).Error, "dokumen", "create document")
}

func (r *documentRepository) FindByID(ctx context.Context, projectID, id uuid.UUID) (*model.ProjectDocument, error) {
	var d model.ProjectDocument
	err := r.db.WithContext(ctx).Where("id = ? AND project_id = ?", id, projectID).First(&d).Error
	if err != nil {
		return nil, translate(err, "dokumen", "find document")
	}
	return &d, nil
}

func (r *documentRepository) ListByProject(ctx context.Context, projectID uuid.UUID, kind model.DocumentKind) ([]model.ProjectDocument, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	out := []model.ProjectDocument{}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, translate(err, "dokumen", "list documents")
	}
	return out, nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectDocument{})
	if res.Error != nil {
		return translate(res.Error, "dokumen", "delete document")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "dokumen", "")
	}
	return nil
}
