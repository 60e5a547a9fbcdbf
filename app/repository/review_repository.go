package repository

import (
	"context"
	"time"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewSummary kolom ringkasan review yang ditulis bersamaan dengan skor.
type ReviewSummary struct {
	Status         model.ReviewStatus
	OverallScore   *float64
	OverallComment *string
}

// ReviewRepository penugasan dosen penguji, review, skor rubrik dan komentar.
type ReviewRepository interface {
	// Assign membuat ReviewAssignment + Review(PENDING) dalam satu transaksi.
	Assign(ctx context.Context, a *model.ReviewAssignment) (*model.Review, error)
	// Unassign menghapus penugasan; ditolak bila review sudah mulai dikerjakan.
	Unassign(ctx context.Context, projectID, dosenID uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]model.Review, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Review, error)

	SaveScores(ctx context.Context, reviewID uuid.UUID, scores []model.ReviewScore, summary ReviewSummary) error
	// Complete compare-and-swap status selain COMPLETED -> COMPLETED.
	Complete(ctx context.Context, reviewID uuid.UUID, completedAt time.Time) (bool, error)

	AddComment(ctx context.Context, c *model.ReviewComment) error
	DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Assign(ctx context.Context, a *model.ReviewAssignment) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Dosen").Create(a).Error; err != nil {
			return translate(err, "penugasan dosen", "create assignment")
		}
		review = model.Review{
			ProjectID:  a.ProjectID,
			ReviewerID: a.DosenID,
			Status:     model.ReviewPending,
		}
		return translate(tx.Create(&review).Error, "review", "create review")
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Unassign(ctx context.Context, projectID, dosenID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review model.Review
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("project_id = ? AND reviewer_id = ?", projectID, dosenID).
			First(&review).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return translate(err, "review", "find review")
		}
		if err == nil {
			if review.Status != model.ReviewPending {
				return apperror.NewConflict("review sudah mulai dikerjakan, penugasan tidak bisa dihapus")
			}
			if err := tx.Delete(&review).Error; err != nil {
				return translate(err, "review", "delete review")
			}
		}

		res := tx.Where("project_id = ? AND dosen_id = ?", projectID, dosenID).Delete(&model.ReviewAssignment{})
		if res.Error != nil {
			return translate(res.Error, "penugasan dosen", "delete assignment")
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "penugasan dosen", "")
		}
		return nil
	})
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Reviewer").
		Preload("Scores").
		Preload("Scores.Rubrik").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", id).
		First(&review).Error
	if err != nil {
		return nil, translate(err, "review", "find review")
	}
	return &review, nil
}

func (r *reviewRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]model.Review, error) {
	out := []model.Review{}
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Project.Mahasiswa").
		Where("reviewer_id = ?", reviewerID).
		Order("updated_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, "review", "list reviews by reviewer")
	}
	return out, nil
}

func (r *reviewRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Review, error) {
	out := []model.Review{}
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Scores").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, "review", "list reviews by project")
	}
	return out, nil
}

func (r *reviewRepository) SaveScores(ctx context.Context, reviewID uuid.UUID, scores []model.ReviewScore, summary ReviewSummary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(scores) > 0 {
			for i := range scores {
				scores[i].ReviewID = reviewID
			}
			err := tx.Omit("Rubrik").Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "review_id"}, {Name: "rubrik_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
			}).Create(&scores).Error
			if err != nil {
				return translate(err, "skor review", "upsert scores")
			}
		}

		updates := map[string]interface{}{
			"status":        summary.Status,
			"overall_score": summary.OverallScore,
			"updated_at":    time.Now(),
		}
		if summary.OverallComment != nil {
			updates["overall_comment"] = *summary.OverallComment
		}
		res := tx.Model(&model.Review{}).
			Where("id = ? AND status <> ?", reviewID, model.ReviewCompleted).
			Updates(updates)
		if res.Error != nil {
			return translate(res.Error, "review", "update review summary")
		}
		if res.RowsAffected == 0 {
			return apperror.NewConflict("review sudah selesai dan tidak bisa diubah")
		}
		return nil
	})
}

func (r *reviewRepository) Complete(ctx context.Context, reviewID uuid.UUID, completedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ? AND status <> ?", reviewID, model.ReviewCompleted).
		Updates(map[string]interface{}{
			"status":       model.ReviewCompleted,
			"completed_at": completedAt,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return false, translate(res.Error, "review", "complete review")
	}
	return res.RowsAffected == 1, nil
}

func (r *reviewRepository) AddComment(ctx context.Context, c *model.ReviewComment) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "komentar", "create comment")
}

func (r *reviewRepository) DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND review_id = ?", commentID, reviewID).
		Delete(&model.ReviewComment{})
	if res.Error != nil {
		return translate(res.Error, "komentar", "delete comment")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "komentar", "")
	}
	return nil
}
