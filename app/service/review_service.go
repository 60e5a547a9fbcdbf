package service

import (
	"context"
	"fmt"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/workflow"

	"github.com/google/uuid"
)

// AssignInput body penugasan dosen penguji.
type AssignInput struct {
	DosenID uuid.UUID `json:"dosenId" binding:"required"`
}

// ScoreInput skor satu rubrik.
type ScoreInput struct {
	RubrikID uuid.UUID `json:"rubrikId" binding:"required"`
	Score    float64   `json:"score"`
	Comment  string    `json:"comment"`
}

// ScoresInput body PUT /reviews/:id/scores. overallScore tidak diterima dari
// client, selalu dihitung ulang.
type ScoresInput struct {
	Scores         []ScoreInput `json:"scores" binding:"dive"`
	OverallComment *string      `json:"overallComment"`
}

// CommentInput komentar review, opsional menempel ke file dan rentang baris.
type CommentInput struct {
	Content   string  `json:"content" binding:"required"`
	FilePath  *string `json:"filePath"`
	LineStart *int    `json:"lineStart"`
	LineEnd   *int    `json:"lineEnd"`
}

type ReviewService interface {
	Assign(ctx context.Context, caller Caller, projectID uuid.UUID, in AssignInput) (*model.Review, error)
	Unassign(ctx context.Context, caller Caller, projectID, dosenID uuid.UUID) error
	ListMine(ctx context.Context, caller Caller) ([]model.Review, error)
	Get(ctx context.Context, caller Caller, reviewID uuid.UUID) (*model.Review, error)
	SaveScores(ctx context.Context, caller Caller, reviewID uuid.UUID, in ScoresInput) (*model.Review, error)
	Complete(ctx context.Context, caller Caller, reviewID uuid.UUID) (*model.Review, error)
	AddComment(ctx context.Context, caller Caller, reviewID uuid.UUID, in CommentInput) (*model.ReviewComment, error)
	DeleteComment(ctx context.Context, caller Caller, reviewID, commentID uuid.UUID) error
}

type reviewService struct {
	projectRepo repository.ProjectRepository
	reviewRepo  repository.ReviewRepository
	rubrikRepo  repository.RubrikRepository
	userRepo    repository.UserRepository
	recorder    *ActivityRecorder
}

func NewReviewService(
	projectRepo repository.ProjectRepository,
	reviewRepo repository.ReviewRepository,
	rubrikRepo repository.RubrikRepository,
	userRepo repository.UserRepository,
	recorder *ActivityRecorder,
) ReviewService {
	return &reviewService{
		projectRepo: projectRepo,
		reviewRepo:  reviewRepo,
		rubrikRepo:  rubrikRepo,
		userRepo:    userRepo,
		recorder:    recorder,
	}
}

// =========================
// Penugasan (admin)
// =========================

func (s *reviewService) Assign(ctx context.Context, caller Caller, projectID uuid.UUID, in AssignInput) (*model.Review, error) {
	if !caller.IsAdmin() {
		return nil, apperror.NewForbidden("hanya admin yang dapat menugaskan dosen penguji")
	}
	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if workflow.StatusInfo(p.Status).Terminal {
		return nil, apperror.NewConflict("project sudah " + string(p.Status))
	}

	dosen, err := s.userRepo.FindByID(ctx, in.DosenID)
	if err != nil {
		return nil, err
	}
	if dosen.Role != model.RoleDosenPenguji || !dosen.IsActive {
		return nil, apperror.NewValidationError("penugasan tidak valid",
			apperror.FieldError{Field: "dosenId", Error: "harus dosen penguji aktif"})
	}
	if p.IsAssignedDosen(in.DosenID) {
		return nil, apperror.NewConflict("dosen sudah ditugaskan pada project ini")
	}

	review, err := s.reviewRepo.Assign(ctx, &model.ReviewAssignment{
		ProjectID:  projectID,
		DosenID:    in.DosenID,
		AssignedBy: caller.UserID,
	})
	if err != nil {
		return nil, err
	}
	review.Reviewer = dosen
	return review, nil
}

func (s *reviewService) Unassign(ctx context.Context, caller Caller, projectID, dosenID uuid.UUID) error {
	if !caller.IsAdmin() {
		return apperror.NewForbidden("hanya admin yang dapat mencabut penugasan")
	}
	return s.reviewRepo.Unassign(ctx, projectID, dosenID)
}

// =========================
// Review
// =========================

func (s *reviewService) ListMine(ctx context.Context, caller Caller) ([]model.Review, error) {
	if !caller.IsDosen() {
		return nil, apperror.NewForbidden("hanya dosen penguji yang memiliki daftar review")
	}
	return s.reviewRepo.ListByReviewer(ctx, caller.UserID)
}

// Get: reviewer, admin, atau tim project.
func (s *reviewService) Get(ctx context.Context, caller Caller, reviewID uuid.UUID) (*model.Review, error) {
	r, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if caller.IsAdmin() || r.ReviewerID == caller.UserID {
		return r, nil
	}
	if caller.IsMahasiswa() {
		p, err := s.projectRepo.FindByID(ctx, r.ProjectID)
		if err != nil {
			return nil, err
		}
		if p.IsMember(caller.UserID) {
			return r, nil
		}
	}
	return nil, apperror.NewNotFound("review")
}

// loadOwnReview review yang masih boleh diubah reviewer-nya.
func (s *reviewService) loadOwnReview(ctx context.Context, caller Caller, reviewID uuid.UUID) (*model.Review, error) {
	r, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.ReviewerID != caller.UserID {
		if caller.IsAdmin() {
			return nil, apperror.NewForbidden("hanya dosen penguji yang ditugaskan yang dapat menilai")
		}
		return nil, apperror.NewNotFound("review")
	}
	if r.Status == model.ReviewCompleted {
		return nil, apperror.NewConflict("review sudah diselesaikan")
	}
	return r, nil
}

// requireInReview penilaian hanya saat project IN_REVIEW.
func (s *reviewService) requireInReview(ctx context.Context, r *model.Review) error {
	status := model.ProjectStatus("")
	if r.Project != nil {
		status = r.Project.Status
	} else {
		p, err := s.projectRepo.FindByID(ctx, r.ProjectID)
		if err != nil {
			return err
		}
		status = p.Status
	}
	if status != model.StatusInReview {
		return apperror.NewConflict("penilaian hanya dapat dilakukan saat project IN_REVIEW")
	}
	return nil
}

func (s *reviewService) SaveScores(ctx context.Context, caller Caller, reviewID uuid.UUID, in ScoresInput) (*model.Review, error) {
	r, err := s.loadOwnReview(ctx, caller, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.requireInReview(ctx, r); err != nil {
		return nil, err
	}

	active, err := s.rubrikRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.Rubrik, len(active))
	for _, rb := range active {
		byID[rb.ID] = rb
	}

	// 1. Validasi setiap skor terhadap rubrik aktif
	var fields []apperror.FieldError
	seen := map[uuid.UUID]bool{}
	scores := make([]model.ReviewScore, 0, len(in.Scores))
	for i, sc := range in.Scores {
		field := fmt.Sprintf("scores[%d]", i)
		rb, ok := byID[sc.RubrikID]
		switch {
		case !ok:
			fields = append(fields, apperror.FieldError{Field: field + ".rubrikId", Error: "rubrik tidak aktif atau tidak ditemukan"})
			continue
		case seen[sc.RubrikID]:
			fields = append(fields, apperror.FieldError{Field: field + ".rubrikId", Error: "rubrik dinilai lebih dari sekali"})
			continue
		case sc.Score < 0 || sc.Score > float64(rb.BobotMax):
			fields = append(fields, apperror.FieldError{Field: field + ".score", Error: fmt.Sprintf("harus di antara 0 dan %d", rb.BobotMax)})
			continue
		}
		seen[sc.RubrikID] = true
		scores = append(scores, model.ReviewScore{
			ReviewID: reviewID,
			RubrikID: sc.RubrikID,
			Score:    sc.Score,
			Comment:  strings.TrimSpace(sc.Comment),
		})
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError("skor tidak valid", fields...)
	}

	// 2. overallScore dihitung dari skor lama + skor baru
	merged := scoreMap(r.Scores)
	for _, sc := range scores {
		merged[sc.RubrikID] = sc.Score
	}
	summary := repository.ReviewSummary{
		Status:         model.ReviewInProgress,
		OverallScore:   workflow.OverallScore(merged, active),
		OverallComment: in.OverallComment,
	}
	if err := s.reviewRepo.SaveScores(ctx, reviewID, scores, summary); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByID(ctx, reviewID)
}

// Complete butuh skor untuk setiap rubrik aktif.
func (s *reviewService) Complete(ctx context.Context, caller Caller, reviewID uuid.UUID) (*model.Review, error) {
	r, err := s.loadOwnReview(ctx, caller, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.requireInReview(ctx, r); err != nil {
		return nil, err
	}
	active, err := s.rubrikRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if missing := workflow.MissingRubriks(scoreMap(r.Scores), active); len(missing) > 0 {
		fields := make([]apperror.FieldError, 0, len(missing))
		for _, rb := range missing {
			fields = append(fields, apperror.FieldError{Field: "rubrik:" + rb.ID.String(), Error: rb.Name + " belum dinilai"})
		}
		return nil, apperror.NewValidationError("semua rubrik aktif harus dinilai", fields...)
	}

	ok, err := s.reviewRepo.Complete(ctx, reviewID, nowFunc())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflict("review sudah diselesaikan")
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: r.ProjectID,
		action:    model.ActivityReviewCompleted,
		metadata:  map[string]any{"reviewId": reviewID.String()},
	})
	return s.reviewRepo.FindByID(ctx, reviewID)
}

// =========================
// Komentar
// =========================

func (s *reviewService) AddComment(ctx context.Context, caller Caller, reviewID uuid.UUID, in CommentInput) (*model.ReviewComment, error) {
	if _, err := s.loadOwnReview(ctx, caller, reviewID); err != nil {
		return nil, err
	}
	if err := validateComment(in); err != nil {
		return nil, err
	}
	c := &model.ReviewComment{
		ReviewID:  reviewID,
		Content:   strings.TrimSpace(in.Content),
		LineStart: in.LineStart,
		LineEnd:   in.LineEnd,
	}
	if in.FilePath != nil && strings.TrimSpace(*in.FilePath) != "" {
		c.FilePath = strPtr(strings.TrimSpace(*in.FilePath))
	}
	if err := s.reviewRepo.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// validateComment: lineEnd >= lineStart >= 1 dan nomor baris butuh filePath.
func validateComment(in CommentInput) error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Content) == "" {
		fields = append(fields, apperror.FieldError{Field: "content", Error: "wajib diisi"})
	}
	hasFile := in.FilePath != nil && strings.TrimSpace(*in.FilePath) != ""
	if (in.LineStart != nil || in.LineEnd != nil) && !hasFile {
		fields = append(fields, apperror.FieldError{Field: "filePath", Error: "wajib diisi bila nomor baris diisi"})
	}
	if in.LineEnd != nil && in.LineStart == nil {
		fields = append(fields, apperror.FieldError{Field: "lineStart", Error: "wajib diisi bila lineEnd diisi"})
	}
	if in.LineStart != nil && *in.LineStart < 1 {
		fields = append(fields, apperror.FieldError{Field: "lineStart", Error: "minimal 1"})
	}
	if in.LineStart != nil && in.LineEnd != nil && *in.LineEnd < *in.LineStart {
		fields = append(fields, apperror.FieldError{Field: "lineEnd", Error: "tidak boleh lebih kecil dari lineStart"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError("komentar tidak valid", fields...)
	}
	return nil
}

func (s *reviewService) DeleteComment(ctx context.Context, caller Caller, reviewID, commentID uuid.UUID) error {
	if _, err := s.loadOwnReview(ctx, caller, reviewID); err != nil {
		return err
	}
	return s.reviewRepo.DeleteComment(ctx, reviewID, commentID)
}

func scoreMap(scores []model.ReviewScore) map[uuid.UUID]float64 {
	m := make(map[uuid.UUID]float64, len(scores))
	for _, sc := range scores {
		m[sc.RubrikID] = sc.Score
	}
	return m
}
