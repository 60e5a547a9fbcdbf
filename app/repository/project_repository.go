package repository

import (
	"context"
	"strings"
	"time"

	"capstone-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectFilter menentukan scope daftar project:
// - MemberID diisi  => hanya project di mana user adalah ketua/anggota
// - DosenID diisi   => hanya project yang ditugaskan ke dosen tsb
// - keduanya kosong => semua project (admin)
type ProjectFilter struct {
	MemberID      uuid.UUID
	DosenID       uuid.UUID
	Status        model.ProjectStatus
	Semester      string
	TahunAkademik string
	Search        string
	Pagination
}

// StatusChange kolom tambahan yang ikut di-set bersamaan dengan perubahan status.
// Field nil tidak disentuh.
type StatusChange struct {
	SubmittedAt *time.Time
	OrgRepoURL  *string
	OrgRepoName *string
	ForkedAt    *time.Time
}

// ProjectEdit field yang boleh diubah pemilik saat DRAFT / REVISION_NEEDED.
type ProjectEdit struct {
	Title          *string
	Description    *string
	Semester       *string
	TahunAkademik  *string
	GithubRepoURL  *string
	GithubRepoName *string
	ClearRepo      bool
}

// ProjectRepository operasi data project dan tim.
type ProjectRepository interface {
	// Create menyimpan project baru beserta baris member ketua dalam satu transaksi.
	Create(ctx context.Context, p *model.Project) error
	// FindByID mengambil project lengkap (pemilik, anggota, assignment, requirements).
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, int64, error)
	Update(ctx context.Context, id uuid.UUID, edit ProjectEdit) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateStatus compare-and-swap: hanya mengubah bila status saat ini == from.
	// false berarti status sudah diubah request lain.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ProjectStatus, change StatusChange) (bool, error)
	// SetOrgRepo mengisi repo organisasi hanya bila belum pernah diisi.
	SetOrgRepo(ctx context.Context, id uuid.UUID, url, name string, forkedAt time.Time) (bool, error)

	CountByStatus(ctx context.Context, filter ProjectFilter) (map[model.ProjectStatus]int64, error)
	ProjectIDs(ctx context.Context, filter ProjectFilter) ([]uuid.UUID, error)

	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.Status == "" {
			p.Status = model.StatusDraft
		}
		if err := tx.Omit("Members", "Documents", "Reviews", "Assignments", "Requirements", "Invitations", "Mahasiswa").
			Create(p).Error; err != nil {
			return translate(err, "project", "create project")
		}

		leader := model.ProjectMember{
			ProjectID: p.ID,
			UserID:    p.MahasiswaID,
			Role:      model.MemberLeader,
		}
		if err := tx.Create(&leader).Error; err != nil {
			return translate(err, "anggota project", "create leader member")
		}
		p.Members = []model.ProjectMember{leader}
		return nil
	})
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("Mahasiswa").
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("joined_at ASC") }).
		Preload("Members.User").
		Preload("Assignments").
		Preload("Assignments.Dosen").
		Preload("Requirements").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, translate(err, "project", "find project")
	}
	return &p, nil
}

func (r *projectRepository) scoped(ctx context.Context, filter ProjectFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Project{})
	if filter.MemberID != uuid.Nil {
		q = q.Where("projects.id IN (?)",
			r.db.Model(&model.ProjectMember{}).Select("project_id").Where("user_id = ?", filter.MemberID))
	}
	if filter.DosenID != uuid.Nil {
		q = q.Where("projects.id IN (?)",
			r.db.Model(&model.ReviewAssignment{}).Select("project_id").Where("dosen_id = ?", filter.DosenID))
	}
	if filter.Status != "" {
		q = q.Where("projects.status = ?", filter.Status)
	}
	if filter.Semester != "" {
		q = q.Where("projects.semester = ?", filter.Semester)
	}
	if filter.TahunAkademik != "" {
		q = q.Where("projects.tahun_akademik = ?", filter.TahunAkademik)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("LOWER(projects.title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	return q
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]model.Project, int64, error) {
	q := r.scoped(ctx, filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "project", "count projects")
	}

	offset, limit := filter.normalize()
	projects := []model.Project{}
	err := q.
		Preload("Mahasiswa").
		Preload("Requirements").
		Order("projects.updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, translate(err, "project", "list projects")
	}
	return projects, total, nil
}

func (r *projectRepository) Update(ctx context.Context, id uuid.UUID, edit ProjectEdit) error {
	updates := map[string]interface{}{}
	if edit.Title != nil {
		updates["title"] = *edit.Title
	}
	if edit.Description != nil {
		updates["description"] = *edit.Description
	}
	if edit.Semester != nil {
		updates["semester"] = *edit.Semester
	}
	if edit.TahunAkademik != nil {
		updates["tahun_akademik"] = *edit.TahunAkademik
	}
	if edit.ClearRepo {
		updates["github_repo_url"] = nil
		updates["github_repo_name"] = nil
	} else if edit.GithubRepoURL != nil {
		updates["github_repo_url"] = *edit.GithubRepoURL
		updates["github_repo_name"] = edit.GithubRepoName
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translate(res.Error, "project", "update project")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "project", "")
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// anggota, undangan, requirements, dokumen, assignment dan review (beserta
	// nilai & komentarnya) ikut terhapus lewat FK ON DELETE CASCADE
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if res.Error != nil {
		return translate(res.Error, "project", "delete project")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "project", "")
	}
	return nil
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ProjectStatus, change StatusChange) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if change.SubmittedAt != nil {
		updates["submitted_at"] = *change.SubmittedAt
	}
	if change.OrgRepoURL != nil {
		updates["org_repo_url"] = *change.OrgRepoURL
	}
	if change.OrgRepoName != nil {
		updates["org_repo_name"] = *change.OrgRepoName
	}
	if change.ForkedAt != nil {
		updates["forked_at"] = *change.ForkedAt
	}

	q := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND status = ?", id, from)
	if change.SubmittedAt != nil {
		// submitted_at hanya diisi sekali
		q = q.Where("submitted_at IS NULL")
	}
	res := q.Updates(updates)
	if res.Error != nil {
		return false, translate(res.Error, "project", "update project status")
	}
	return res.RowsAffected == 1, nil
}

func (r *projectRepository) SetOrgRepo(ctx context.Context, id uuid.UUID, url, name string, forkedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND org_repo_url IS NULL", id).
		Updates(map[string]interface{}{
			"org_repo_url":  url,
			"org_repo_name": name,
			"forked_at":     forkedAt,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return false, translate(res.Error, "project", "set org repo")
	}
	return res.RowsAffected == 1, nil
}

func (r *projectRepository) CountByStatus(ctx context.Context, filter ProjectFilter) (map[model.ProjectStatus]int64, error) {
	var rows []struct {
		Status model.ProjectStatus
		Count  int64
	}
	err := r.scoped(ctx, filter).
		Select("projects.status AS status, COUNT(*) AS count").
		Group("projects.status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "project", "count projects by status")
	}

	out := make(map[model.ProjectStatus]int64, len(model.AllProjectStatuses))
	for _, s := range model.AllProjectStatuses {
		out[s] = 0
	}
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *projectRepository) ProjectIDs(ctx context.Context, filter ProjectFilter) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := r.scoped(ctx, filter).Pluck("projects.id", &ids).Error; err != nil {
		return nil, translate(err, "project", "pluck project ids")
	}
	return ids, nil
}

func (r *projectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ? AND role = ?", projectID, userID, model.MemberMember).
		Delete(&model.ProjectMember{})
	if res.Error != nil {
		return translate(res.Error, "anggota project", "remove member")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "anggota project", "")
	}
	return nil
}
