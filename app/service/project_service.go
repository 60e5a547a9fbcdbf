package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/interfaces"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/workflow"
	ghclient "capstone-backend/pkg/github"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CreateProjectInput body pembuatan project oleh mahasiswa.
type CreateProjectInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Semester      string  `json:"semester"`
	TahunAkademik string  `json:"tahunAkademik"`
	GithubRepoURL *string `json:"githubRepoUrl"`
}

// UpdateProjectInput body PUT /projects/:id. Status terisi berarti perubahan
// status lewat workflow; selain itu perubahan data project.
type UpdateProjectInput struct {
	Status           *model.ProjectStatus `json:"status"`
	ForkToOrg        bool                 `json:"forkToOrg"`
	AddCollaborators bool                 `json:"addCollaborators"`

	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Semester      *string `json:"semester"`
	TahunAkademik *string `json:"tahunAkademik"`
	GithubRepoURL *string `json:"githubRepoUrl"`
}

// TransitionInput opsi tambahan untuk aksi workflow (hanya berarti pada APPROVE).
type TransitionInput struct {
	ForkToOrg        bool `json:"forkToOrg"`
	AddCollaborators bool `json:"addCollaborators"`
}

// ListProjectsInput filter daftar project dari query string.
type ListProjectsInput struct {
	Status        model.ProjectStatus
	Semester      string
	TahunAkademik string
	Search        string
	repository.Pagination
}

// ProjectListItem satu baris daftar project.
type ProjectListItem struct {
	model.Project
	StatusInfo workflow.StatusMeta `json:"statusInfo"`
}

// ProjectDetail project lengkap untuk halaman detail.
type ProjectDetail struct {
	*model.Project
	StatusInfo     workflow.StatusMeta `json:"statusInfo"`
	AllowedActions []workflow.Action   `json:"allowedActions"`
	Completion     workflow.Completion `json:"completion"`
}

type ProjectService interface {
	Create(ctx context.Context, caller Caller, in CreateProjectInput) (*ProjectDetail, error)
	List(ctx context.Context, caller Caller, in ListProjectsInput) ([]ProjectListItem, int64, error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (*ProjectDetail, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, in UpdateProjectInput) (*ProjectDetail, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error

	// Transition menjalankan satu aksi workflow terhadap project.
	Transition(ctx context.Context, caller Caller, id uuid.UUID, action workflow.Action, in TransitionInput) (*ProjectDetail, error)
	// ForkToOrg fork ulang project APPROVED yang belum punya repo organisasi.
	ForkToOrg(ctx context.Context, caller Caller, id uuid.UUID, addCollaborators bool) (*ProjectDetail, error)
	ValidateRepository(ctx context.Context, rawURL string) (*interfaces.RepoInfo, error)
}

type projectService struct {
	projectRepo  repository.ProjectRepository
	semesterRepo repository.SemesterRepository
	documentRepo repository.DocumentRepository
	reviewRepo   repository.ReviewRepository
	github       interfaces.GithubClient
	uploader     interfaces.Uploader
	recorder     *ActivityRecorder
}

// NewProjectService github dan uploader boleh nil bila integrasi belum dikonfigurasi.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	semesterRepo repository.SemesterRepository,
	documentRepo repository.DocumentRepository,
	reviewRepo repository.ReviewRepository,
	github interfaces.GithubClient,
	uploader interfaces.Uploader,
	recorder *ActivityRecorder,
) ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		semesterRepo: semesterRepo,
		documentRepo: documentRepo,
		reviewRepo:   reviewRepo,
		github:       github,
		uploader:     uploader,
		recorder:     recorder,
	}
}

var errStatusChanged = apperror.NewConflict("status project sudah diubah oleh pengguna lain, muat ulang data")

// =========================
// CRUD
// =========================

func (s *projectService) Create(ctx context.Context, caller Caller, in CreateProjectInput) (*ProjectDetail, error) {
	if !caller.IsMahasiswa() {
		return nil, apperror.NewForbidden("hanya mahasiswa yang dapat membuat project")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.NewValidationError("data project tidak valid",
			apperror.FieldError{Field: "title", Error: "wajib diisi"})
	}

	p := &model.Project{
		Title:         title,
		Description:   in.Description,
		Status:        model.StatusDraft,
		Semester:      strings.TrimSpace(in.Semester),
		TahunAkademik: strings.TrimSpace(in.TahunAkademik),
		MahasiswaID:   caller.UserID,
	}

	// 1. Semester default mengikuti semester aktif
	active, err := s.semesterRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		p.SemesterID = &active.ID
		if p.Semester == "" {
			p.Semester = active.Name
		}
		if p.TahunAkademik == "" {
			p.TahunAkademik = active.TahunAkademik
		}
	}

	// 2. URL repo opsional
	if in.GithubRepoURL != nil && strings.TrimSpace(*in.GithubRepoURL) != "" {
		url, name, err := normalizeRepoURL(*in.GithubRepoURL)
		if err != nil {
			return nil, err
		}
		p.GithubRepoURL = &url
		p.GithubRepoName = &name
	}

	// 3. Project + baris member ketua dalam satu transaksi
	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: p.ID,
		action:    model.ActivityCreated,
		to:        model.StatusDraft,
		metadata:  map[string]any{"title": p.Title},
	})
	return s.Get(ctx, caller, p.ID)
}

// List scope mengikuti role: mahasiswa project timnya, dosen project yang
// ditugaskan, admin semua.
func (s *projectService) List(ctx context.Context, caller Caller, in ListProjectsInput) ([]ProjectListItem, int64, error) {
	if in.Status != "" && !in.Status.Valid() {
		return nil, 0, apperror.NewValidationError("filter tidak valid",
			apperror.FieldError{Field: "status", Error: "status tidak dikenal"})
	}
	filter := repository.ProjectFilter{
		Status:        in.Status,
		Semester:      in.Semester,
		TahunAkademik: in.TahunAkademik,
		Search:        in.Search,
		Pagination:    in.Pagination,
	}
	switch caller.Role {
	case model.RoleMahasiswa:
		filter.MemberID = caller.UserID
	case model.RoleDosenPenguji:
		filter.DosenID = caller.UserID
	case model.RoleAdmin:
	default:
		return nil, 0, apperror.NewForbidden("role tidak dikenal")
	}

	projects, total, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	items := make([]ProjectListItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, ProjectListItem{Project: p, StatusInfo: workflow.StatusInfo(p.Status)})
	}
	return items, total, nil
}

func (s *projectService) Get(ctx context.Context, caller Caller, id uuid.UUID) (*ProjectDetail, error) {
	p, err := loadVisibleProject(ctx, s.projectRepo, caller, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, caller, p)
}

func (s *projectService) detail(ctx context.Context, caller Caller, p *model.Project) (*ProjectDetail, error) {
	docs, err := s.documentRepo.ListByProject(ctx, p.ID, "")
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Documents = docs
	p.Reviews = reviews

	return &ProjectDetail{
		Project:        p,
		StatusInfo:     workflow.StatusInfo(p.Status),
		AllowedActions: workflow.AllowedActions(p.Status, actorOf(caller, p)),
		Completion:     workflow.ComputeRequirements(p.Requirements),
	}, nil
}

func (s *projectService) Update(ctx context.Context, caller Caller, id uuid.UUID, in UpdateProjectInput) (*ProjectDetail, error) {
	// body {status} diteruskan ke workflow
	if in.Status != nil {
		action, ok := workflow.ActionForStatus(*in.Status)
		if !ok {
			return nil, apperror.NewValidationError("status tidak valid",
				apperror.FieldError{Field: "status", Error: "tidak ada aksi menuju status " + string(*in.Status)})
		}
		return s.Transition(ctx, caller, id, action, TransitionInput{
			ForkToOrg:        in.ForkToOrg,
			AddCollaborators: in.AddCollaborators,
		})
	}

	p, err := loadLeaderProject(ctx, s.projectRepo, caller, id)
	if err != nil {
		return nil, err
	}
	if !p.Status.Editable() {
		return nil, apperror.NewConflict("project hanya dapat diubah saat DRAFT atau REVISION_NEEDED")
	}

	edit := repository.ProjectEdit{
		Description:   in.Description,
		Semester:      in.Semester,
		TahunAkademik: in.TahunAkademik,
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperror.NewValidationError("data project tidak valid",
				apperror.FieldError{Field: "title", Error: "tidak boleh kosong"})
		}
		edit.Title = &title
	}
	if in.GithubRepoURL != nil {
		if strings.TrimSpace(*in.GithubRepoURL) == "" {
			edit.ClearRepo = true
		} else {
			url, name, err := normalizeRepoURL(*in.GithubRepoURL)
			if err != nil {
				return nil, err
			}
			edit.GithubRepoURL = &url
			edit.GithubRepoName = &name
		}
	}

	if err := s.projectRepo.Update(ctx, id, edit); err != nil {
		return nil, err
	}
	return s.Get(ctx, caller, id)
}

// Delete hanya ketua, hanya saat DRAFT. Berkas di storage dihapus best-effort.
func (s *projectService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	p, err := loadLeaderProject(ctx, s.projectRepo, caller, id)
	if err != nil {
		return err
	}
	if p.Status != model.StatusDraft {
		return apperror.NewConflict("hanya project DRAFT yang dapat dihapus")
	}

	docs, err := s.documentRepo.ListByProject(ctx, id, "")
	if err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.uploader != nil {
		for _, d := range docs {
			if err := s.uploader.Delete(ctx, d.FileKey, d.ResourceType); err != nil {
				log.Printf("[STORAGE] gagal menghapus %s: %v", d.FileKey, err)
			}
		}
	}
	return nil
}

// =========================
// Workflow
// =========================

func (s *projectService) Transition(ctx context.Context, caller Caller, id uuid.UUID, action workflow.Action, in TransitionInput) (*ProjectDetail, error) {
	p, err := loadVisibleProject(ctx, s.projectRepo, caller, id)
	if err != nil {
		return nil, err
	}

	// 1. Keputusan murni dari tabel transisi
	t, err := workflow.Decide(p.Status, action, actorOf(caller, p), workflow.Options{
		ForkToOrg:        in.ForkToOrg,
		HasRepo:          p.GithubRepoURL != nil && strings.TrimSpace(*p.GithubRepoURL) != "",
		AlreadySubmitted: p.SubmittedAt != nil,
	})
	if err != nil {
		return nil, err
	}
	if t.NoOp {
		return s.detail(ctx, caller, p)
	}

	// 2. Efek samping yang harus terjadi sebelum commit
	now := nowFunc()
	change := repository.StatusChange{}
	if t.HasEffect(workflow.EffectSetSubmittedAt) {
		change.SubmittedAt = &now
	}
	var fork *interfaces.ForkResult
	if t.HasEffect(workflow.EffectForkToOrg) {
		// fork gagal => tidak ada yang disimpan, status tetap
		fork, err = s.forkRepo(ctx, p, in.AddCollaborators)
		if err != nil {
			return nil, err
		}
		change.OrgRepoURL = &fork.HTMLURL
		change.OrgRepoName = &fork.FullName
		change.ForkedAt = &now
	}

	// 3. Compare-and-swap
	ok, err := s.projectRepo.UpdateStatus(ctx, p.ID, t.From, t.To, change)
	if err != nil {
		return nil, err
	}
	if !ok {
		if fork != nil {
			log.Printf("[GITHUB] fork %s sudah dibuat tapi status project %s berubah", fork.FullName, p.ID)
		}
		return nil, errStatusChanged
	}

	// 4. Aktivitas & event (best-effort)
	meta := map[string]any{"action": string(action)}
	if fork != nil {
		meta["orgRepoUrl"] = fork.HTMLURL
		meta["orgRepoName"] = fork.FullName
	}
	s.recorder.record(ctx, caller, activityEntry{
		projectID: p.ID,
		action:    activityForStatus(t.To),
		from:      t.From,
		to:        t.To,
		metadata:  meta,
	})
	if fork != nil {
		s.recorder.record(ctx, caller, activityEntry{
			projectID: p.ID,
			action:    model.ActivityForked,
			metadata:  map[string]any{"orgRepoUrl": fork.HTMLURL, "orgRepoName": fork.FullName},
		})
	}

	// 5. Data terbaru dari database
	return s.Get(ctx, caller, p.ID)
}

func (s *projectService) ForkToOrg(ctx context.Context, caller Caller, id uuid.UUID, addCollaborators bool) (*ProjectDetail, error) {
	if !caller.IsAdmin() {
		return nil, apperror.NewForbidden("hanya admin yang dapat melakukan fork ke organisasi")
	}
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != model.StatusApproved {
		return nil, &apperror.InvalidTransitionError{
			From:   string(p.Status),
			Action: string(workflow.EffectForkToOrg),
			Role:   string(caller.Role),
			Reason: "project belum disetujui",
		}
	}
	if p.OrgRepoURL != nil && *p.OrgRepoURL != "" {
		return nil, apperror.NewConflict("project sudah memiliki repository organisasi")
	}
	if p.GithubRepoURL == nil || strings.TrimSpace(*p.GithubRepoURL) == "" {
		return nil, apperror.NewValidationError("project belum memiliki repository",
			apperror.FieldError{Field: "githubRepoUrl", Error: "wajib diisi sebelum fork"})
	}

	fork, err := s.forkRepo(ctx, p, addCollaborators)
	if err != nil {
		return nil, err
	}
	ok, err := s.projectRepo.SetOrgRepo(ctx, p.ID, fork.HTMLURL, fork.FullName, nowFunc())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflict("repository organisasi sudah diisi oleh request lain")
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: p.ID,
		action:    model.ActivityForked,
		metadata:  map[string]any{"orgRepoUrl": fork.HTMLURL, "orgRepoName": fork.FullName},
	})
	return s.Get(ctx, caller, p.ID)
}

func (s *projectService) ValidateRepository(ctx context.Context, rawURL string) (*interfaces.RepoInfo, error) {
	owner, repo, err := ghclient.ParseRepoURL(rawURL)
	if err != nil {
		return nil, invalidRepoURL()
	}
	if s.github == nil {
		return nil, &apperror.ExternalServiceError{Service: "github", Message: "integrasi GitHub belum dikonfigurasi"}
	}
	info, err := s.github.GetRepo(ctx, owner, repo)
	if err != nil {
		return nil, externalGithub(err)
	}
	return info, nil
}

// forkRepo fork repo mahasiswa ke organisasi dengan nama <repo>-<tahun>.
func (s *projectService) forkRepo(ctx context.Context, p *model.Project, addCollaborators bool) (*interfaces.ForkResult, error) {
	if s.github == nil {
		return nil, &apperror.ExternalServiceError{Service: "github", Message: "integrasi GitHub belum dikonfigurasi"}
	}
	owner, repo, err := ghclient.ParseRepoURL(*p.GithubRepoURL)
	if err != nil {
		return nil, invalidRepoURL()
	}

	res, err := s.github.ForkToOrg(ctx, interfaces.ForkRequest{
		Owner: owner,
		Repo:  repo,
		Name:  forkName(repo, p.TahunAkademik),
	})
	if err != nil {
		return nil, externalGithub(err)
	}

	if addCollaborators {
		org, name, ok := strings.Cut(res.FullName, "/")
		if !ok {
			org, name = s.github.Org(), res.Name
		}
		for _, username := range teamGithubUsernames(p) {
			if err := s.github.AddCollaborator(ctx, org, name, username); err != nil {
				log.Printf("[GITHUB] gagal menambah collaborator %s ke %s: %v", username, res.FullName, err)
			}
		}
	}
	return res, nil
}

// forkName "app" + "2025/2026" => "app-2025".
func forkName(repo, tahunAkademik string) string {
	year, _, _ := strings.Cut(strings.TrimSpace(tahunAkademik), "/")
	if year == "" {
		return repo
	}
	return fmt.Sprintf("%s-%s", repo, year)
}

// teamGithubUsernames username GitHub ketua dan anggota (tanpa duplikat).
func teamGithubUsernames(p *model.Project) []string {
	seen := map[string]bool{}
	var out []string
	add := func(u *model.User) {
		if u == nil || u.GithubUsername == nil {
			return
		}
		name := strings.TrimSpace(*u.GithubUsername)
		if name == "" || seen[strings.ToLower(name)] {
			return
		}
		seen[strings.ToLower(name)] = true
		out = append(out, name)
	}
	add(p.Mahasiswa)
	for _, m := range p.Members {
		add(m.User)
	}
	return out
}

// normalizeRepoURL mengembalikan URL kanonik dan "owner/repo".
func normalizeRepoURL(raw string) (url, name string, err error) {
	owner, repo, err := ghclient.ParseRepoURL(raw)
	if err != nil {
		return "", "", invalidRepoURL()
	}
	name = owner + "/" + repo
	return "https://github.com/" + name, name, nil
}

func invalidRepoURL() error {
	return apperror.NewValidationError("url repository tidak valid",
		apperror.FieldError{Field: "githubRepoUrl", Error: "harus berupa https://github.com/owner/repo"})
}

func externalGithub(err error) error {
	var ext *apperror.ExternalServiceError
	if errors.As(err, &ext) {
		return ext
	}
	return &apperror.ExternalServiceError{Service: "github", Message: err.Error(), Err: err}
}
