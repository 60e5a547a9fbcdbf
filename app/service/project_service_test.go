package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"capstone-backend/app/apperror"
	"capstone-backend/app/interfaces"
	imocks "capstone-backend/app/interfaces/mocks"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/repository/mocks"
	"capstone-backend/app/workflow"
)

type projectFixture struct {
	projects   *mocks.MockProjectRepository
	semesters  *mocks.MockSemesterRepository
	documents  *mocks.MockDocumentRepository
	reviews    *mocks.MockReviewRepository
	activities *mocks.MockActivityRepository
	github     *imocks.MockGithubClient
	uploader   *imocks.MockUploader
	producer   *imocks.MockProducerHandler
	svc        ProjectService
}

func newProjectFixture(t *testing.T) *projectFixture {
	ctrl := gomock.NewController(t)
	f := &projectFixture{
		projects:   mocks.NewMockProjectRepository(ctrl),
		semesters:  mocks.NewMockSemesterRepository(ctrl),
		documents:  mocks.NewMockDocumentRepository(ctrl),
		reviews:    mocks.NewMockReviewRepository(ctrl),
		activities: mocks.NewMockActivityRepository(ctrl),
		github:     imocks.NewMockGithubClient(ctrl),
		uploader:   imocks.NewMockUploader(ctrl),
		producer:   imocks.NewMockProducerHandler(ctrl),
	}
	recorder := NewActivityRecorder(f.activities, f.producer)
	// publish event async, tunggu sebelum gomock memeriksa ekspektasi
	t.Cleanup(recorder.Wait)
	f.svc = NewProjectService(f.projects, f.semesters, f.documents, f.reviews, f.github, f.uploader, recorder)
	return f
}

// expectDetail dokumen dan review yang dimuat untuk response detail.
func (f *projectFixture) expectDetail() {
	f.documents.EXPECT().ListByProject(gomock.Any(), projectID, model.DocumentKind("")).Return([]model.ProjectDocument{}, nil)
	f.reviews.EXPECT().ListByProject(gomock.Any(), projectID).Return([]model.Review{}, nil)
}

// expectSideEffects n aktivitas Mongo dan n event Kafka.
func (f *projectFixture) expectSideEffects(n int) {
	f.activities.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(n)
	f.producer.EXPECT().PublishMessage(gomock.Any(), []byte(projectID.String()), gomock.Any()).Return(nil).Times(n)
}

func TestTransition_ApproveWithFork(t *testing.T) {
	freezeTime(t)
	f := newProjectFixture(t)
	ctx := context.Background()

	approved := sampleProject(model.StatusApproved)
	approved.OrgRepoURL = strPtr("https://github.com/capstone-org/app-2025")
	approved.OrgRepoName = strPtr("capstone-org/app-2025")
	approved.ForkedAt = &fixedNow

	gomock.InOrder(
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusInReview), nil),
		f.github.EXPECT().ForkToOrg(gomock.Any(), interfaces.ForkRequest{Owner: "alice", Repo: "app", Name: "app-2025"}).
			Return(&interfaces.ForkResult{
				Name:     "app-2025",
				FullName: "capstone-org/app-2025",
				HTMLURL:  "https://github.com/capstone-org/app-2025",
			}, nil),
		f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusInReview, model.StatusApproved, repository.StatusChange{
			OrgRepoURL:  strPtr("https://github.com/capstone-org/app-2025"),
			OrgRepoName: strPtr("capstone-org/app-2025"),
			ForkedAt:    &fixedNow,
		}).Return(true, nil),
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(approved, nil),
	)
	f.expectSideEffects(2) // approved + forked
	f.expectDetail()

	got, err := f.svc.Transition(ctx, admin, projectID, workflow.ActionApprove, TransitionInput{ForkToOrg: true})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)
	assert.Equal(t, "capstone-org/app-2025", *got.OrgRepoName)
	assert.True(t, got.StatusInfo.Terminal)
	assert.Empty(t, got.AllowedActions)
}

func TestTransition_ApproveWithForkAndCollaborators(t *testing.T) {
	freezeTime(t)
	f := newProjectFixture(t)

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusSubmitted), nil)
	f.github.EXPECT().ForkToOrg(gomock.Any(), gomock.Any()).Return(&interfaces.ForkResult{
		Name: "app-2025", FullName: "capstone-org/app-2025", HTMLURL: "https://github.com/capstone-org/app-2025",
	}, nil)
	f.github.EXPECT().AddCollaborator(gomock.Any(), "capstone-org", "app-2025", "alice").Return(nil)
	// gagal menambah collaborator tidak menggagalkan approve
	f.github.EXPECT().AddCollaborator(gomock.Any(), "capstone-org", "app-2025", "bob").Return(errors.New("boom"))
	f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusSubmitted, model.StatusApproved, gomock.Any()).Return(true, nil)
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusApproved), nil)
	f.expectSideEffects(2)
	f.expectDetail()

	_, err := f.svc.Transition(context.Background(), admin, projectID, workflow.ActionApprove,
		TransitionInput{ForkToOrg: true, AddCollaborators: true})
	require.NoError(t, err)
}

func TestTransition_ForkFailureKeepsStatus(t *testing.T) {
	f := newProjectFixture(t)

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusInReview), nil)
	f.github.EXPECT().ForkToOrg(gomock.Any(), gomock.Any()).Return(nil, errors.New("403 Resource not accessible by integration"))
	// UpdateStatus, aktivitas, dan event tidak boleh terpanggil

	_, err := f.svc.Transition(context.Background(), admin, projectID, workflow.ActionApprove, TransitionInput{ForkToOrg: true})
	require.Error(t, err)

	var ext *apperror.ExternalServiceError
	require.ErrorAs(t, err, &ext)
	assert.Equal(t, "github", ext.Service)
	assert.Contains(t, ext.Message, "403")
	assert.Equal(t, http.StatusBadGateway, apperror.HTTPStatus(err))
}

func TestTransition_ApproveWithoutRepoSkipsFork(t *testing.T) {
	f := newProjectFixture(t)
	p := sampleProject(model.StatusInReview)
	p.GithubRepoURL = nil

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(p, nil)
	f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusInReview, model.StatusApproved, repository.StatusChange{}).Return(true, nil)
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusApproved), nil)
	f.expectSideEffects(1)
	f.expectDetail()

	_, err := f.svc.Transition(context.Background(), admin, projectID, workflow.ActionApprove, TransitionInput{ForkToOrg: true})
	require.NoError(t, err)
}

func TestTransition_SubmitSetsSubmittedAt(t *testing.T) {
	freezeTime(t)
	f := newProjectFixture(t)

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
	f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusDraft, model.StatusSubmitted,
		repository.StatusChange{SubmittedAt: &fixedNow}).Return(true, nil)
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusSubmitted), nil)
	f.expectSideEffects(1)
	f.expectDetail()

	got, err := f.svc.Transition(context.Background(), leader, projectID, workflow.ActionSubmit, TransitionInput{})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSubmitted, got.Status)
}

func TestTransition_ResubmitKeepsSubmittedAt(t *testing.T) {
	freezeTime(t)
	f := newProjectFixture(t)

	first := fixedNow.AddDate(0, -1, 0)
	p := sampleProject(model.StatusRevisionNeeded)
	p.SubmittedAt = &first

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(p, nil)
	f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusRevisionNeeded, model.StatusSubmitted,
		repository.StatusChange{}).Return(true, nil)
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusSubmitted), nil)
	f.expectSideEffects(1)
	f.expectDetail()

	_, err := f.svc.Transition(context.Background(), leader, projectID, workflow.ActionSubmit, TransitionInput{})
	require.NoError(t, err)
}

func TestTransition_LostCompareAndSwap(t *testing.T) {
	f := newProjectFixture(t)

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusSubmitted), nil)
	f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusSubmitted, model.StatusRejected, gomock.Any()).Return(false, nil)

	_, err := f.svc.Transition(context.Background(), admin, projectID, workflow.ActionReject, TransitionInput{})
	var conflict *apperror.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestTransition_RepeatIsNoOp(t *testing.T) {
	f := newProjectFixture(t)
	p := sampleProject(model.StatusApproved)

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(p, nil)
	f.expectDetail()
	// tidak ada fork, UpdateStatus, maupun event

	got, err := f.svc.Transition(context.Background(), admin, projectID, workflow.ActionApprove, TransitionInput{ForkToOrg: true})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		caller  Caller
		status  model.ProjectStatus
		action  workflow.Action
		wantErr interface{}
	}{
		{"mahasiswa approve", leader, model.StatusInReview, workflow.ActionApprove, &apperror.InvalidTransitionError{}},
		{"anggota bukan ketua submit", member, model.StatusDraft, workflow.ActionSubmit, &apperror.InvalidTransitionError{}},
		{"dosen approve", dosen, model.StatusInReview, workflow.ActionApprove, &apperror.InvalidTransitionError{}},
		{"start review dari draft", dosen, model.StatusDraft, workflow.ActionStartReview, &apperror.InvalidTransitionError{}},
		{"bukan anggota tim", outsider, model.StatusDraft, workflow.ActionSubmit, &apperror.NotFoundError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProjectFixture(t)
			f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(tt.status), nil)

			_, err := f.svc.Transition(context.Background(), tt.caller, projectID, tt.action, TransitionInput{})
			require.Error(t, err)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestTransition_UnassignedDosenCannotStartReview(t *testing.T) {
	f := newProjectFixture(t)
	p := sampleProject(model.StatusSubmitted)
	p.Assignments = nil

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(p, nil)

	_, err := f.svc.Transition(context.Background(), dosen, projectID, workflow.ActionStartReview, TransitionInput{})
	var nf *apperror.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestUpdate_StatusBodyRoutesToWorkflow(t *testing.T) {
	freezeTime(t)
	f := newProjectFixture(t)
	status := model.StatusInReview

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusSubmitted), nil)
	f.projects.EXPECT().UpdateStatus(gomock.Any(), projectID, model.StatusSubmitted, model.StatusInReview, repository.StatusChange{}).Return(true, nil)
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusInReview), nil)
	f.expectSideEffects(1)
	f.expectDetail()

	got, err := f.svc.Update(context.Background(), dosen, projectID, UpdateProjectInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInReview, got.Status)
	assert.ElementsMatch(t, []workflow.Action{}, got.AllowedActions)
}

func TestUpdate_EditNormalizesRepo(t *testing.T) {
	f := newProjectFixture(t)
	title := "  Judul Baru "
	repo := "github.com/Alice/new-app.git"

	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil).Times(2)
	f.projects.EXPECT().Update(gomock.Any(), projectID, repository.ProjectEdit{
		Title:          strPtr("Judul Baru"),
		GithubRepoURL:  strPtr("https://github.com/Alice/new-app"),
		GithubRepoName: strPtr("Alice/new-app"),
	}).Return(nil)
	f.expectDetail()

	_, err := f.svc.Update(context.Background(), leader, projectID, UpdateProjectInput{Title: &title, GithubRepoURL: &repo})
	require.NoError(t, err)
}

func TestUpdate_EditRules(t *testing.T) {
	bad := "https://gitlab.com/alice/app"
	empty := " "
	tests := []struct {
		name    string
		caller  Caller
		status  model.ProjectStatus
		in      UpdateProjectInput
		wantErr interface{}
	}{
		{"sudah diajukan", leader, model.StatusSubmitted, UpdateProjectInput{Title: strPtr("x")}, &apperror.ConflictError{}},
		{"anggota bukan ketua", member, model.StatusDraft, UpdateProjectInput{Title: strPtr("x")}, &apperror.ForbiddenError{}},
		{"url bukan github", leader, model.StatusDraft, UpdateProjectInput{GithubRepoURL: &bad}, &apperror.ValidationError{}},
		{"judul kosong", leader, model.StatusRevisionNeeded, UpdateProjectInput{Title: &empty}, &apperror.ValidationError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProjectFixture(t)
			f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(tt.status), nil)

			_, err := f.svc.Update(context.Background(), tt.caller, projectID, tt.in)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestCreate_DefaultsToActiveSemester(t *testing.T) {
	f := newProjectFixture(t)
	semID := uuid.New()

	f.semesters.EXPECT().FindActive(gomock.Any()).Return(&model.Semester{ID: semID, Name: "Genap", TahunAkademik: "2024/2025", IsActive: true}, nil)
	f.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *model.Project) error {
		assert.Equal(t, model.StatusDraft, p.Status)
		assert.Equal(t, "Genap", p.Semester)
		assert.Equal(t, "2024/2025", p.TahunAkademik)
		assert.Equal(t, &semID, p.SemesterID)
		assert.Equal(t, leaderID, p.MahasiswaID)
		p.ID = projectID
		return nil
	})
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
	f.expectSideEffects(1)
	f.expectDetail()

	got, err := f.svc.Create(context.Background(), leader, CreateProjectInput{Title: "Sistem Informasi Capstone"})
	require.NoError(t, err)
	assert.Equal(t, []workflow.Action{workflow.ActionSubmit}, got.AllowedActions)
	assert.Equal(t, 0, got.Completion.OverallPercent)
}

func TestCreate_OnlyMahasiswa(t *testing.T) {
	f := newProjectFixture(t)
	_, err := f.svc.Create(context.Background(), dosen, CreateProjectInput{Title: "x"})
	assert.IsType(t, &apperror.ForbiddenError{}, err)
}

func TestDelete(t *testing.T) {
	t.Run("draft milik ketua", func(t *testing.T) {
		f := newProjectFixture(t)
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
		f.documents.EXPECT().ListByProject(gomock.Any(), projectID, model.DocumentKind("")).
			Return([]model.ProjectDocument{{FileKey: "capstone/documents/a", ResourceType: "raw"}}, nil)
		f.projects.EXPECT().Delete(gomock.Any(), projectID).Return(nil)
		f.uploader.EXPECT().Delete(gomock.Any(), "capstone/documents/a", "raw").Return(errors.New("timeout"))

		require.NoError(t, f.svc.Delete(context.Background(), leader, projectID))
	})

	t.Run("bukan draft", func(t *testing.T) {
		f := newProjectFixture(t)
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusSubmitted), nil)

		err := f.svc.Delete(context.Background(), leader, projectID)
		assert.IsType(t, &apperror.ConflictError{}, err)
	})
}

func TestList_ScopedByRole(t *testing.T) {
	tests := []struct {
		caller Caller
		want   repository.ProjectFilter
	}{
		{leader, repository.ProjectFilter{MemberID: leaderID}},
		{dosen, repository.ProjectFilter{DosenID: dosenID}},
		{admin, repository.ProjectFilter{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.caller.Role), func(t *testing.T) {
			f := newProjectFixture(t)
			f.projects.EXPECT().List(gomock.Any(), tt.want).Return([]model.Project{*sampleProject(model.StatusDraft)}, int64(1), nil)

			items, total, err := f.svc.List(context.Background(), tt.caller, ListProjectsInput{})
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			assert.Equal(t, "Draft", items[0].StatusInfo.Label)
		})
	}
}

func TestForkToOrg(t *testing.T) {
	t.Run("project approved tanpa repo organisasi", func(t *testing.T) {
		freezeTime(t)
		f := newProjectFixture(t)

		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusApproved), nil)
		f.github.EXPECT().ForkToOrg(gomock.Any(), gomock.Any()).Return(&interfaces.ForkResult{
			Name: "app-2025", FullName: "capstone-org/app-2025", HTMLURL: "https://github.com/capstone-org/app-2025",
		}, nil)
		f.projects.EXPECT().SetOrgRepo(gomock.Any(), projectID, "https://github.com/capstone-org/app-2025", "capstone-org/app-2025", fixedNow).Return(true, nil)
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusApproved), nil)
		f.expectSideEffects(1)
		f.expectDetail()

		_, err := f.svc.ForkToOrg(context.Background(), admin, projectID, false)
		require.NoError(t, err)
	})

	t.Run("belum approved", func(t *testing.T) {
		f := newProjectFixture(t)
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusInReview), nil)

		_, err := f.svc.ForkToOrg(context.Background(), admin, projectID, false)
		assert.IsType(t, &apperror.InvalidTransitionError{}, err)
	})

	t.Run("sudah punya repo organisasi", func(t *testing.T) {
		f := newProjectFixture(t)
		p := sampleProject(model.StatusApproved)
		p.OrgRepoURL = strPtr("https://github.com/capstone-org/app-2025")
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(p, nil)

		_, err := f.svc.ForkToOrg(context.Background(), admin, projectID, false)
		assert.IsType(t, &apperror.ConflictError{}, err)
	})
}

func TestValidateRepository(t *testing.T) {
	f := newProjectFixture(t)
	f.github.EXPECT().GetRepo(gomock.Any(), "alice", "app").Return(&interfaces.RepoInfo{FullName: "alice/app"}, nil)

	info, err := f.svc.ValidateRepository(context.Background(), "https://github.com/alice/app/tree/main")
	require.NoError(t, err)
	assert.Equal(t, "alice/app", info.FullName)

	_, err = f.svc.ValidateRepository(context.Background(), "not a url")
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestForkName(t *testing.T) {
	assert.Equal(t, "app-2025", forkName("app", "2025/2026"))
	assert.Equal(t, "app", forkName("app", ""))
}
