package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository/mocks"
)

func newRequirementsFixture(t *testing.T) (*mocks.MockProjectRepository, *mocks.MockRequirementsRepository, RequirementsService) {
	ctrl := gomock.NewController(t)
	projects := mocks.NewMockProjectRepository(ctrl)
	reqs := mocks.NewMockRequirementsRepository(ctrl)
	return projects, reqs, NewRequirementsService(projects, reqs, nil)
}

func TestRequirementsGet_EmptyRecord(t *testing.T) {
	projects, reqs, svc := newRequirementsFixture(t)
	projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
	reqs.EXPECT().FindByProjectID(gomock.Any(), projectID).Return(nil, nil)

	view, err := svc.Get(context.Background(), dosen, projectID)
	require.NoError(t, err)
	assert.Equal(t, projectID, view.Requirements.ProjectID)
	assert.Equal(t, 0, view.Completion.OverallPercent)
	assert.Equal(t, 9, view.Completion.TotalCount)
}

func TestRequirementsSave_PartialPatch(t *testing.T) {
	projects, reqs, svc := newRequirementsFixture(t)

	existing := &model.ProjectRequirements{
		ProjectID:           projectID,
		IntegrasiMatakuliah: strPtr("Basis Data"),
		Metodologi:          strPtr("Scrum"),
		RuangLingkup:        strPtr("Web"),
	}
	projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
	reqs.EXPECT().FindByProjectID(gomock.Any(), projectID).Return(existing, nil)
	reqs.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *model.ProjectRequirements) error {
		// metodologi dikosongkan, fiturUtama diisi, field lain tetap
		assert.Equal(t, "Basis Data", *r.IntegrasiMatakuliah)
		assert.Nil(t, r.Metodologi)
		assert.Equal(t, "Login", *r.FiturUtama)
		assert.Equal(t, model.ProductionOnline, r.ProductionURLStatus)
		assert.Equal(t, 33, r.CompletionPercent)
		assert.Equal(t, leaderID, r.UpdatedBy)
		return nil
	})

	view, err := svc.Save(context.Background(), leader, projectID, RequirementsPatch{
		"metodologi":          nil,
		"fiturUtama":          strPtr("  Login "),
		"productionUrl":       strPtr("https://app.example.com"),
		"productionUrlStatus": strPtr("ONLINE"),
	})
	require.NoError(t, err)
	assert.Equal(t, 33, view.Completion.OverallPercent)
	assert.Equal(t, 3, view.Completion.FilledCount)
}

func TestRequirementsSave_Rules(t *testing.T) {
	tests := []struct {
		name    string
		caller  Caller
		patch   RequirementsPatch
		wantErr interface{}
	}{
		{"anggota bukan ketua", member, RequirementsPatch{"metodologi": strPtr("x")}, &apperror.ForbiddenError{}},
		{"dosen", dosen, RequirementsPatch{"metodologi": strPtr("x")}, &apperror.ForbiddenError{}},
		{"field tidak dikenal", leader, RequirementsPatch{"judul": strPtr("x")}, &apperror.ValidationError{}},
		{"status url salah", leader, RequirementsPatch{"productionUrlStatus": strPtr("UP")}, &apperror.ValidationError{}},
		{"url production bukan http", leader, RequirementsPatch{"productionUrl": strPtr("ftp://x")}, &apperror.ValidationError{}},
		{"url production tanpa host", leader, RequirementsPatch{"productionUrl": strPtr("https://")}, &apperror.ValidationError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, _, svc := newRequirementsFixture(t)
			projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)

			_, err := svc.Save(context.Background(), tt.caller, projectID, tt.patch)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}
