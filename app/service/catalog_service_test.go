package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository/mocks"
)

func TestValidateSemester(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 5, 0)
	tests := []struct {
		name  string
		in    SemesterInput
		field string
	}{
		{"valid", SemesterInput{Name: "Ganjil", TahunAkademik: "2025/2026", StartDate: start, EndDate: end}, ""},
		{"format salah", SemesterInput{Name: "Ganjil", TahunAkademik: "2025-2026", StartDate: start, EndDate: end}, "tahunAkademik"},
		{"tahun tidak berurutan", SemesterInput{Name: "Ganjil", TahunAkademik: "2025/2027", StartDate: start, EndDate: end}, "tahunAkademik"},
		{"tanggal terbalik", SemesterInput{Name: "Ganjil", TahunAkademik: "2025/2026", StartDate: end, EndDate: start}, "endDate"},
		{"nama kosong", SemesterInput{TahunAkademik: "2025/2026", StartDate: start, EndDate: end}, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSemester(tt.in)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Fields[0].Field)
		})
	}
}

func TestSemester_ActiveAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSemesterRepository(ctrl)
	svc := NewSemesterService(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindActive(gomock.Any()).Return(nil, nil)
	_, err := svc.Active(ctx)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	repo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Semester{ID: id, IsActive: true}, nil)
	err = svc.Delete(ctx, id)
	assert.IsType(t, &apperror.ConflictError{}, err)

	repo.EXPECT().Activate(gomock.Any(), id).Return(nil)
	repo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Semester{ID: id, IsActive: true}, nil)
	sem, err := svc.Activate(ctx, id)
	require.NoError(t, err)
	assert.True(t, sem.IsActive)
}

func TestRubrikSummary(t *testing.T) {
	tests := []struct {
		name      string
		bobot     []int
		balanced  bool
		deviation int
	}{
		{"seimbang", []int{40, 30, 30}, true, 0},
		{"kurang", []int{40, 30}, false, -30},
		{"lebih", []int{60, 60}, false, 20},
		{"kosong", nil, false, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rubriks []model.Rubrik
			for _, b := range tt.bobot {
				rubriks = append(rubriks, model.Rubrik{BobotMax: b, IsActive: true})
			}
			sum := summarizeRubriks(rubriks)
			assert.Equal(t, tt.balanced, sum.IsBalanced)
			assert.Equal(t, tt.deviation, sum.Deviation)
			assert.Equal(t, len(tt.bobot), sum.ActiveCount)
		})
	}
}

func TestRubrikDelete_Used(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRubrikRepository(ctrl)
	id := uuid.New()
	repo.EXPECT().IsUsed(gomock.Any(), id).Return(true, nil)

	err := NewRubrikService(repo).Delete(context.Background(), id)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestUserSetActive_NotSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUserService(mocks.NewMockUserRepository(ctrl))

	_, err := svc.SetActive(context.Background(), admin, adminID, false)
	assert.IsType(t, &apperror.ValidationError{}, err)
}
