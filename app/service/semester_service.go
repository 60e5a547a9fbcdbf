package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"

	"github.com/google/uuid"
)

// SemesterInput body create/update semester.
type SemesterInput struct {
	Name          string    `json:"name" binding:"required"`
	TahunAkademik string    `json:"tahunAkademik" binding:"required"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" binding:"required"`
}

type SemesterService interface {
	List(ctx context.Context) ([]model.Semester, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Semester, error)
	Active(ctx context.Context) (*model.Semester, error)
	Create(ctx context.Context, in SemesterInput) (*model.Semester, error)
	Update(ctx context.Context, id uuid.UUID, in SemesterInput) (*model.Semester, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*model.Semester, error)
}

type semesterService struct {
	semesterRepo repository.SemesterRepository
}

func NewSemesterService(semesterRepo repository.SemesterRepository) SemesterService {
	return &semesterService{semesterRepo: semesterRepo}
}

var tahunAkademikPattern = regexp.MustCompile(`^(\d{4})/(\d{4})$`)

// validateSemester: tahun akademik "YYYY/YYYY" dengan tahun kedua = tahun pertama + 1.
func validateSemester(in SemesterInput) error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Error: "wajib diisi"})
	}
	if m := tahunAkademikPattern.FindStringSubmatch(in.TahunAkademik); m == nil {
		fields = append(fields, apperror.FieldError{Field: "tahunAkademik", Error: "format harus YYYY/YYYY"})
	} else {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		if second != first+1 {
			fields = append(fields, apperror.FieldError{Field: "tahunAkademik", Error: fmt.Sprintf("tahun kedua harus %d", first+1)})
		}
	}
	if in.EndDate.Before(in.StartDate) {
		fields = append(fields, apperror.FieldError{Field: "endDate", Error: "tidak boleh sebelum startDate"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError("data semester tidak valid", fields...)
	}
	return nil
}

func (s *semesterService) List(ctx context.Context) ([]model.Semester, error) {
	return s.semesterRepo.List(ctx)
}

func (s *semesterService) Get(ctx context.Context, id uuid.UUID) (*model.Semester, error) {
	return s.semesterRepo.FindByID(ctx, id)
}

// Active mengembalikan NotFound bila belum ada semester aktif.
func (s *semesterService) Active(ctx context.Context) (*model.Semester, error) {
	sem, err := s.semesterRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if sem == nil {
		return nil, apperror.NewNotFound("semester aktif")
	}
	return sem, nil
}

func (s *semesterService) Create(ctx context.Context, in SemesterInput) (*model.Semester, error) {
	if err := validateSemester(in); err != nil {
		return nil, err
	}
	sem := &model.Semester{
		Name:          strings.TrimSpace(in.Name),
		TahunAkademik: in.TahunAkademik,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
	}
	if err := s.semesterRepo.Create(ctx, sem); err != nil {
		return nil, err
	}
	return sem, nil
}

func (s *semesterService) Update(ctx context.Context, id uuid.UUID, in SemesterInput) (*model.Semester, error) {
	if err := validateSemester(in); err != nil {
		return nil, err
	}
	sem, err := s.semesterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sem.Name = strings.TrimSpace(in.Name)
	sem.TahunAkademik = in.TahunAkademik
	sem.StartDate = in.StartDate
	sem.EndDate = in.EndDate
	if err := s.semesterRepo.Update(ctx, sem); err != nil {
		return nil, err
	}
	return sem, nil
}

// Delete semester aktif tidak boleh dihapus.
func (s *semesterService) Delete(ctx context.Context, id uuid.UUID) error {
	sem, err := s.semesterRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sem.IsActive {
		return apperror.NewConflict("semester aktif tidak dapat dihapus, aktifkan semester lain terlebih dahulu")
	}
	return s.semesterRepo.Delete(ctx, id)
}

func (s *semesterService) Activate(ctx context.Context, id uuid.UUID) (*model.Semester, error) {
	if err := s.semesterRepo.Activate(ctx, id); err != nil {
		return nil, err
	}
	return s.semesterRepo.FindByID(ctx, id)
}
