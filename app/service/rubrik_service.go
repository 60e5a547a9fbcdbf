package service

import (
	"context"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"

	"github.com/google/uuid"
)

// RubrikInput body create/update rubrik.
type RubrikInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Kategori    string `json:"kategori" binding:"required"`
	BobotMax    int    `json:"bobotMax" binding:"required,min=1,max=100"`
	Urutan      int    `json:"urutan" binding:"min=0"`
	IsActive    *bool  `json:"isActive"`
}

// RubrikSummary total bobot rubrik aktif; idealnya 100 tapi tidak memblokir simpan.
type RubrikSummary struct {
	TotalBobotActive int  `json:"totalBobotActive"`
	ActiveCount      int  `json:"activeCount"`
	IsBalanced       bool `json:"isBalanced"`
	Deviation        int  `json:"deviation"`
}

// IdealTotalBobot jumlah bobot rubrik aktif yang diharapkan.
const IdealTotalBobot = 100

type RubrikService interface {
	List(ctx context.Context, activeOnly bool) ([]model.Rubrik, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Rubrik, error)
	Create(ctx context.Context, in RubrikInput) (*model.Rubrik, error)
	Update(ctx context.Context, id uuid.UUID, in RubrikInput) (*model.Rubrik, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (*RubrikSummary, error)
}

type rubrikService struct {
	rubrikRepo repository.RubrikRepository
}

func NewRubrikService(rubrikRepo repository.RubrikRepository) RubrikService {
	return &rubrikService{rubrikRepo: rubrikRepo}
}

func validateRubrik(in RubrikInput) error {
	var fields []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Error: "wajib diisi"})
	}
	if strings.TrimSpace(in.Kategori) == "" {
		fields = append(fields, apperror.FieldError{Field: "kategori", Error: "wajib diisi"})
	}
	if in.BobotMax < 1 || in.BobotMax > 100 {
		fields = append(fields, apperror.FieldError{Field: "bobotMax", Error: "harus di antara 1 dan 100"})
	}
	if in.Urutan < 0 {
		fields = append(fields, apperror.FieldError{Field: "urutan", Error: "tidak boleh negatif"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError("data rubrik tidak valid", fields...)
	}
	return nil
}

func (s *rubrikService) List(ctx context.Context, activeOnly bool) ([]model.Rubrik, error) {
	return s.rubrikRepo.List(ctx, activeOnly)
}

func (s *rubrikService) Get(ctx context.Context, id uuid.UUID) (*model.Rubrik, error) {
	return s.rubrikRepo.FindByID(ctx, id)
}

func (s *rubrikService) Create(ctx context.Context, in RubrikInput) (*model.Rubrik, error) {
	if err := validateRubrik(in); err != nil {
		return nil, err
	}
	r := &model.Rubrik{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Kategori:    strings.TrimSpace(in.Kategori),
		BobotMax:    in.BobotMax,
		Urutan:      in.Urutan,
		IsActive:    in.IsActive == nil || *in.IsActive,
	}
	if err := s.rubrikRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rubrikService) Update(ctx context.Context, id uuid.UUID, in RubrikInput) (*model.Rubrik, error) {
	if err := validateRubrik(in); err != nil {
		return nil, err
	}
	r, err := s.rubrikRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Name = strings.TrimSpace(in.Name)
	r.Description = in.Description
	r.Kategori = strings.TrimSpace(in.Kategori)
	r.BobotMax = in.BobotMax
	r.Urutan = in.Urutan
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	if err := s.rubrikRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete rubrik yang sudah dipakai menilai hanya boleh dinonaktifkan.
func (s *rubrikService) Delete(ctx context.Context, id uuid.UUID) error {
	used, err := s.rubrikRepo.IsUsed(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperror.NewConflict("rubrik sudah dipakai dalam penilaian, nonaktifkan saja")
	}
	return s.rubrikRepo.Delete(ctx, id)
}

func (s *rubrikService) Summary(ctx context.Context) (*RubrikSummary, error) {
	active, err := s.rubrikRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return summarizeRubriks(active), nil
}

func summarizeRubriks(active []model.Rubrik) *RubrikSummary {
	sum := &RubrikSummary{ActiveCount: len(active)}
	for _, r := range active {
		sum.TotalBobotActive += r.BobotMax
	}
	sum.Deviation = sum.TotalBobotActive - IdealTotalBobot
	sum.IsBalanced = sum.Deviation == 0
	return sum
}
