package service

import (
	"context"
	"sort"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/workflow"
	"capstone-backend/utils"

	"github.com/google/uuid"
)

// RequirementsPatch perubahan parsial requirements. Key yang tidak ada di map
// tidak disentuh; nilai nil atau string kosong mengosongkan field.
type RequirementsPatch map[string]*string

// RequirementsView record requirements (kosong bila belum ada) beserta kelengkapannya.
type RequirementsView struct {
	Requirements *model.ProjectRequirements `json:"requirements"`
	Completion   workflow.Completion        `json:"completion"`
}

type RequirementsService interface {
	Get(ctx context.Context, caller Caller, projectID uuid.UUID) (*RequirementsView, error)
	Save(ctx context.Context, caller Caller, projectID uuid.UUID, patch RequirementsPatch) (*RequirementsView, error)
}

type requirementsService struct {
	projectRepo      repository.ProjectRepository
	requirementsRepo repository.RequirementsRepository
	recorder         *ActivityRecorder
}

func NewRequirementsService(projectRepo repository.ProjectRepository, requirementsRepo repository.RequirementsRepository, recorder *ActivityRecorder) RequirementsService {
	return &requirementsService{
		projectRepo:      projectRepo,
		requirementsRepo: requirementsRepo,
		recorder:         recorder,
	}
}

// requirementSetters satu setter per key FieldSpec (kecuali productionUrlStatus).
var requirementSetters = map[string]func(r *model.ProjectRequirements, v *string){
	"integrasiMatakuliah": func(r *model.ProjectRequirements, v *string) { r.IntegrasiMatakuliah = v },
	"metodologi":          func(r *model.ProjectRequirements, v *string) { r.Metodologi = v },
	"ruangLingkup":        func(r *model.ProjectRequirements, v *string) { r.RuangLingkup = v },
	"sumberDayaBatasan":   func(r *model.ProjectRequirements, v *string) { r.SumberDayaBatasan = v },
	"fiturUtama":          func(r *model.ProjectRequirements, v *string) { r.FiturUtama = v },
	"analisisTemuan":      func(r *model.ProjectRequirements, v *string) { r.AnalisisTemuan = v },
	"presentasiUjian":     func(r *model.ProjectRequirements, v *string) { r.PresentasiUjian = v },
	"stakeholder":         func(r *model.ProjectRequirements, v *string) { r.Stakeholder = v },
	"kepatuhanEtika":      func(r *model.ProjectRequirements, v *string) { r.KepatuhanEtika = v },
	"productionUrl":       func(r *model.ProjectRequirements, v *string) { r.ProductionURL = v },
	"testingUsername":     func(r *model.ProjectRequirements, v *string) { r.TestingUsername = v },
	"testingPassword":     func(r *model.ProjectRequirements, v *string) { r.TestingPassword = v },
	"testingNotes":        func(r *model.ProjectRequirements, v *string) { r.TestingNotes = v },
}

func (s *requirementsService) Get(ctx context.Context, caller Caller, projectID uuid.UUID) (*RequirementsView, error) {
	if _, err := loadVisibleProject(ctx, s.projectRepo, caller, projectID); err != nil {
		return nil, err
	}
	req, err := s.requirementsRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &model.ProjectRequirements{ProjectID: projectID, ProductionURLStatus: model.ProductionUnknown}
	}
	return &RequirementsView{Requirements: req, Completion: workflow.ComputeRequirements(req)}, nil
}

// Save upsert oleh ketua tim lalu menyimpan ulang completionPercent.
func (s *requirementsService) Save(ctx context.Context, caller Caller, projectID uuid.UUID, patch RequirementsPatch) (*RequirementsView, error) {
	if _, err := loadLeaderProject(ctx, s.projectRepo, caller, projectID); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	req, err := s.requirementsRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &model.ProjectRequirements{ProjectID: projectID, ProductionURLStatus: model.ProductionUnknown}
	}
	before := workflow.ComputeRequirements(req).OverallPercent

	for key, v := range patch {
		if key == "productionUrlStatus" {
			req.ProductionURLStatus = model.ProductionUnknown
			if v != nil && *v != "" {
				req.ProductionURLStatus = model.ProductionURLStatus(*v)
			}
			continue
		}
		requirementSetters[key](req, cleanValue(v))
	}

	completion := workflow.ComputeRequirements(req)
	req.CompletionPercent = completion.OverallPercent
	req.UpdatedBy = caller.UserID
	if err := s.requirementsRepo.Upsert(ctx, req); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: projectID,
		action:    model.ActivityRequirementsUpdated,
		metadata: map[string]any{
			"fields":            patchKeys(patch),
			"percentBefore":     before,
			"completionPercent": completion.OverallPercent,
		},
	})
	return &RequirementsView{Requirements: req, Completion: completion}, nil
}

func validatePatch(patch RequirementsPatch) error {
	var fields []apperror.FieldError
	for _, key := range patchKeys(patch) {
		v := patch[key]
		switch key {
		case "productionUrlStatus":
			if v != nil && *v != "" {
				switch model.ProductionURLStatus(*v) {
				case model.ProductionUnknown, model.ProductionOnline, model.ProductionOffline:
				default:
					fields = append(fields, apperror.FieldError{Field: key, Error: "harus UNKNOWN, ONLINE, atau OFFLINE"})
				}
			}
			continue
		case "productionUrl":
			if workflow.IsFilled(v) && !utils.IsHTTPURL(*v) {
				fields = append(fields, apperror.FieldError{Field: key, Error: "harus berupa URL http/https"})
			}
		}
		if _, ok := requirementSetters[key]; !ok {
			fields = append(fields, apperror.FieldError{Field: key, Error: "field tidak dikenal"})
		}
	}
	if len(fields) > 0 {
		return apperror.NewValidationError("data requirements tidak valid", fields...)
	}
	return nil
}

// cleanValue string kosong disimpan sebagai NULL.
func cleanValue(v *string) *string {
	if !workflow.IsFilled(v) {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	return &trimmed
}

func patchKeys(patch RequirementsPatch) []string {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
