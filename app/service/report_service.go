package service

import (
	"context"

	"capstone-backend/app/model"
	"capstone-backend/app/repository"

	"github.com/google/uuid"
)

// Statistics ringkasan project per status (Postgres) dan statistik aktivitas (MongoDB).
type Statistics struct {
	TotalProjects int64                         `json:"totalProjects"`
	ByStatus      map[model.ProjectStatus]int64 `json:"byStatus"`
	Activity      *repository.ActivityReport    `json:"activity"`
}

// ReportService statistik dan timeline aktivitas project.
type ReportService interface {
	// Statistics:
	// - Admin: semua project
	// - Dosen penguji: project yang ditugaskan
	// - Mahasiswa: project timnya sendiri
	Statistics(ctx context.Context, caller Caller) (*Statistics, error)

	// Activities timeline satu project, terbaru lebih dulu.
	Activities(ctx context.Context, caller Caller, projectID uuid.UUID, limit int64) ([]model.ProjectActivity, error)
}

// reportService implementasi konkrit ReportService.
type reportService struct {
	projectRepo  repository.ProjectRepository
	reportRepo   repository.ReportRepository
	activityRepo repository.ActivityRepository
}

// NewReportService membuat instance baru reportService.
func NewReportService(projectRepo repository.ProjectRepository, reportRepo repository.ReportRepository, activityRepo repository.ActivityRepository) ReportService {
	return &reportService{
		projectRepo:  projectRepo,
		reportRepo:   reportRepo,
		activityRepo: activityRepo,
	}
}

// scope filter project sesuai role pemanggil.
func scope(caller Caller) repository.ProjectFilter {
	switch caller.Role {
	case model.RoleMahasiswa:
		return repository.ProjectFilter{MemberID: caller.UserID}
	case model.RoleDosenPenguji:
		return repository.ProjectFilter{DosenID: caller.UserID}
	}
	return repository.ProjectFilter{}
}

func (s *reportService) Statistics(ctx context.Context, caller Caller) (*Statistics, error) {
	filter := scope(caller)

	byStatus, err := s.projectRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	stats := &Statistics{ByStatus: byStatus}
	for _, n := range byStatus {
		stats.TotalProjects += n
	}

	// admin: filter Mongo kosong => semua aktivitas
	reportFilter := repository.ReportFilter{}
	if !caller.IsAdmin() {
		ids, err := s.projectRepo.ProjectIDs(ctx, filter)
		if err != nil {
			return nil, err
		}
		reportFilter.ProjectIDs = make([]string, 0, len(ids))
		for _, id := range ids {
			reportFilter.ProjectIDs = append(reportFilter.ProjectIDs, id.String())
		}
	}

	activity, err := s.reportRepo.GetActivityStatistics(ctx, reportFilter)
	if err != nil {
		return nil, err
	}
	stats.Activity = activity
	return stats, nil
}

func (s *reportService) Activities(ctx context.Context, caller Caller, projectID uuid.UUID, limit int64) ([]model.ProjectActivity, error) {
	if _, err := loadVisibleProject(ctx, s.projectRepo, caller, projectID); err != nil {
		return nil, err
	}
	return s.activityRepo.ListByProject(ctx, projectID.String(), limit)
}
