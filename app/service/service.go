package service

import (
	"context"
	"time"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/workflow"

	"github.com/google/uuid"
)

var nowFunc = time.Now // mockable

// Caller identitas pemanggil dari token JWT.
type Caller struct {
	UserID uuid.UUID
	Role   model.Role
}

func (c Caller) IsAdmin() bool     { return c.Role == model.RoleAdmin }
func (c Caller) IsDosen() bool     { return c.Role == model.RoleDosenPenguji }
func (c Caller) IsMahasiswa() bool { return c.Role == model.RoleMahasiswa }

// canView: admin semua project, mahasiswa hanya tim sendiri, dosen hanya yang ditugaskan.
func canView(c Caller, p *model.Project) bool {
	switch c.Role {
	case model.RoleAdmin:
		return true
	case model.RoleMahasiswa:
		return p.IsMember(c.UserID)
	case model.RoleDosenPenguji:
		return p.IsAssignedDosen(c.UserID)
	}
	return false
}

// loadVisibleProject project yang tidak boleh dilihat caller dilaporkan sebagai
// tidak ditemukan.
func loadVisibleProject(ctx context.Context, projects repository.ProjectRepository, c Caller, id uuid.UUID) (*model.Project, error) {
	p, err := projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(c, p) {
		return nil, apperror.NewNotFound("project")
	}
	return p, nil
}

// loadLeaderProject project yang hanya boleh diubah ketua tim.
func loadLeaderProject(ctx context.Context, projects repository.ProjectRepository, c Caller, id uuid.UUID) (*model.Project, error) {
	p, err := loadVisibleProject(ctx, projects, c, id)
	if err != nil {
		return nil, err
	}
	if p.MahasiswaID != c.UserID {
		return nil, apperror.NewForbidden("hanya ketua tim yang dapat melakukan aksi ini")
	}
	return p, nil
}

func actorOf(c Caller, p *model.Project) workflow.Actor {
	return workflow.Actor{Role: c.Role, IsOwner: p.MahasiswaID == c.UserID}
}

func strPtr(s string) *string { return &s }
