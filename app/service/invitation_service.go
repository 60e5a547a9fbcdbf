package service

import (
	"context"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/workflow"

	"github.com/google/uuid"
)

// InviteInput body undangan anggota tim.
type InviteInput struct {
	InviteeID uuid.UUID `json:"inviteeId" binding:"required"`
	Message   string    `json:"message"`
}

// TeamView susunan tim beserta sisa slot undangan.
type TeamView struct {
	Leader             *model.User            `json:"leader"`
	Members            []model.ProjectMember  `json:"members"`
	PendingInvitations []model.TeamInvitation `json:"pendingInvitations"`
	MaxMembers         int                    `json:"maxMembers"`
	RemainingSlots     int                    `json:"remainingSlots"`
}

type InvitationService interface {
	Invite(ctx context.Context, caller Caller, projectID uuid.UUID, in InviteInput) (*model.TeamInvitation, error)
	Cancel(ctx context.Context, caller Caller, projectID, invitationID uuid.UUID) error
	ListMine(ctx context.Context, caller Caller) ([]model.TeamInvitation, error)
	Accept(ctx context.Context, caller Caller, invitationID uuid.UUID) (*model.TeamInvitation, error)
	Decline(ctx context.Context, caller Caller, invitationID uuid.UUID) (*model.TeamInvitation, error)
	RemoveMember(ctx context.Context, caller Caller, projectID, userID uuid.UUID) error
	Team(ctx context.Context, caller Caller, projectID uuid.UUID) (*TeamView, error)
}

type invitationService struct {
	projectRepo    repository.ProjectRepository
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	recorder       *ActivityRecorder
	maxMembers     int
}

// NewInvitationService maxMembers <= 0 memakai workflow.DefaultMaxMembers.
func NewInvitationService(
	projectRepo repository.ProjectRepository,
	invitationRepo repository.InvitationRepository,
	userRepo repository.UserRepository,
	recorder *ActivityRecorder,
	maxMembers int,
) InvitationService {
	if maxMembers <= 0 {
		maxMembers = workflow.DefaultMaxMembers
	}
	return &invitationService{
		projectRepo:    projectRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		recorder:       recorder,
		maxMembers:     maxMembers,
	}
}

func (s *invitationService) capacity(confirmed, pending int) error {
	return workflow.CheckCapacity(confirmed, pending, s.maxMembers)
}

// Invite: ketua mengundang mahasiswa aktif. Kapasitas dicek ulang di dalam
// transaksi dengan row lock pada project.
func (s *invitationService) Invite(ctx context.Context, caller Caller, projectID uuid.UUID, in InviteInput) (*model.TeamInvitation, error) {
	p, err := loadLeaderProject(ctx, s.projectRepo, caller, projectID)
	if err != nil {
		return nil, err
	}
	if !p.Status.Editable() {
		return nil, apperror.NewConflict("tim hanya dapat diubah saat project DRAFT atau REVISION_NEEDED")
	}
	if in.InviteeID == uuid.Nil {
		return nil, apperror.NewValidationError("undangan tidak valid",
			apperror.FieldError{Field: "inviteeId", Error: "wajib diisi"})
	}
	if in.InviteeID == caller.UserID {
		return nil, apperror.NewValidationError("undangan tidak valid",
			apperror.FieldError{Field: "inviteeId", Error: "tidak dapat mengundang diri sendiri"})
	}

	invitee, err := s.userRepo.FindByID(ctx, in.InviteeID)
	if err != nil {
		return nil, err
	}
	if invitee.Role != model.RoleMahasiswa || !invitee.IsActive {
		return nil, apperror.NewValidationError("undangan tidak valid",
			apperror.FieldError{Field: "inviteeId", Error: "hanya mahasiswa aktif yang dapat diundang"})
	}

	inv := &model.TeamInvitation{
		ProjectID: projectID,
		InviterID: caller.UserID,
		InviteeID: in.InviteeID,
		Status:    model.InvitationPending,
		Message:   strings.TrimSpace(in.Message),
	}
	if err := s.invitationRepo.Create(ctx, inv, s.capacity); err != nil {
		return nil, err
	}
	inv.Invitee = invitee

	s.recorder.record(ctx, caller, activityEntry{
		projectID: projectID,
		action:    model.ActivityInvitationSent,
		metadata:  map[string]any{"invitationId": inv.ID.String(), "inviteeId": in.InviteeID.String()},
	})
	return inv, nil
}

func (s *invitationService) Cancel(ctx context.Context, caller Caller, projectID, invitationID uuid.UUID) error {
	if _, err := loadLeaderProject(ctx, s.projectRepo, caller, projectID); err != nil {
		return err
	}
	inv, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.ProjectID != projectID {
		return apperror.NewNotFound("undangan")
	}
	ok, err := s.invitationRepo.Cancel(ctx, invitationID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewConflict("undangan sudah direspon")
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: projectID,
		action:    model.ActivityInvitationCancelled,
		metadata:  map[string]any{"invitationId": invitationID.String()},
	})
	return nil
}

func (s *invitationService) ListMine(ctx context.Context, caller Caller) ([]model.TeamInvitation, error) {
	return s.invitationRepo.ListPendingForUser(ctx, caller.UserID)
}

// loadOwnInvitation undangan milik user lain dilaporkan tidak ditemukan.
func (s *invitationService) loadOwnInvitation(ctx context.Context, caller Caller, id uuid.UUID) (*model.TeamInvitation, error) {
	inv, err := s.invitationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.InviteeID != caller.UserID {
		return nil, apperror.NewNotFound("undangan")
	}
	if inv.Status != model.InvitationPending {
		return nil, apperror.NewConflict("undangan sudah direspon")
	}
	return inv, nil
}

// Accept menjadikan invitee anggota; kapasitas dihitung ulang tanpa
// undangan pending karena undangan ini sendiri sedang dikonversi.
func (s *invitationService) Accept(ctx context.Context, caller Caller, invitationID uuid.UUID) (*model.TeamInvitation, error) {
	inv, err := s.loadOwnInvitation(ctx, caller, invitationID)
	if err != nil {
		return nil, err
	}
	if err := s.invitationRepo.Accept(ctx, invitationID, s.capacity); err != nil {
		return nil, err
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: inv.ProjectID,
		action:    model.ActivityInvitationAccepted,
		metadata:  map[string]any{"invitationId": invitationID.String()},
	})
	return s.invitationRepo.FindByID(ctx, invitationID)
}

func (s *invitationService) Decline(ctx context.Context, caller Caller, invitationID uuid.UUID) (*model.TeamInvitation, error) {
	inv, err := s.loadOwnInvitation(ctx, caller, invitationID)
	if err != nil {
		return nil, err
	}
	ok, err := s.invitationRepo.Decline(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflict("undangan sudah direspon")
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: inv.ProjectID,
		action:    model.ActivityInvitationDeclined,
		metadata:  map[string]any{"invitationId": invitationID.String()},
	})
	return s.invitationRepo.FindByID(ctx, invitationID)
}

// RemoveMember ketua mengeluarkan anggota; ketua sendiri tidak bisa dikeluarkan.
func (s *invitationService) RemoveMember(ctx context.Context, caller Caller, projectID, userID uuid.UUID) error {
	p, err := loadLeaderProject(ctx, s.projectRepo, caller, projectID)
	if err != nil {
		return err
	}
	if !p.Status.Editable() {
		return apperror.NewConflict("tim hanya dapat diubah saat project DRAFT atau REVISION_NEEDED")
	}
	if userID == p.MahasiswaID {
		return apperror.NewValidationError("ketua tim tidak dapat dikeluarkan")
	}
	return s.projectRepo.RemoveMember(ctx, projectID, userID)
}

func (s *invitationService) Team(ctx context.Context, caller Caller, projectID uuid.UUID) (*TeamView, error) {
	p, err := loadVisibleProject(ctx, s.projectRepo, caller, projectID)
	if err != nil {
		return nil, err
	}
	pending, err := s.invitationRepo.ListPendingForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	confirmed, pendingCount, err := s.invitationRepo.CountTeam(ctx, projectID)
	if err != nil {
		return nil, err
	}

	members := make([]model.ProjectMember, 0, len(p.Members))
	members = append(members, p.Members...)
	return &TeamView{
		Leader:             p.Mahasiswa,
		Members:            members,
		PendingInvitations: pending,
		MaxMembers:         s.maxMembers,
		RemainingSlots:     workflow.RemainingSlots(confirmed, pendingCount, s.maxMembers),
	}, nil
}
