package repository

import (
	"context"
	"time"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CapacityCheck dipanggil di dalam transaksi setelah baris project dikunci.
// confirmed = anggota non-ketua, pending = undangan PENDING.
type CapacityCheck func(confirmed, pending int) error

// InvitationRepository undangan tim dan konversinya menjadi anggota.
type InvitationRepository interface {
	// Create menyimpan undangan PENDING. Kapasitas dan duplikasi dicek di
	// bawah lock baris project supaya dua undangan paralel tidak lolos bersamaan.
	Create(ctx context.Context, inv *model.TeamInvitation, check CapacityCheck) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TeamInvitation, error)
	ListPendingForUser(ctx context.Context, inviteeID uuid.UUID) ([]model.TeamInvitation, error)
	ListPendingForProject(ctx context.Context, projectID uuid.UUID) ([]model.TeamInvitation, error)
	CountTeam(ctx context.Context, projectID uuid.UUID) (confirmed, pending int, err error)
	// Accept mengubah undangan menjadi ACCEPTED dan membuat ProjectMember dalam satu transaksi.
	Accept(ctx context.Context, id uuid.UUID, check CapacityCheck) error
	// Decline compare-and-swap PENDING -> DECLINED.
	Decline(ctx context.Context, id uuid.UUID) (bool, error)
	// Cancel menghapus undangan yang masih PENDING.
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func lockProject(tx *gorm.DB, projectID uuid.UUID) error {
	var p model.Project
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", projectID).
		First(&p).Error
	return translate(err, "project", "lock project")
}

func countTeam(tx *gorm.DB, projectID uuid.UUID) (confirmed, pending int, err error) {
	var members, invites int64
	if err = tx.Model(&model.ProjectMember{}).
		Where("project_id = ? AND role = ?", projectID, model.MemberMember).
		Count(&members).Error; err != nil {
		return 0, 0, translate(err, "anggota project", "count members")
	}
	if err = tx.Model(&model.TeamInvitation{}).
		Where("project_id = ? AND status = ?", projectID, model.InvitationPending).
		Count(&invites).Error; err != nil {
		return 0, 0, translate(err, "undangan", "count pending invitations")
	}
	return int(members), int(invites), nil
}

func (r *invitationRepository) Create(ctx context.Context, inv *model.TeamInvitation, check CapacityCheck) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockProject(tx, inv.ProjectID); err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.ProjectMember{}).
			Where("project_id = ? AND user_id = ?", inv.ProjectID, inv.InviteeID).
			Count(&n).Error; err != nil {
			return translate(err, "anggota project", "check member")
		}
		if n > 0 {
			return apperror.NewConflict("user sudah menjadi anggota tim")
		}
		if err := tx.Model(&model.TeamInvitation{}).
			Where("project_id = ? AND invitee_id = ? AND status = ?", inv.ProjectID, inv.InviteeID, model.InvitationPending).
			Count(&n).Error; err != nil {
			return translate(err, "undangan", "check pending invitation")
		}
		if n > 0 {
			return apperror.NewConflict("user sudah memiliki undangan yang belum dijawab")
		}

		confirmed, pending, err := countTeam(tx, inv.ProjectID)
		if err != nil {
			return err
		}
		if err := check(confirmed, pending); err != nil {
			return err
		}

		inv.Status = model.InvitationPending
		return translate(tx.Omit("Project", "Invitee").Create(inv).Error, "undangan", "create invitation")
	})
}

func (r *invitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeamInvitation, error) {
	var inv model.TeamInvitation
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Invitee").
		Where("id = ?", id).
		First(&inv).Error
	if err != nil {
		return nil, translate(err, "undangan", "find invitation")
	}
	return &inv, nil
}

func (r *invitationRepository) ListPendingForUser(ctx context.Context, inviteeID uuid.UUID) ([]model.TeamInvitation, error) {
	out := []model.TeamInvitation{}
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Project.Mahasiswa").
		Where("invitee_id = ? AND status = ?", inviteeID, model.InvitationPending).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, "undangan", "list invitations for user")
	}
	return out, nil
}

func (r *invitationRepository) ListPendingForProject(ctx context.Context, projectID uuid.UUID) ([]model.TeamInvitation, error) {
	out := []model.TeamInvitation{}
	err := r.db.WithContext(ctx).
		Preload("Invitee").
		Where("project_id = ? AND status = ?", projectID, model.InvitationPending).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, "undangan", "list invitations for project")
	}
	return out, nil
}

func (r *invitationRepository) CountTeam(ctx context.Context, projectID uuid.UUID) (int, int, error) {
	return countTeam(r.db.WithContext(ctx), projectID)
}

func (r *invitationRepository) Accept(ctx context.Context, id uuid.UUID, check CapacityCheck) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv model.TeamInvitation
		if err := tx.Where("id = ?", id).First(&inv).Error; err != nil {
			return translate(err, "undangan", "find invitation")
		}
		if err := lockProject(tx, inv.ProjectID); err != nil {
			return err
		}

		// baca ulang setelah lock, undangan bisa saja sudah dibatalkan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&inv).Error; err != nil {
			return translate(err, "undangan", "reload invitation")
		}
		if inv.Status != model.InvitationPending {
			return apperror.NewConflict("undangan sudah dijawab")
		}

		confirmed, _, err := countTeam(tx, inv.ProjectID)
		if err != nil {
			return err
		}
		if err := check(confirmed, 0); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.TeamInvitation{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":       model.InvitationAccepted,
			"responded_at": now,
		}).Error; err != nil {
			return translate(err, "undangan", "accept invitation")
		}

		member := model.ProjectMember{
			ProjectID: inv.ProjectID,
			UserID:    inv.InviteeID,
			Role:      model.MemberMember,
		}
		return translate(tx.Create(&member).Error, "anggota project", "create member")
	})
}

func (r *invitationRepository) Decline(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.TeamInvitation{}).
		Where("id = ? AND status = ?", id, model.InvitationPending).
		Updates(map[string]interface{}{
			"status":       model.InvitationDeclined,
			"responded_at": time.Now(),
		})
	if res.Error != nil {
		return false, translate(res.Error, "undangan", "decline invitation")
	}
	return res.RowsAffected == 1, nil
}

func (r *invitationRepository) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.InvitationPending).
		Delete(&model.TeamInvitation{})
	if res.Error != nil {
		return false, translate(res.Error, "undangan", "cancel invitation")
	}
	return res.RowsAffected == 1, nil
}
