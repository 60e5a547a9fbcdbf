package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/repository/mocks"
)

type invitationFixture struct {
	projects    *mocks.MockProjectRepository
	invitations *mocks.MockInvitationRepository
	users       *mocks.MockUserRepository
	svc         InvitationService
}

func newInvitationFixture(t *testing.T) *invitationFixture {
	ctrl := gomock.NewController(t)
	f := &invitationFixture{
		projects:    mocks.NewMockProjectRepository(ctrl),
		invitations: mocks.NewMockInvitationRepository(ctrl),
		users:       mocks.NewMockUserRepository(ctrl),
	}
	// recorder tanpa dependency: aktivitas diabaikan
	f.svc = NewInvitationService(f.projects, f.invitations, f.users, NewActivityRecorder(nil, nil), 3)
	return f
}

var inviteeID = uuid.MustParse("77777777-7777-7777-7777-777777777777")

func activeMahasiswa(id uuid.UUID) *model.User {
	return &model.User{ID: id, Role: model.RoleMahasiswa, IsActive: true}
}

// fakeCreate menjalankan callback kapasitas dengan angka tim yang diberikan,
// meniru pengecekan di dalam transaksi repository.
func fakeCreate(confirmed, pending int) func(context.Context, *model.TeamInvitation, repository.CapacityCheck) error {
	return func(_ context.Context, inv *model.TeamInvitation, check repository.CapacityCheck) error {
		if err := check(confirmed, pending); err != nil {
			return err
		}
		inv.ID = uuid.New()
		return nil
	}
}

func TestInvite_CapacityFromTeamCounts(t *testing.T) {
	tests := []struct {
		name      string
		confirmed int
		pending   int
		wantFull  bool
	}{
		{"tim kosong", 0, 0, false},
		{"dua slot terpakai", 1, 1, false},
		{"satu anggota dua pending", 1, 2, true},
		{"tiga anggota", 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvitationFixture(t)
			f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
			f.users.EXPECT().FindByID(gomock.Any(), inviteeID).Return(activeMahasiswa(inviteeID), nil)
			f.invitations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakeCreate(tt.confirmed, tt.pending))

			inv, err := f.svc.Invite(context.Background(), leader, projectID, InviteInput{InviteeID: inviteeID})
			if tt.wantFull {
				var capErr *apperror.CapacityExceededError
				require.ErrorAs(t, err, &capErr)
				assert.Equal(t, 3, capErr.Max)
				assert.Equal(t, tt.confirmed+tt.pending, capErr.Current)
				assert.Nil(t, inv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.InvitationPending, inv.Status)
			assert.Equal(t, leaderID, inv.InviterID)
		})
	}
}

func TestInvite_Rules(t *testing.T) {
	dosenUser := &model.User{ID: inviteeID, Role: model.RoleDosenPenguji, IsActive: true}
	inactive := &model.User{ID: inviteeID, Role: model.RoleMahasiswa}

	tests := []struct {
		name    string
		caller  Caller
		status  model.ProjectStatus
		invitee uuid.UUID
		user    *model.User
		wantErr interface{}
	}{
		{"bukan ketua", member, model.StatusDraft, inviteeID, nil, &apperror.ForbiddenError{}},
		{"project sudah diajukan", leader, model.StatusSubmitted, inviteeID, nil, &apperror.ConflictError{}},
		{"undang diri sendiri", leader, model.StatusDraft, leaderID, nil, &apperror.ValidationError{}},
		{"invitee dosen", leader, model.StatusDraft, inviteeID, dosenUser, &apperror.ValidationError{}},
		{"invitee nonaktif", leader, model.StatusDraft, inviteeID, inactive, &apperror.ValidationError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvitationFixture(t)
			f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(tt.status), nil)
			if tt.user != nil {
				f.users.EXPECT().FindByID(gomock.Any(), tt.invitee).Return(tt.user, nil)
			}

			_, err := f.svc.Invite(context.Background(), tt.caller, projectID, InviteInput{InviteeID: tt.invitee})
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestAccept(t *testing.T) {
	invID := uuid.New()
	pending := &model.TeamInvitation{ID: invID, ProjectID: projectID, InviteeID: inviteeID, Status: model.InvitationPending}
	invitee := Caller{UserID: inviteeID, Role: model.RoleMahasiswa}

	t.Run("tim penuh saat menerima", func(t *testing.T) {
		f := newInvitationFixture(t)
		f.invitations.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)
		f.invitations.EXPECT().Accept(gomock.Any(), invID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, check repository.CapacityCheck) error {
				return check(3, 0)
			})

		_, err := f.svc.Accept(context.Background(), invitee, invID)
		assert.IsType(t, &apperror.CapacityExceededError{}, err)
	})

	t.Run("berhasil", func(t *testing.T) {
		f := newInvitationFixture(t)
		accepted := *pending
		accepted.Status = model.InvitationAccepted
		gomock.InOrder(
			f.invitations.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil),
			f.invitations.EXPECT().Accept(gomock.Any(), invID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, check repository.CapacityCheck) error {
					return check(2, 0)
				}),
			f.invitations.EXPECT().FindByID(gomock.Any(), invID).Return(&accepted, nil),
		)

		got, err := f.svc.Accept(context.Background(), invitee, invID)
		require.NoError(t, err)
		assert.Equal(t, model.InvitationAccepted, got.Status)
	})

	t.Run("undangan orang lain", func(t *testing.T) {
		f := newInvitationFixture(t)
		f.invitations.EXPECT().FindByID(gomock.Any(), invID).Return(pending, nil)

		_, err := f.svc.Accept(context.Background(), outsider, invID)
		assert.IsType(t, &apperror.NotFoundError{}, err)
	})

	t.Run("sudah direspon", func(t *testing.T) {
		f := newInvitationFixture(t)
		declined := *pending
		declined.Status = model.InvitationDeclined
		f.invitations.EXPECT().FindByID(gomock.Any(), invID).Return(&declined, nil)

		_, err := f.svc.Accept(context.Background(), invitee, invID)
		assert.IsType(t, &apperror.ConflictError{}, err)
	})
}

func TestCancel_InvitationOfOtherProject(t *testing.T) {
	f := newInvitationFixture(t)
	invID := uuid.New()
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
	f.invitations.EXPECT().FindByID(gomock.Any(), invID).Return(&model.TeamInvitation{ID: invID, ProjectID: uuid.New()}, nil)

	err := f.svc.Cancel(context.Background(), leader, projectID, invID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestRemoveMember(t *testing.T) {
	t.Run("ketua tidak bisa dikeluarkan", func(t *testing.T) {
		f := newInvitationFixture(t)
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)

		err := f.svc.RemoveMember(context.Background(), leader, projectID, leaderID)
		assert.IsType(t, &apperror.ValidationError{}, err)
	})

	t.Run("anggota dikeluarkan", func(t *testing.T) {
		f := newInvitationFixture(t)
		f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusRevisionNeeded), nil)
		f.projects.EXPECT().RemoveMember(gomock.Any(), projectID, memberID).Return(nil)

		require.NoError(t, f.svc.RemoveMember(context.Background(), leader, projectID, memberID))
	})
}

func TestTeam_RemainingSlots(t *testing.T) {
	f := newInvitationFixture(t)
	f.projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil)
	f.invitations.EXPECT().ListPendingForProject(gomock.Any(), projectID).Return([]model.TeamInvitation{{ID: uuid.New()}}, nil)
	f.invitations.EXPECT().CountTeam(gomock.Any(), projectID).Return(1, 1, nil)

	team, err := f.svc.Team(context.Background(), member, projectID)
	require.NoError(t, err)
	assert.Equal(t, 3, team.MaxMembers)
	assert.Equal(t, 1, team.RemainingSlots)
	assert.Len(t, team.Members, 2)
	assert.Len(t, team.PendingInvitations, 1)
}
