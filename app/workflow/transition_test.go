package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
)

var allRoles = []model.Role{model.RoleMahasiswa, model.RoleDosenPenguji, model.RoleAdmin}

type outcome struct {
	to   model.ProjectStatus
	noop bool
}

// expectedOutcome tabel transisi yang sah, ditulis ulang terpisah dari rules.
func expectedOutcome(from model.ProjectStatus, action Action, actor Actor) (outcome, bool) {
	isAdmin := actor.Role == model.RoleAdmin
	switch action {
	case ActionSubmit:
		if actor.Role != model.RoleMahasiswa || !actor.IsOwner {
			return outcome{}, false
		}
		switch from {
		case model.StatusDraft, model.StatusRevisionNeeded:
			return outcome{to: model.StatusSubmitted}, true
		case model.StatusSubmitted:
			return outcome{to: model.StatusSubmitted, noop: true}, true
		}
	case ActionStartReview:
		if actor.Role != model.RoleDosenPenguji && !isAdmin {
			return outcome{}, false
		}
		switch from {
		case model.StatusSubmitted:
			return outcome{to: model.StatusInReview}, true
		case model.StatusInReview:
			return outcome{to: model.StatusInReview, noop: true}, true
		}
	case ActionApprove, ActionReject:
		if !isAdmin {
			return outcome{}, false
		}
		target := model.StatusApproved
		if action == ActionReject {
			target = model.StatusRejected
		}
		switch from {
		case model.StatusSubmitted, model.StatusInReview:
			return outcome{to: target}, true
		case target:
			return outcome{to: target, noop: true}, true
		}
	case ActionRequestRevision:
		if !isAdmin {
			return outcome{}, false
		}
		switch from {
		case model.StatusInReview:
			return outcome{to: model.StatusRevisionNeeded}, true
		case model.StatusRevisionNeeded:
			return outcome{to: model.StatusRevisionNeeded, noop: true}, true
		}
	}
	return outcome{}, false
}

func TestDecide_AllTriples(t *testing.T) {
	for _, from := range model.AllProjectStatuses {
		for _, action := range AllActions {
			for _, role := range allRoles {
				for _, owner := range []bool{false, true} {
					actor := Actor{Role: role, IsOwner: owner}
					name := string(from) + "/" + string(action) + "/" + string(role)
					if owner {
						name += "/owner"
					}
					t.Run(name, func(t *testing.T) {
						got, err := Decide(from, action, actor, Options{})
						want, ok := expectedOutcome(from, action, actor)
						if !ok {
							var terr *apperror.InvalidTransitionError
							require.ErrorAs(t, err, &terr)
							assert.Equal(t, string(from), terr.From)
							assert.Equal(t, string(action), terr.Action)
							return
						}
						require.NoError(t, err)
						assert.Equal(t, want.to, got.To)
						assert.Equal(t, want.noop, got.NoOp)
						assert.Equal(t, from, got.From)
					})
				}
			}
		}
	}
}

func TestDecide_SubmitSetsSubmittedAtOnce(t *testing.T) {
	owner := Actor{Role: model.RoleMahasiswa, IsOwner: true}

	first, err := Decide(model.StatusDraft, ActionSubmit, owner, Options{})
	require.NoError(t, err)
	assert.True(t, first.HasEffect(EffectSetSubmittedAt))

	resubmit, err := Decide(model.StatusRevisionNeeded, ActionSubmit, owner, Options{AlreadySubmitted: true})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSubmitted, resubmit.To)
	assert.False(t, resubmit.HasEffect(EffectSetSubmittedAt))
}

func TestDecide_ApproveForkEffect(t *testing.T) {
	admin := Actor{Role: model.RoleAdmin}

	tests := []struct {
		name     string
		opts     Options
		wantFork bool
	}{
		{name: "fork with repo", opts: Options{ForkToOrg: true, HasRepo: true}, wantFork: true},
		{name: "fork without repo", opts: Options{ForkToOrg: true}, wantFork: false},
		{name: "no fork", opts: Options{HasRepo: true}, wantFork: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Decide(model.StatusInReview, ActionApprove, admin, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, model.StatusApproved, tr.To)
			assert.Equal(t, tt.wantFork, tr.HasEffect(EffectForkToOrg))
		})
	}
}

func TestDecide_ApproveOnApprovedIsNoOp(t *testing.T) {
	tr, err := Decide(model.StatusApproved, ActionApprove, Actor{Role: model.RoleAdmin}, Options{ForkToOrg: true, HasRepo: true})
	require.NoError(t, err)
	assert.True(t, tr.NoOp)
	assert.Empty(t, tr.Effects)

	_, err = Decide(model.StatusApproved, ActionApprove, Actor{Role: model.RoleDosenPenguji}, Options{})
	var terr *apperror.InvalidTransitionError
	assert.ErrorAs(t, err, &terr)
}

func TestDecide_DosenStartReviewOnDraft(t *testing.T) {
	_, err := Decide(model.StatusDraft, ActionStartReview, Actor{Role: model.RoleDosenPenguji}, Options{})
	var terr *apperror.InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "DRAFT", terr.From)
}

func TestDecide_UnknownInputs(t *testing.T) {
	admin := Actor{Role: model.RoleAdmin}
	_, err := Decide(model.StatusSubmitted, Action("ARCHIVE"), admin, Options{})
	assert.Error(t, err)

	_, err = Decide(model.ProjectStatus("PUBLISHED"), ActionApprove, admin, Options{})
	assert.Error(t, err)
}

func TestAllowedActions(t *testing.T) {
	tests := []struct {
		name   string
		status model.ProjectStatus
		actor  Actor
		want   []Action
	}{
		{name: "owner on draft", status: model.StatusDraft, actor: Actor{Role: model.RoleMahasiswa, IsOwner: true}, want: []Action{ActionSubmit}},
		{name: "member on draft", status: model.StatusDraft, actor: Actor{Role: model.RoleMahasiswa}, want: []Action{}},
		{name: "dosen on submitted", status: model.StatusSubmitted, actor: Actor{Role: model.RoleDosenPenguji}, want: []Action{ActionStartReview}},
		{name: "admin on submitted", status: model.StatusSubmitted, actor: Actor{Role: model.RoleAdmin}, want: []Action{ActionStartReview, ActionApprove, ActionReject}},
		{name: "admin in review", status: model.StatusInReview, actor: Actor{Role: model.RoleAdmin}, want: []Action{ActionApprove, ActionReject, ActionRequestRevision}},
		{name: "admin on approved", status: model.StatusApproved, actor: Actor{Role: model.RoleAdmin}, want: []Action{}},
		{name: "owner on revision", status: model.StatusRevisionNeeded, actor: Actor{Role: model.RoleMahasiswa, IsOwner: true}, want: []Action{ActionSubmit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedActions(tt.status, tt.actor))
		})
	}
}

func TestActionForStatus(t *testing.T) {
	a, ok := ActionForStatus(model.StatusInReview)
	assert.True(t, ok)
	assert.Equal(t, ActionStartReview, a)

	_, ok = ActionForStatus(model.StatusDraft)
	assert.False(t, ok)
}

func TestStatusTable(t *testing.T) {
	table := StatusTable()
	require.Len(t, table, len(model.AllProjectStatuses))
	for i, s := range model.AllProjectStatuses {
		assert.Equal(t, s, table[i].Status)
		assert.NotEmpty(t, table[i].Label)
	}
	assert.True(t, StatusInfo(model.StatusApproved).Terminal)
	assert.True(t, StatusInfo(model.StatusRejected).Terminal)
	assert.False(t, StatusInfo(model.StatusDraft).Terminal)
	assert.Equal(t, "ARCHIVED", StatusInfo("ARCHIVED").Label)
}
