// Package workflow berisi aturan alur status project capstone, perhitungan
// kelengkapan requirements, dan pengecekan kapasitas tim. Semua fungsi di
// sini murni (tanpa I/O) supaya bisa dipakai service maupun ditest langsung.
package workflow

import (
	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
)

// Action aksi yang diminta terhadap status project.
type Action string

const (
	ActionSubmit          Action = "SUBMIT"
	ActionStartReview     Action = "START_REVIEW"
	ActionApprove         Action = "APPROVE"
	ActionReject          Action = "REJECT"
	ActionRequestRevision Action = "REQUEST_REVISION"
)

// AllActions urutan aksi untuk AllowedActions.
var AllActions = []Action{
	ActionSubmit,
	ActionStartReview,
	ActionApprove,
	ActionReject,
	ActionRequestRevision,
}

// Effect efek samping yang harus dijalankan pemanggil setelah transisi sah.
type Effect string

const (
	EffectSetSubmittedAt Effect = "SET_SUBMITTED_AT"
	EffectForkToOrg      Effect = "FORK_TO_ORG"
)

// Actor identitas pemanggil. IsOwner true bila actor adalah ketua tim project.
type Actor struct {
	Role    model.Role
	IsOwner bool
}

// Options parameter tambahan transisi.
type Options struct {
	// ForkToOrg hanya berarti untuk APPROVE.
	ForkToOrg bool
	// HasRepo: project punya githubRepoUrl.
	HasRepo bool
	// AlreadySubmitted: submittedAt sudah pernah diisi.
	AlreadySubmitted bool
}

// Transition hasil keputusan engine.
type Transition struct {
	From    model.ProjectStatus `json:"from"`
	To      model.ProjectStatus `json:"to"`
	Action  Action              `json:"action"`
	Effects []Effect            `json:"effects,omitempty"`
	// NoOp true bila project sudah berada di status tujuan.
	NoOp bool `json:"noOp"`
}

// HasEffect mengecek apakah transisi membawa efek tertentu.
func (t Transition) HasEffect(e Effect) bool {
	for _, eff := range t.Effects {
		if eff == e {
			return true
		}
	}
	return false
}

type rule struct {
	from      []model.ProjectStatus
	to        model.ProjectStatus
	roles     []model.Role
	ownerOnly bool
}

// rules tabel transisi; REVISION_NEEDED -> SUBMITTED adalah resubmit implisit.
var rules = map[Action]rule{
	ActionSubmit: {
		from:      []model.ProjectStatus{model.StatusDraft, model.StatusRevisionNeeded},
		to:        model.StatusSubmitted,
		roles:     []model.Role{model.RoleMahasiswa},
		ownerOnly: true,
	},
	ActionStartReview: {
		from:  []model.ProjectStatus{model.StatusSubmitted},
		to:    model.StatusInReview,
		roles: []model.Role{model.RoleDosenPenguji, model.RoleAdmin},
	},
	ActionApprove: {
		from:  []model.ProjectStatus{model.StatusSubmitted, model.StatusInReview},
		to:    model.StatusApproved,
		roles: []model.Role{model.RoleAdmin},
	},
	ActionReject: {
		from:  []model.ProjectStatus{model.StatusSubmitted, model.StatusInReview},
		to:    model.StatusRejected,
		roles: []model.Role{model.RoleAdmin},
	},
	ActionRequestRevision: {
		from:  []model.ProjectStatus{model.StatusInReview},
		to:    model.StatusRevisionNeeded,
		roles: []model.Role{model.RoleAdmin},
	},
}

// Decide memutuskan apakah aksi boleh dijalankan dari status current oleh actor.
// Role dicek lebih dulu; actor yang sah dan project sudah di status tujuan
// mendapat transisi NoOp tanpa efek samping.
func Decide(current model.ProjectStatus, action Action, actor Actor, opts Options) (Transition, error) {
	r, ok := rules[action]
	if !ok {
		return Transition{}, invalid(current, action, actor, "aksi tidak dikenal")
	}
	if !current.Valid() {
		return Transition{}, invalid(current, action, actor, "status tidak dikenal")
	}
	if !containsRole(r.roles, actor.Role) {
		return Transition{}, invalid(current, action, actor, "role tidak berwenang")
	}
	if r.ownerOnly && !actor.IsOwner {
		return Transition{}, invalid(current, action, actor, "hanya ketua tim yang boleh")
	}

	if current == r.to {
		return Transition{From: current, To: current, Action: action, NoOp: true}, nil
	}
	if !containsStatus(r.from, current) {
		return Transition{}, invalid(current, action, actor, "")
	}

	t := Transition{From: current, To: r.to, Action: action}
	switch action {
	case ActionSubmit:
		if !opts.AlreadySubmitted {
			t.Effects = append(t.Effects, EffectSetSubmittedAt)
		}
	case ActionApprove:
		if opts.ForkToOrg && opts.HasRepo {
			t.Effects = append(t.Effects, EffectForkToOrg)
		}
	}
	return t, nil
}

// AllowedActions daftar aksi yang sah untuk actor pada status current
// (tidak termasuk aksi yang hanya menghasilkan NoOp).
func AllowedActions(current model.ProjectStatus, actor Actor) []Action {
	actions := make([]Action, 0, len(AllActions))
	for _, a := range AllActions {
		t, err := Decide(current, a, actor, Options{})
		if err == nil && !t.NoOp {
			actions = append(actions, a)
		}
	}
	return actions
}

// TargetStatus status tujuan sebuah aksi.
func TargetStatus(action Action) (model.ProjectStatus, bool) {
	r, ok := rules[action]
	return r.to, ok
}

// ActionForStatus memetakan body {status} pada PUT /projects/:id ke aksi.
func ActionForStatus(target model.ProjectStatus) (Action, bool) {
	for _, a := range AllActions {
		if rules[a].to == target {
			return a, true
		}
	}
	return "", false
}

func invalid(current model.ProjectStatus, action Action, actor Actor, reason string) error {
	return &apperror.InvalidTransitionError{
		From:   string(current),
		Action: string(action),
		Role:   string(actor.Role),
		Reason: reason,
	}
}

func containsRole(roles []model.Role, r model.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}

func containsStatus(list []model.ProjectStatus, s model.ProjectStatus) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
