package service

import (
	"testing"
	"time"

	"capstone-backend/app/model"

	"github.com/google/uuid"
)

var (
	leaderID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	memberID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	dosenID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	adminID   = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	outsideID = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	projectID = uuid.MustParse("66666666-6666-6666-6666-666666666666")

	leader   = Caller{UserID: leaderID, Role: model.RoleMahasiswa}
	member   = Caller{UserID: memberID, Role: model.RoleMahasiswa}
	dosen    = Caller{UserID: dosenID, Role: model.RoleDosenPenguji}
	admin    = Caller{UserID: adminID, Role: model.RoleAdmin}
	outsider = Caller{UserID: outsideID, Role: model.RoleMahasiswa}

	fixedNow = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
)

// freezeTime mengganti nowFunc selama test berjalan.
func freezeTime(t *testing.T) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return fixedNow }
	t.Cleanup(func() { nowFunc = prev })
}

// sampleProject project milik leader dengan satu anggota dan satu dosen penguji.
func sampleProject(status model.ProjectStatus) *model.Project {
	return &model.Project{
		ID:             projectID,
		Title:          "Sistem Informasi Capstone",
		Status:         status,
		Semester:       "Ganjil",
		TahunAkademik:  "2025/2026",
		GithubRepoURL:  strPtr("https://github.com/alice/app"),
		GithubRepoName: strPtr("alice/app"),
		MahasiswaID:    leaderID,
		Mahasiswa:      &model.User{ID: leaderID, GithubUsername: strPtr("alice")},
		Members: []model.ProjectMember{
			{UserID: leaderID, Role: model.MemberLeader, User: &model.User{ID: leaderID, GithubUsername: strPtr("alice")}},
			{UserID: memberID, Role: model.MemberMember, User: &model.User{ID: memberID, GithubUsername: strPtr("bob")}},
		},
		Assignments: []model.ReviewAssignment{{ProjectID: projectID, DosenID: dosenID}},
	}
}
