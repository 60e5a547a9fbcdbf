package model

// Role pengguna sistem.
type Role string

const (
	RoleMahasiswa    Role = "MAHASISWA"
	RoleDosenPenguji Role = "DOSEN_PENGUJI"
	RoleAdmin        Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMahasiswa, RoleDosenPenguji, RoleAdmin:
		return true
	}
	return false
}

// ProjectStatus status alur kerja project capstone.
type ProjectStatus string

const (
	StatusDraft          ProjectStatus = "DRAFT"
	StatusSubmitted      ProjectStatus = "SUBMITTED"
	StatusInReview       ProjectStatus = "IN_REVIEW"
	StatusRevisionNeeded ProjectStatus = "REVISION_NEEDED"
	StatusApproved       ProjectStatus = "APPROVED"
	StatusRejected       ProjectStatus = "REJECTED"
)

// AllProjectStatuses urutan kanonik status (dipakai untuk tabel status & laporan).
var AllProjectStatuses = []ProjectStatus{
	StatusDraft,
	StatusSubmitted,
	StatusInReview,
	StatusRevisionNeeded,
	StatusApproved,
	StatusRejected,
}

func (s ProjectStatus) Valid() bool {
	for _, st := range AllProjectStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Editable: project hanya boleh diubah pemiliknya pada status ini.
func (s ProjectStatus) Editable() bool {
	return s == StatusDraft || s == StatusRevisionNeeded
}

// MemberRole peran anggota di dalam tim project.
type MemberRole string

const (
	MemberLeader MemberRole = "leader"
	MemberMember MemberRole = "member"
)

// InvitationStatus status undangan tim.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// ReviewStatus status review seorang dosen penguji.
type ReviewStatus string

const (
	ReviewPending    ReviewStatus = "PENDING"
	ReviewInProgress ReviewStatus = "IN_PROGRESS"
	ReviewCompleted  ReviewStatus = "COMPLETED"
)

// DocumentKind jenis berkas yang dilampirkan ke project.
type DocumentKind string

const (
	DocumentGeneral     DocumentKind = "DOCUMENT"
	DocumentScreenshot  DocumentKind = "SCREENSHOT"
	DocumentStakeholder DocumentKind = "STAKEHOLDER"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentGeneral, DocumentScreenshot, DocumentStakeholder:
		return true
	}
	return false
}

// ProductionURLStatus hasil pengecekan URL production.
type ProductionURLStatus string

const (
	ProductionUnknown ProductionURLStatus = "UNKNOWN"
	ProductionOnline  ProductionURLStatus = "ONLINE"
	ProductionOffline ProductionURLStatus = "OFFLINE"
)
