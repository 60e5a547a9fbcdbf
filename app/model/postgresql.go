package model

import (
	"time"

	"github.com/google/uuid"
)

// User merepresentasikan pengguna sistem (mahasiswa, dosen penguji, admin)
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	FullName       string    `gorm:"not null" json:"fullName"`
	IdentityNumber *string   `gorm:"type:varchar(30)" json:"identityNumber,omitempty"` // NIM / NIP
	GithubUsername *string   `gorm:"type:varchar(100)" json:"githubUsername,omitempty"`
	Role           Role      `gorm:"type:varchar(20);not null;check:role IN ('MAHASISWA','DOSEN_PENGUJI','ADMIN')" json:"role"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Semester periode akademik (contoh: "Ganjil", "2025/2026")
type Semester struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name"`
	TahunAkademik string    `gorm:"type:varchar(9);not null" json:"tahunAkademik"`
	StartDate     time.Time `gorm:"not null" json:"startDate"`
	EndDate       time.Time `gorm:"not null" json:"endDate"`
	IsActive      bool      `gorm:"not null;default:false;index" json:"isActive"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Project capstone milik seorang mahasiswa (ketua tim)
type Project struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string        `gorm:"not null" json:"title"`
	Description   string        `gorm:"type:text" json:"description"`
	Status        ProjectStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index;check:status IN ('DRAFT','SUBMITTED','IN_REVIEW','REVISION_NEEDED','APPROVED','REJECTED')" json:"status"`
	Semester      string        `gorm:"type:varchar(50)" json:"semester"`
	TahunAkademik string        `gorm:"type:varchar(9)" json:"tahunAkademik"`
	SemesterID    *uuid.UUID    `gorm:"type:uuid;index" json:"semesterId,omitempty"`

	// Repo sumber milik mahasiswa
	GithubRepoURL  *string `json:"githubRepoUrl"`
	GithubRepoName *string `json:"githubRepoName"`

	// Repo tujuan di organisasi, diisi bersamaan saat approve + fork
	OrgRepoURL  *string    `json:"orgRepoUrl"`
	OrgRepoName *string    `json:"orgRepoName"`
	ForkedAt    *time.Time `json:"forkedAt"`

	MahasiswaID uuid.UUID `gorm:"type:uuid;not null;index" json:"mahasiswaId"`
	Mahasiswa   *User     `gorm:"foreignKey:MahasiswaID" json:"mahasiswa,omitempty"`

	Members      []ProjectMember      `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"members,omitempty"`
	Invitations  []TeamInvitation     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"-"`
	Documents    []ProjectDocument    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"documents,omitempty"`
	Reviews      []Review             `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"reviews,omitempty"`
	Assignments  []ReviewAssignment   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"assignments,omitempty"`
	Requirements *ProjectRequirements `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"requirements,omitempty"`

	SubmittedAt *time.Time `json:"submittedAt"` // diisi sekali saat DRAFT -> SUBMITTED
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsMember mengecek apakah userID adalah ketua atau anggota tim.
// Members harus sudah di-preload.
func (p *Project) IsMember(userID uuid.UUID) bool {
	if p.MahasiswaID == userID {
		return true
	}
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// IsAssignedDosen mengecek apakah dosen ditugaskan menguji project ini.
// Assignments harus sudah di-preload.
func (p *Project) IsAssignedDosen(dosenID uuid.UUID) bool {
	for _, a := range p.Assignments {
		if a.DosenID == dosenID {
			return true
		}
	}
	return false
}

// ProjectMember anggota tim project
type ProjectMember struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_project_member" json:"projectId"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_project_member" json:"userId"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role      MemberRole `gorm:"type:varchar(10);not null;check:role IN ('leader','member')" json:"role"`
	JoinedAt  time.Time  `gorm:"autoCreateTime" json:"joinedAt"`
}

// TeamInvitation undangan bergabung ke tim project
type TeamInvitation struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"projectId"`
	Project     *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	InviterID   uuid.UUID        `gorm:"type:uuid;not null" json:"inviterId"`
	InviteeID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"inviteeId"`
	Invitee     *User            `gorm:"foreignKey:InviteeID" json:"invitee,omitempty"`
	Status      InvitationStatus `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	Message     string           `gorm:"type:text" json:"message"`
	RespondedAt *time.Time       `json:"respondedAt,omitempty"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"createdAt"`
}

// ProjectRequirements dokumen kebutuhan project (one-to-one dengan Project)
type ProjectRequirements struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"projectId"`

	// akademik
	IntegrasiMatakuliah *string `gorm:"type:text" json:"integrasiMatakuliah"`
	Metodologi          *string `gorm:"type:text" json:"metodologi"`

	// teknis
	RuangLingkup      *string `gorm:"type:text" json:"ruangLingkup"`
	SumberDayaBatasan *string `gorm:"type:text" json:"sumberDayaBatasan"`
	FiturUtama        *string `gorm:"type:text" json:"fiturUtama"`

	// analisis
	AnalisisTemuan  *string `gorm:"type:text" json:"analisisTemuan"`
	PresentasiUjian *string `gorm:"type:text" json:"presentasiUjian"`
	Stakeholder     *string `gorm:"type:text" json:"stakeholder"`
	KepatuhanEtika  *string `gorm:"type:text" json:"kepatuhanEtika"`

	// production (tidak dihitung ke completion)
	ProductionURL       *string             `json:"productionUrl"`
	ProductionURLStatus ProductionURLStatus `gorm:"type:varchar(10);default:'UNKNOWN'" json:"productionUrlStatus"`
	TestingUsername     *string             `json:"testingUsername"`
	TestingPassword     *string             `json:"testingPassword"`
	TestingNotes        *string             `gorm:"type:text" json:"testingNotes"`

	CompletionPercent int       `gorm:"not null;default:0" json:"completionPercent"`
	UpdatedBy         uuid.UUID `gorm:"type:uuid" json:"updatedBy"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ProjectDocument metadata berkas yang diunggah ke object storage
type ProjectDocument struct {
	ID         uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"projectId"`
	UploadedBy uuid.UUID    `gorm:"type:uuid;not null" json:"uploadedBy"`
	Kind       DocumentKind `gorm:"type:varchar(15);not null;default:'DOCUMENT'" json:"kind"`
	Title      string       `json:"title"`
	FileName   string       `gorm:"not null" json:"fileName"`
	FileURL    string       `gorm:"type:text;not null" json:"fileUrl"`
	FileKey    string       `gorm:"not null" json:"fileKey"`
	// image / raw / video, dipakai saat menghapus objek storage
	ResourceType string    `gorm:"type:varchar(10);not null;default:'image'" json:"-"`
	FileSize     int64     `json:"fileSize"`
	MimeType     string    `gorm:"type:varchar(100)" json:"mimeType"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// ReviewAssignment pemetaan dosen penguji <-> project
type ReviewAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment" json:"projectId"`
	DosenID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment" json:"dosenId"`
	Dosen      *User     `gorm:"foreignKey:DosenID" json:"dosen,omitempty"`
	AssignedBy uuid.UUID `gorm:"type:uuid;not null" json:"assignedBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Review penilaian satu dosen penguji terhadap project
type Review struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_review_reviewer" json:"projectId"`
	Project        *Project        `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	ReviewerID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_review_reviewer" json:"reviewerId"`
	Reviewer       *User           `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Status         ReviewStatus    `gorm:"type:varchar(15);not null;default:'PENDING'" json:"status"`
	OverallScore   *float64        `json:"overallScore"`
	OverallComment string          `gorm:"type:text" json:"overallComment"`
	Scores         []ReviewScore   `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;" json:"scores,omitempty"`
	Comments       []ReviewComment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;" json:"comments,omitempty"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ReviewScore nilai per item rubrik
type ReviewScore struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_rubrik" json:"reviewId"`
	RubrikID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_rubrik" json:"rubrikId"`
	Rubrik    *Rubrik   `gorm:"foreignKey:RubrikID" json:"rubrik,omitempty"`
	Score     float64   `gorm:"not null" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ReviewComment komentar inline, opsional menempel ke file & baris
type ReviewComment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	FilePath  *string   `json:"filePath,omitempty"`
	LineStart *int      `json:"lineStart,omitempty"`
	LineEnd   *int      `json:"lineEnd,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Rubrik kriteria penilaian yang dikelola admin
type Rubrik struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Kategori    string    `gorm:"type:varchar(100);not null" json:"kategori"`
	BobotMax    int       `gorm:"not null;check:bobot_max BETWEEN 1 AND 100" json:"bobotMax"`
	Urutan      int       `gorm:"not null;default:0" json:"urutan"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
