// Package interfaces berisi kontrak ke layanan luar (object storage, broker,
// GitHub) supaya service bisa ditest tanpa jaringan.
package interfaces

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import "context"

// UploadResult metadata berkas yang berhasil diunggah.
// ResourceType wajib disimpan: objek raw (docx, zip) hanya bisa dihapus
// lewat endpoint raw.
type UploadResult struct {
	FileURL      string
	FileKey      string
	ResourceType string
	FileSize     int64
}

type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (*UploadResult, error)
	Delete(ctx context.Context, fileKey string, resourceType string) error
}

type ProducerHandler interface {
	PublishMessage(ctx context.Context, key, value []byte) error
}

// ForkRequest permintaan fork repo mahasiswa ke organisasi.
type ForkRequest struct {
	Owner string
	Repo  string
	Org   string
	// Name nama repo hasil fork; kosong berarti sama dengan Repo.
	Name string
}

// ForkResult repo hasil fork di organisasi.
type ForkResult struct {
	Name     string
	FullName string
	HTMLURL  string
}

// RepoInfo ringkasan repo untuk validasi URL.
type RepoInfo struct {
	Name          string `json:"name"`
	FullName      string `json:"fullName"`
	HTMLURL       string `json:"htmlUrl"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	DefaultBranch string `json:"defaultBranch"`
}

type GithubClient interface {
	ForkToOrg(ctx context.Context, req ForkRequest) (*ForkResult, error)
	AddCollaborator(ctx context.Context, owner, repo, username string) error
	GetRepo(ctx context.Context, owner, repo string) (*RepoInfo, error)
	Org() string
}
