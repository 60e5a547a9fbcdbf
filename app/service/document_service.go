package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"capstone-backend/app/apperror"
	"capstone-backend/app/interfaces"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// UploadInput berkas yang sudah dibaca handler dari multipart form.
type UploadInput struct {
	Kind     model.DocumentKind
	Title    string
	FileName string
	Content  []byte
}

type DocumentService interface {
	Upload(ctx context.Context, caller Caller, projectID uuid.UUID, in UploadInput) (*model.ProjectDocument, error)
	List(ctx context.Context, caller Caller, projectID uuid.UUID, kind model.DocumentKind) ([]model.ProjectDocument, error)
	Delete(ctx context.Context, caller Caller, projectID, documentID uuid.UUID) error
}

type documentService struct {
	projectRepo  repository.ProjectRepository
	documentRepo repository.DocumentRepository
	uploader     interfaces.Uploader
	recorder     *ActivityRecorder
	folder       string
	maxBytes     int64
}

func NewDocumentService(
	projectRepo repository.ProjectRepository,
	documentRepo repository.DocumentRepository,
	uploader interfaces.Uploader,
	recorder *ActivityRecorder,
	folder string,
	maxBytes int64,
) DocumentService {
	return &documentService{
		projectRepo:  projectRepo,
		documentRepo: documentRepo,
		uploader:     uploader,
		recorder:     recorder,
		folder:       folder,
		maxBytes:     maxBytes,
	}
}

// allowedMimes tipe berkas yang diterima; dicek terhadap hasil deteksi
// beserta parent-nya (docx/xlsx/pptx turunan application/zip).
var allowedMimes = map[string]bool{}

func init() {
	for _, m := range []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/webp",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"application/zip",
	} {
		allowedMimes[m] = true
	}
}

// detectMime mengembalikan MIME hasil sniffing dan apakah diizinkan.
func detectMime(content []byte) (string, bool) {
	detected := mimetype.Detect(content)
	for m := detected; m != nil; m = m.Parent() {
		if allowedMimes[m.String()] {
			return detected.String(), true
		}
	}
	return detected.String(), false
}

func (s *documentService) Upload(ctx context.Context, caller Caller, projectID uuid.UUID, in UploadInput) (*model.ProjectDocument, error) {
	p, err := loadVisibleProject(ctx, s.projectRepo, caller, projectID)
	if err != nil {
		return nil, err
	}
	if !p.IsMember(caller.UserID) {
		return nil, apperror.NewForbidden("hanya anggota tim yang dapat mengunggah dokumen")
	}

	// 1. Validasi berkas
	if in.Kind == "" {
		in.Kind = model.DocumentGeneral
	}
	if !in.Kind.Valid() {
		return nil, apperror.NewValidationError("dokumen tidak valid",
			apperror.FieldError{Field: "kind", Error: "harus DOCUMENT, SCREENSHOT, atau STAKEHOLDER"})
	}
	if len(in.Content) == 0 {
		return nil, apperror.NewValidationError("dokumen tidak valid",
			apperror.FieldError{Field: "file", Error: "berkas kosong"})
	}
	if s.maxBytes > 0 && int64(len(in.Content)) > s.maxBytes {
		return nil, apperror.NewValidationError("dokumen tidak valid",
			apperror.FieldError{Field: "file", Error: fmt.Sprintf("ukuran maksimal %d byte", s.maxBytes)})
	}
	mime, ok := detectMime(in.Content)
	if !ok {
		return nil, apperror.NewValidationError("dokumen tidak valid",
			apperror.FieldError{Field: "file", Error: "tipe berkas " + mime + " tidak diizinkan"})
	}
	if in.Kind == model.DocumentScreenshot && !strings.HasPrefix(mime, "image/") {
		return nil, apperror.NewValidationError("dokumen tidak valid",
			apperror.FieldError{Field: "file", Error: "screenshot harus berupa gambar"})
	}

	if s.uploader == nil {
		return nil, &apperror.ExternalServiceError{Service: "storage", Message: "object storage belum dikonfigurasi"}
	}

	// 2. Unggah ke object storage, hanya metadata yang disimpan di database
	res, err := s.uploader.UploadBytes(ctx, path.Join(s.folder, projectID.String()), uuid.NewString(), in.Content)
	if err != nil {
		return nil, &apperror.ExternalServiceError{Service: "storage", Message: err.Error(), Err: err}
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = in.FileName
	}
	doc := &model.ProjectDocument{
		ProjectID:    projectID,
		UploadedBy:   caller.UserID,
		Kind:         in.Kind,
		Title:        title,
		FileName:     in.FileName,
		FileURL:      res.FileURL,
		FileKey:      res.FileKey,
		ResourceType: res.ResourceType,
		FileSize:     res.FileSize,
		MimeType:     mime,
	}
	if doc.FileSize == 0 {
		doc.FileSize = int64(len(in.Content))
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		if delErr := s.uploader.Delete(ctx, res.FileKey, res.ResourceType); delErr != nil {
			log.Printf("[STORAGE] gagal rollback %s: %v", res.FileKey, delErr)
		}
		return nil, err
	}

	s.recorder.record(ctx, caller, activityEntry{
		projectID: projectID,
		action:    model.ActivityDocumentUploaded,
		metadata:  map[string]any{"documentId": doc.ID.String(), "kind": string(doc.Kind), "fileName": doc.FileName},
	})
	return doc, nil
}

func (s *documentService) List(ctx context.Context, caller Caller, projectID uuid.UUID, kind model.DocumentKind) ([]model.ProjectDocument, error) {
	if kind != "" && !kind.Valid() {
		return nil, apperror.NewValidationError("filter tidak valid",
			apperror.FieldError{Field: "kind", Error: "jenis dokumen tidak dikenal"})
	}
	if _, err := loadVisibleProject(ctx, s.projectRepo, caller, projectID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListByProject(ctx, projectID, kind)
}

// Delete oleh pengunggah atau ketua tim; objek storage dihapus best-effort.
func (s *documentService) Delete(ctx context.Context, caller Caller, projectID, documentID uuid.UUID) error {
	p, err := loadVisibleProject(ctx, s.projectRepo, caller, projectID)
	if err != nil {
		return err
	}
	doc, err := s.documentRepo.FindByID(ctx, projectID, documentID)
	if err != nil {
		return err
	}
	if doc.UploadedBy != caller.UserID && p.MahasiswaID != caller.UserID {
		return apperror.NewForbidden("hanya pengunggah atau ketua tim yang dapat menghapus dokumen")
	}

	if s.uploader != nil {
		if err := s.uploader.Delete(ctx, doc.FileKey, doc.ResourceType); err != nil {
			log.Printf("[STORAGE] gagal menghapus %s: %v", doc.FileKey, err)
		}
	}
	return s.documentRepo.Delete(ctx, documentID)
}
