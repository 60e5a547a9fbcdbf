package routes

import (
	"fmt"
	"io"
	"net/http"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// multipartOverhead ruang untuk boundary dan field form selain file.
const multipartOverhead = 1 << 20

// DocumentHandler upload dan daftar berkas pendukung project.
type DocumentHandler struct {
	documentService service.DocumentService
	maxBytes        int64
}

// NewDocumentHandler maxBytes <= 0 berarti tanpa batas ukuran.
func NewDocumentHandler(documentService service.DocumentService, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, maxBytes: maxBytes}
}

func (h *DocumentHandler) SetupDocumentRoutes(r *gin.Engine) {
	docs := r.Group("/api/v1/projects/:id/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.POST("", middleware.RequireRoles(model.RoleMahasiswa), h.Upload)
		docs.GET("", h.List)
		docs.DELETE("/:docId", middleware.RequireRoles(model.RoleMahasiswa), h.Delete)
	}
}

// Upload multipart: file (wajib), kind (DOCUMENT|SCREENSHOT|STAKEHOLDER), title.
func (h *DocumentHandler) Upload(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}

	// 1. Ambil file dari form, body dibatasi sebelum diparse
	if h.maxBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBytes+multipartOverhead)
	}
	fh, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondTooLarge(ctx)
			return
		}
		utils.RespondError(ctx, "Input tidak valid", apperror.NewValidationError("file wajib diunggah",
			apperror.FieldError{Field: "file", Error: "wajib diisi"}))
		return
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		h.respondTooLarge(ctx)
		return
	}

	// 2. Baca isi file maksimal maxBytes+1; tipe dicek di service
	f, err := fh.Open()
	if err != nil {
		utils.RespondError(ctx, "Gagal membaca file", err)
		return
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxBytes > 0 {
		r = io.LimitReader(f, h.maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		utils.RespondError(ctx, "Gagal membaca file", err)
		return
	}
	if h.maxBytes > 0 && int64(len(content)) > h.maxBytes {
		h.respondTooLarge(ctx)
		return
	}

	kind := model.DocumentKind(ctx.PostForm("kind"))
	if kind != "" && !kind.Valid() {
		utils.RespondError(ctx, "Input tidak valid", apperror.NewValidationError("jenis dokumen tidak dikenal",
			apperror.FieldError{Field: "kind", Error: "harus DOCUMENT, SCREENSHOT, atau STAKEHOLDER"}))
		return
	}

	// 3. Simpan ke storage + database
	doc, err := h.documentService.Upload(ctx.Request.Context(), caller(ctx), projectID, service.UploadInput{
		Kind:     kind,
		Title:    ctx.PostForm("title"),
		FileName: fh.Filename,
		Content:  content,
	})
	if err != nil {
		utils.RespondError(ctx, "Gagal mengunggah dokumen", err)
		return
	}
	created(ctx, "Dokumen terunggah", doc)
}

func (h *DocumentHandler) respondTooLarge(ctx *gin.Context) {
	utils.RespondError(ctx, "Input tidak valid", apperror.NewValidationError("dokumen tidak valid",
		apperror.FieldError{Field: "file", Error: fmt.Sprintf("ukuran maksimal %d byte", h.maxBytes)}))
}

// List ?kind= opsional
func (h *DocumentHandler) List(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	docs, err := h.documentService.List(ctx.Request.Context(), caller(ctx), projectID, model.DocumentKind(ctx.Query("kind")))
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil dokumen", err)
		return
	}
	ok(ctx, "Dokumen project", docs)
}

func (h *DocumentHandler) Delete(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	docID, valid := paramUUID(ctx, "docId")
	if !valid {
		return
	}
	if err := h.documentService.Delete(ctx.Request.Context(), caller(ctx), projectID, docID); err != nil {
		utils.RespondError(ctx, "Gagal menghapus dokumen", err)
		return
	}
	ok(ctx, "Dokumen dihapus", nil)
}
