package routes

import (
	"capstone-backend/app/model"
	"capstone-backend/app/service"
	"capstone-backend/app/workflow"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler data master: semester, rubrik penilaian, dan tabel meta.
type CatalogHandler struct {
	semesterService service.SemesterService
	rubrikService   service.RubrikService
}

func NewCatalogHandler(semesterService service.SemesterService, rubrikService service.RubrikService) *CatalogHandler {
	return &CatalogHandler{semesterService: semesterService, rubrikService: rubrikService}
}

func (h *CatalogHandler) SetupCatalogRoutes(r *gin.Engine) {
	adminOnly := middleware.RequireRoles(model.RoleAdmin)

	semesters := r.Group("/api/v1/semesters")
	semesters.Use(middleware.AuthMiddleware())
	{
		semesters.GET("", h.ListSemesters)
		semesters.GET("/active", h.ActiveSemester)
		semesters.GET("/:id", h.GetSemester)
		semesters.POST("", adminOnly, h.CreateSemester)
		semesters.PUT("/:id", adminOnly, h.UpdateSemester)
		semesters.DELETE("/:id", adminOnly, h.DeleteSemester)
		semesters.PUT("/:id/activate", adminOnly, h.ActivateSemester)
	}

	rubrik := r.Group("/api/v1/rubrik")
	rubrik.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin, model.RoleDosenPenguji))
	{
		rubrik.GET("", h.ListRubrik)
		rubrik.GET("/summary", h.RubrikSummary)
		rubrik.GET("/:id", h.GetRubrik)
		rubrik.POST("", adminOnly, h.CreateRubrik)
		rubrik.PUT("/:id", adminOnly, h.UpdateRubrik)
		rubrik.DELETE("/:id", adminOnly, h.DeleteRubrik)
	}

	meta := r.Group("/api/v1/meta")
	meta.Use(middleware.AuthMiddleware())
	{
		meta.GET("/statuses", h.Statuses)
		meta.GET("/requirement-fields", h.RequirementFields)
	}
}

// =========================
// Semester
// =========================

func (h *CatalogHandler) ListSemesters(ctx *gin.Context) {
	list, err := h.semesterService.List(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil semester", err)
		return
	}
	ok(ctx, "Daftar semester", list)
}

func (h *CatalogHandler) ActiveSemester(ctx *gin.Context) {
	sem, err := h.semesterService.Active(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, "Semester aktif tidak tersedia", err)
		return
	}
	ok(ctx, "Semester aktif", sem)
}

func (h *CatalogHandler) GetSemester(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	sem, err := h.semesterService.Get(ctx.Request.Context(), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil semester", err)
		return
	}
	ok(ctx, "Detail semester", sem)
}

func (h *CatalogHandler) CreateSemester(ctx *gin.Context) {
	var input service.SemesterInput
	if !bindJSON(ctx, &input) {
		return
	}
	sem, err := h.semesterService.Create(ctx.Request.Context(), input)
	if err != nil {
		utils.RespondError(ctx, "Gagal membuat semester", err)
		return
	}
	created(ctx, "Semester dibuat", sem)
}

func (h *CatalogHandler) UpdateSemester(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.SemesterInput
	if !bindJSON(ctx, &input) {
		return
	}
	sem, err := h.semesterService.Update(ctx.Request.Context(), id, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengubah semester", err)
		return
	}
	ok(ctx, "Semester diperbarui", sem)
}

func (h *CatalogHandler) DeleteSemester(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	if err := h.semesterService.Delete(ctx.Request.Context(), id); err != nil {
		utils.RespondError(ctx, "Gagal menghapus semester", err)
		return
	}
	ok(ctx, "Semester dihapus", nil)
}

func (h *CatalogHandler) ActivateSemester(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	sem, err := h.semesterService.Activate(ctx.Request.Context(), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengaktifkan semester", err)
		return
	}
	ok(ctx, "Semester diaktifkan", sem)
}

// =========================
// Rubrik
// =========================

// ListRubrik ?active=true hanya rubrik aktif.
func (h *CatalogHandler) ListRubrik(ctx *gin.Context) {
	list, err := h.rubrikService.List(ctx.Request.Context(), ctx.Query("active") == "true")
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil rubrik", err)
		return
	}
	ok(ctx, "Daftar rubrik", list)
}

func (h *CatalogHandler) RubrikSummary(ctx *gin.Context) {
	sum, err := h.rubrikService.Summary(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, "Gagal menghitung bobot rubrik", err)
		return
	}
	ok(ctx, "Ringkasan bobot rubrik", sum)
}

func (h *CatalogHandler) GetRubrik(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	rb, err := h.rubrikService.Get(ctx.Request.Context(), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil rubrik", err)
		return
	}
	ok(ctx, "Detail rubrik", rb)
}

func (h *CatalogHandler) CreateRubrik(ctx *gin.Context) {
	var input service.RubrikInput
	if !bindJSON(ctx, &input) {
		return
	}
	rb, err := h.rubrikService.Create(ctx.Request.Context(), input)
	if err != nil {
		utils.RespondError(ctx, "Gagal membuat rubrik", err)
		return
	}
	created(ctx, "Rubrik dibuat", rb)
}

func (h *CatalogHandler) UpdateRubrik(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.RubrikInput
	if !bindJSON(ctx, &input) {
		return
	}
	rb, err := h.rubrikService.Update(ctx.Request.Context(), id, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengubah rubrik", err)
		return
	}
	ok(ctx, "Rubrik diperbarui", rb)
}

func (h *CatalogHandler) DeleteRubrik(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	if err := h.rubrikService.Delete(ctx.Request.Context(), id); err != nil {
		utils.RespondError(ctx, "Gagal menghapus rubrik", err)
		return
	}
	ok(ctx, "Rubrik dihapus", nil)
}

// =========================
// Meta
// =========================

func (h *CatalogHandler) Statuses(ctx *gin.Context) {
	ok(ctx, "Tabel status project", workflow.StatusTable())
}

func (h *CatalogHandler) RequirementFields(ctx *gin.Context) {
	ok(ctx, "Skema form requirements", workflow.RequirementFields)
}
