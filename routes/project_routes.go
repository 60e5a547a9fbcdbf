package routes

import (
	"strconv"

	"capstone-backend/app/apperror"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/service"
	"capstone-backend/app/workflow"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler CRUD project, aksi workflow, requirements, dan riwayat aktivitas.
type ProjectHandler struct {
	projectService      service.ProjectService
	requirementsService service.RequirementsService
	reportService       service.ReportService
}

func NewProjectHandler(
	projectService service.ProjectService,
	requirementsService service.RequirementsService,
	reportService service.ReportService,
) *ProjectHandler {
	return &ProjectHandler{
		projectService:      projectService,
		requirementsService: requirementsService,
		reportService:       reportService,
	}
}

// SetupProjectRoutes semua endpoint /api/v1/projects. Hak akses per project
// (anggota tim, dosen penguji, admin) diperiksa di service.
func (h *ProjectHandler) SetupProjectRoutes(r *gin.Engine) {
	projects := r.Group("/api/v1/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.POST("", middleware.RequireRoles(model.RoleMahasiswa), h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)

		// workflow
		projects.POST("/:id/submit", h.transition(workflow.ActionSubmit))
		projects.POST("/:id/start-review", h.transition(workflow.ActionStartReview))
		projects.POST("/:id/approve", h.transition(workflow.ActionApprove))
		projects.POST("/:id/reject", h.transition(workflow.ActionReject))
		projects.POST("/:id/request-revision", h.transition(workflow.ActionRequestRevision))

		projects.GET("/:id/requirements", h.GetRequirements)
		projects.PUT("/:id/requirements", h.SaveRequirements)

		projects.GET("/:id/activities", h.Activities)
	}

	// Form requirements versi lama mengirim projectId di body.
	r.POST("/api/v1/project-requirements", middleware.AuthMiddleware(), h.SaveRequirementsByBody)
}

// ==================================================================
// LOGIKA HANDLER (CONTROLLER) DIMULAI DI SINI
// ==================================================================

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var input service.CreateProjectInput
	if !bindJSON(ctx, &input) {
		return
	}
	detail, err := h.projectService.Create(ctx.Request.Context(), caller(ctx), input)
	if err != nil {
		utils.RespondError(ctx, "Gagal membuat project", err)
		return
	}
	created(ctx, "Project berhasil dibuat", detail)
}

// List ?status=&semester=&tahunAkademik=&search=&page=&limit=
func (h *ProjectHandler) List(ctx *gin.Context) {
	var q struct {
		Status        string `form:"status"`
		Semester      string `form:"semester"`
		TahunAkademik string `form:"tahunAkademik"`
		Search        string `form:"search"`
		pageQuery
	}
	if err := ctx.ShouldBindQuery(&q); err != nil {
		utils.RespondError(ctx, "Parameter tidak valid", utils.BindError(err))
		return
	}

	status := model.ProjectStatus(q.Status)
	if status != "" && !status.Valid() {
		utils.RespondError(ctx, "Parameter tidak valid", apperror.NewValidationError("status tidak dikenal",
			apperror.FieldError{Field: "status", Error: "status tidak dikenal"}))
		return
	}

	items, total, err := h.projectService.List(ctx.Request.Context(), caller(ctx), service.ListProjectsInput{
		Status:        status,
		Semester:      q.Semester,
		TahunAkademik: q.TahunAkademik,
		Search:        q.Search,
		Pagination:    repository.Pagination{Page: q.Page, Limit: q.Limit},
	})
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil daftar project", err)
		return
	}
	ok(ctx, "Daftar project", newPaged(items, total, q.pageQuery))
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	detail, err := h.projectService.Get(ctx.Request.Context(), caller(ctx), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil project", err)
		return
	}
	ok(ctx, "Detail project", detail)
}

// Update body berisi status -> diteruskan ke workflow; selain itu edit data.
func (h *ProjectHandler) Update(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.UpdateProjectInput
	if !bindJSON(ctx, &input) {
		return
	}
	detail, err := h.projectService.Update(ctx.Request.Context(), caller(ctx), id, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengubah project", err)
		return
	}
	ok(ctx, "Project diperbarui", detail)
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	if err := h.projectService.Delete(ctx.Request.Context(), caller(ctx), id); err != nil {
		utils.RespondError(ctx, "Gagal menghapus project", err)
		return
	}
	ok(ctx, "Project dihapus", nil)
}

// transition handler untuk satu aksi workflow. Body opsional; hanya
// forkToOrg/addCollaborators yang dibaca (bermakna pada APPROVE).
func (h *ProjectHandler) transition(action workflow.Action) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, valid := paramUUID(ctx, "id")
		if !valid {
			return
		}

		var input service.TransitionInput
		if !bindOptionalJSON(ctx, &input) {
			return
		}

		detail, err := h.projectService.Transition(ctx.Request.Context(), caller(ctx), id, action, input)
		if err != nil {
			utils.RespondError(ctx, "Gagal mengubah status project", err)
			return
		}
		ok(ctx, "Status project: "+string(detail.Status), detail)
	}
}

// =========================
// Requirements
// =========================

func (h *ProjectHandler) GetRequirements(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	view, err := h.requirementsService.Get(ctx.Request.Context(), caller(ctx), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil requirements", err)
		return
	}
	ok(ctx, "Requirements project", view)
}

// SaveRequirements body objek parsial {field: value|null}; field yang tidak
// dikirim tidak diubah.
func (h *ProjectHandler) SaveRequirements(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var patch service.RequirementsPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	h.saveRequirements(ctx, id, patch)
}

// SaveRequirementsByBody sama dengan SaveRequirements, projectId ikut di body.
func (h *ProjectHandler) SaveRequirementsByBody(ctx *gin.Context) {
	var patch service.RequirementsPatch
	if !bindJSON(ctx, &patch) {
		return
	}

	raw := patch["projectId"]
	delete(patch, "projectId")
	if raw == nil {
		utils.RespondError(ctx, "Input tidak valid", apperror.NewValidationError("projectId wajib diisi",
			apperror.FieldError{Field: "projectId", Error: "wajib diisi"}))
		return
	}
	id, err := parseUUID(*raw, "projectId")
	if err != nil {
		utils.RespondError(ctx, "Input tidak valid", err)
		return
	}
	h.saveRequirements(ctx, id, patch)
}

func (h *ProjectHandler) saveRequirements(ctx *gin.Context, id uuid.UUID, patch service.RequirementsPatch) {
	view, err := h.requirementsService.Save(ctx.Request.Context(), caller(ctx), id, patch)
	if err != nil {
		utils.RespondError(ctx, "Gagal menyimpan requirements", err)
		return
	}
	ok(ctx, "Requirements tersimpan", view)
}

// Activities riwayat aktivitas project dari MongoDB, terbaru dulu.
func (h *ProjectHandler) Activities(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "50"), 10, 64)

	list, err := h.reportService.Activities(ctx.Request.Context(), caller(ctx), id, limit)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil aktivitas", err)
		return
	}
	ok(ctx, "Aktivitas project", list)
}
