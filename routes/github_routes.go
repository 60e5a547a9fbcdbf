package routes

import (
	"capstone-backend/app/model"
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GithubHandler operasi GitHub yang dipicu manual (fork ulang, cek repo).
type GithubHandler struct {
	projectService service.ProjectService
}

func NewGithubHandler(projectService service.ProjectService) *GithubHandler {
	return &GithubHandler{projectService: projectService}
}

func (h *GithubHandler) SetupGithubRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/github")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/fork-to-org", middleware.RequireRoles(model.RoleAdmin), h.ForkToOrg)
		g.POST("/validate", h.Validate)
	}
}

// ForkToOrg fork ulang project APPROVED yang fork-nya dulu gagal / dilewati.
func (h *GithubHandler) ForkToOrg(ctx *gin.Context) {
	var input struct {
		ProjectID        uuid.UUID `json:"projectId" binding:"required"`
		AddCollaborators bool      `json:"addCollaborators"`
	}
	if !bindJSON(ctx, &input) {
		return
	}

	detail, err := h.projectService.ForkToOrg(ctx.Request.Context(), caller(ctx), input.ProjectID, input.AddCollaborators)
	if err != nil {
		utils.RespondError(ctx, "Gagal fork repository", err)
		return
	}
	ok(ctx, "Repository berhasil di-fork ke organisasi", detail)
}

// Validate memastikan URL repository GitHub ada dan bisa diakses token server.
func (h *GithubHandler) Validate(ctx *gin.Context) {
	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if !bindJSON(ctx, &input) {
		return
	}

	info, err := h.projectService.ValidateRepository(ctx.Request.Context(), input.URL)
	if err != nil {
		utils.RespondError(ctx, "Repository tidak valid", err)
		return
	}
	ok(ctx, "Repository valid", info)
}
