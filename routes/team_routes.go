package routes

import (
	"capstone-backend/app/model"
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
)

// TeamHandler undangan anggota tim dan susunan tim project.
type TeamHandler struct {
	invitationService service.InvitationService
}

func NewTeamHandler(invitationService service.InvitationService) *TeamHandler {
	return &TeamHandler{invitationService: invitationService}
}

func (h *TeamHandler) SetupTeamRoutes(r *gin.Engine) {
	projects := r.Group("/api/v1/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("/:id/team", h.Team)
		projects.POST("/:id/invitations", middleware.RequireRoles(model.RoleMahasiswa), h.Invite)
		projects.DELETE("/:id/invitations/:invitationId", middleware.RequireRoles(model.RoleMahasiswa), h.Cancel)
		projects.DELETE("/:id/members/:userId", middleware.RequireRoles(model.RoleMahasiswa), h.RemoveMember)
	}

	// kotak masuk undangan milik mahasiswa yang login
	invitations := r.Group("/api/v1/invitations")
	invitations.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleMahasiswa))
	{
		invitations.GET("", h.ListMine)
		invitations.POST("/:id/accept", h.Accept)
		invitations.POST("/:id/decline", h.Decline)
	}
}

func (h *TeamHandler) Team(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	team, err := h.invitationService.Team(ctx.Request.Context(), caller(ctx), projectID)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil data tim", err)
		return
	}
	ok(ctx, "Tim project", team)
}

// Invite ketua tim mengundang mahasiswa lain; slot dihitung dari anggota
// aktif + undangan pending.
func (h *TeamHandler) Invite(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.InviteInput
	if !bindJSON(ctx, &input) {
		return
	}

	inv, err := h.invitationService.Invite(ctx.Request.Context(), caller(ctx), projectID, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengirim undangan", err)
		return
	}
	created(ctx, "Undangan terkirim", inv)
}

func (h *TeamHandler) Cancel(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	invitationID, valid := paramUUID(ctx, "invitationId")
	if !valid {
		return
	}
	if err := h.invitationService.Cancel(ctx.Request.Context(), caller(ctx), projectID, invitationID); err != nil {
		utils.RespondError(ctx, "Gagal membatalkan undangan", err)
		return
	}
	ok(ctx, "Undangan dibatalkan", nil)
}

func (h *TeamHandler) RemoveMember(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	userID, valid := paramUUID(ctx, "userId")
	if !valid {
		return
	}
	if err := h.invitationService.RemoveMember(ctx.Request.Context(), caller(ctx), projectID, userID); err != nil {
		utils.RespondError(ctx, "Gagal mengeluarkan anggota", err)
		return
	}
	ok(ctx, "Anggota dikeluarkan", nil)
}

func (h *TeamHandler) ListMine(ctx *gin.Context) {
	list, err := h.invitationService.ListMine(ctx.Request.Context(), caller(ctx))
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil undangan", err)
		return
	}
	ok(ctx, "Undangan saya", list)
}

func (h *TeamHandler) Accept(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	inv, err := h.invitationService.Accept(ctx.Request.Context(), caller(ctx), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal menerima undangan", err)
		return
	}
	ok(ctx, "Undangan diterima", inv)
}

func (h *TeamHandler) Decline(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	inv, err := h.invitationService.Decline(ctx.Request.Context(), caller(ctx), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal menolak undangan", err)
		return
	}
	ok(ctx, "Undangan ditolak", inv)
}
