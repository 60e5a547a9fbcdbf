package routes

import (
	"capstone-backend/app/model"
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler penugasan dosen penguji dan proses penilaian.
type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) SetupReviewRoutes(r *gin.Engine) {
	assignments := r.Group("/api/v1/projects/:id/assignments")
	assignments.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin))
	{
		assignments.POST("", h.Assign)
		assignments.DELETE("/:dosenId", h.Unassign)
	}

	reviews := r.Group("/api/v1/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.GET("/mine", middleware.RequireRoles(model.RoleDosenPenguji), h.ListMine)
		reviews.GET("/:id", h.Get)

		scoring := middleware.RequireRoles(model.RoleDosenPenguji, model.RoleAdmin)
		reviews.PUT("/:id/scores", scoring, h.SaveScores)
		reviews.POST("/:id/complete", scoring, h.Complete)
		reviews.POST("/:id/comments", scoring, h.AddComment)
		reviews.DELETE("/:id/comments/:commentId", scoring, h.DeleteComment)
	}
}

func (h *ReviewHandler) Assign(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.AssignInput
	if !bindJSON(ctx, &input) {
		return
	}
	review, err := h.reviewService.Assign(ctx.Request.Context(), caller(ctx), projectID, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal menugaskan dosen", err)
		return
	}
	created(ctx, "Dosen penguji ditugaskan", review)
}

func (h *ReviewHandler) Unassign(ctx *gin.Context) {
	projectID, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	dosenID, valid := paramUUID(ctx, "dosenId")
	if !valid {
		return
	}
	if err := h.reviewService.Unassign(ctx.Request.Context(), caller(ctx), projectID, dosenID); err != nil {
		utils.RespondError(ctx, "Gagal mencabut penugasan", err)
		return
	}
	ok(ctx, "Penugasan dicabut", nil)
}

func (h *ReviewHandler) ListMine(ctx *gin.Context) {
	list, err := h.reviewService.ListMine(ctx.Request.Context(), caller(ctx))
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil review", err)
		return
	}
	ok(ctx, "Review saya", list)
}

func (h *ReviewHandler) Get(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	review, err := h.reviewService.Get(ctx.Request.Context(), caller(ctx), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil review", err)
		return
	}
	ok(ctx, "Detail review", review)
}

// SaveScores skor disimpan parsial; overallScore dihitung ulang di service.
func (h *ReviewHandler) SaveScores(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.ScoresInput
	if !bindJSON(ctx, &input) {
		return
	}
	review, err := h.reviewService.SaveScores(ctx.Request.Context(), caller(ctx), id, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal menyimpan skor", err)
		return
	}
	ok(ctx, "Skor tersimpan", review)
}

func (h *ReviewHandler) Complete(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	review, err := h.reviewService.Complete(ctx.Request.Context(), caller(ctx), id)
	if err != nil {
		utils.RespondError(ctx, "Gagal menyelesaikan review", err)
		return
	}
	ok(ctx, "Review selesai", review)
}

func (h *ReviewHandler) AddComment(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input service.CommentInput
	if !bindJSON(ctx, &input) {
		return
	}
	comment, err := h.reviewService.AddComment(ctx.Request.Context(), caller(ctx), id, input)
	if err != nil {
		utils.RespondError(ctx, "Gagal menambah komentar", err)
		return
	}
	created(ctx, "Komentar ditambahkan", comment)
}

func (h *ReviewHandler) DeleteComment(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	commentID, valid := paramUUID(ctx, "commentId")
	if !valid {
		return
	}
	if err := h.reviewService.DeleteComment(ctx.Request.Context(), caller(ctx), id, commentID); err != nil {
		utils.RespondError(ctx, "Gagal menghapus komentar", err)
		return
	}
	ok(ctx, "Komentar dihapus", nil)
}
