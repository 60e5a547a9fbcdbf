package routes

import (
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler manajemen user oleh admin dan pencarian calon anggota tim.
type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SetupUserRoutes
// - /api/v1/admin/users : khusus admin
// - /api/v1/users/search: semua user login (mencari mahasiswa untuk diundang)
func (h *UserHandler) SetupUserRoutes(r *gin.Engine) {
	admin := r.Group("/api/v1/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PUT("/:id/active", h.SetActive)
	}

	r.GET("/api/v1/users/search", middleware.AuthMiddleware(), h.Search)
}

func (h *UserHandler) List(ctx *gin.Context) {
	var q struct {
		Role   string `form:"role"`
		Search string `form:"search"`
		pageQuery
	}
	if err := ctx.ShouldBindQuery(&q); err != nil {
		utils.RespondError(ctx, "Parameter tidak valid", utils.BindError(err))
		return
	}

	users, total, err := h.userService.List(ctx.Request.Context(), repository.UserFilter{
		Role:       model.Role(q.Role),
		Search:     q.Search,
		Pagination: repository.Pagination{Page: q.Page, Limit: q.Limit},
	})
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil daftar user", err)
		return
	}
	ok(ctx, "Daftar user", newPaged(users, total, q.pageQuery))
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var input service.CreateUserInput
	if !bindJSON(ctx, &input) {
		return
	}
	user, err := h.userService.Create(ctx.Request.Context(), input)
	if err != nil {
		utils.RespondError(ctx, "Gagal membuat user", err)
		return
	}
	created(ctx, "User berhasil dibuat", user)
}

// SetActive body {isActive: bool}
func (h *UserHandler) SetActive(ctx *gin.Context) {
	id, valid := paramUUID(ctx, "id")
	if !valid {
		return
	}
	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if !bindJSON(ctx, &input) {
		return
	}

	user, err := h.userService.SetActive(ctx.Request.Context(), caller(ctx), id, *input.IsActive)
	if err != nil {
		utils.RespondError(ctx, "Gagal mengubah status user", err)
		return
	}
	ok(ctx, "Status user diperbarui", user)
}

func (h *UserHandler) Search(ctx *gin.Context) {
	users, err := h.userService.SearchMahasiswa(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		utils.RespondError(ctx, "Gagal mencari user", err)
		return
	}
	ok(ctx, "Hasil pencarian", users)
}
