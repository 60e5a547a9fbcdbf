package routes

import (
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler adalah struct pengelola request untuk fitur Autentikasi.
// Struct ini menyimpan dependency ke AuthService.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler adalah constructor untuk membuat instance handler baru.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SetupAuthRoutes mengatur peta URL autentikasi, diawali /api/v1/auth
func (h *AuthHandler) SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/profile", middleware.AuthMiddleware(), h.Profile)
	}
}

// ==================================================================
// LOGIKA HANDLER (CONTROLLER) DIMULAI DI SINI
// ==================================================================

// Register menangani pendaftaran mahasiswa baru.
func (h *AuthHandler) Register(ctx *gin.Context) {
	// 1. Binding & validasi input
	var input service.RegisterInput
	if !bindJSON(ctx, &input) {
		return
	}

	// 2. Role dipaksa MAHASISWA di service, password di-hash di sana juga
	user, err := h.authService.Register(ctx.Request.Context(), input)
	if err != nil {
		utils.RespondError(ctx, "Gagal registrasi", err)
		return
	}

	// 3. Sukses, kirim 201
	created(ctx, "Registrasi berhasil", user)
}

// Login memeriksa email + password dan mengembalikan token JWT.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(ctx, &input) {
		return
	}

	res, err := h.authService.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondError(ctx, "Login gagal", err)
		return
	}
	ok(ctx, "Login berhasil", res)
}

// Profile data user yang sedang login.
func (h *AuthHandler) Profile(ctx *gin.Context) {
	user, err := h.authService.Profile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		utils.RespondError(ctx, "Gagal mengambil profil", err)
		return
	}
	ok(ctx, "Profil user", user)
}
