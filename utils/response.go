package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"capstone-backend/app/apperror"
)

// APIResponse adalah format standar JSON yang akan diterima Frontend.
// Contoh sukses  : { "status": true,  "message": "Project diajukan", "data": { ... } }
// Contoh gagal   : { "status": false, "message": "Gagal approve",    "errors": "..." }
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`   // omitempty: kalau data nil/kosong, field ini tidak dimunculkan
	Errors  interface{} `json:"errors,omitempty"` // string atau daftar field error
}

// BuildResponseSuccess digunakan saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed digunakan saat terjadi error (HTTP 400, 401, 500, dll).
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}

// RespondError menulis response gagal dengan status code sesuai jenis error domain.
// Error 5xx dicatat ke log dan detailnya tidak dikirim ke client.
func RespondError(c *gin.Context, message string, err error) {
	code := apperror.HTTPStatus(err)
	if code >= http.StatusInternalServerError && code != http.StatusBadGateway {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(code, BuildResponseFailed(message, "internal_server_error", nil))
		return
	}
	c.JSON(code, BuildResponseFailed(message, apperror.Details(err), nil))
}
