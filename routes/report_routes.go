package routes

import (
	"capstone-backend/app/service"
	"capstone-backend/middleware"
	"capstone-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportRoutes mendaftarkan endpoint statistik project.
func ReportRoutes(r *gin.Engine, s service.ReportService) {

	g := r.Group("/api/v1/reports")
	g.Use(middleware.AuthMiddleware())

	{
		// Statistik project (scope tergantung role)
		// Admin         → semua project
		// Dosen Penguji → project yang ditugaskan
		// Mahasiswa     → project tempat ia menjadi anggota
		// GET /api/v1/reports/statistics
		g.GET("/statistics", func(ctx *gin.Context) {
			stats, err := s.Statistics(ctx.Request.Context(), caller(ctx))
			if err != nil {
				utils.RespondError(ctx, "Gagal mengambil statistik", err)
				return
			}
			ok(ctx, "Statistik project", stats)
		})
	}
}
