package main

import (
	"context"
	"log"
	"time"

	"capstone-backend/app/interfaces"
	"capstone-backend/app/repository"
	"capstone-backend/app/service"
	"capstone-backend/config"
	"capstone-backend/database"
	"capstone-backend/infra/queue"
	"capstone-backend/middleware"
	cloudinaryclient "capstone-backend/pkg/cloudinary"
	githubclient "capstone-backend/pkg/github"
	"capstone-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {

	// =================================================================
	// LOAD ENV
	// =================================================================
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET wajib diisi")
	}

	// =================================================================
	// INIT DB (POSTGRES + MONGODB)
	// =================================================================
	dbConn, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		dbConn.Close(ctx)
	}()

	// =================================================================
	// SEED DATA (USERS + SEMESTER + RUBRIK)
	// =================================================================
	if cfg.SeedData {
		database.RunSeeders(dbConn.Postgres)
	}

	// =================================================================
	// INTEGRASI LUAR (CLOUDINARY, GITHUB, KAFKA)
	// =================================================================
	var uploader interfaces.Uploader
	if cld, err := cloudinaryclient.New(cfg.CloudinaryURL); err != nil {
		log.Printf("⚠️  [STORAGE] Cloudinary belum dikonfigurasi, upload dokumen nonaktif: %v", err)
	} else {
		uploader = cloudinaryclient.NewCloudinaryUploader(cld)
	}

	var github interfaces.GithubClient
	if cfg.GithubToken != "" {
		github = githubclient.NewClient(cfg.GithubToken, cfg.GithubOrg, cfg.GithubAPITimeout)
	} else {
		log.Println("⚠️  [GITHUB] GITHUB_TOKEN kosong, fork ke organisasi nonaktif")
	}

	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword)
	defer producer.Close()

	var publisher interfaces.ProducerHandler
	if producer != nil {
		publisher = producer
	}

	// =================================================================
	// REPOSITORIES
	// =================================================================
	userRepo := repository.NewUserRepository(dbConn.Postgres)
	semesterRepo := repository.NewSemesterRepository(dbConn.Postgres)
	projectRepo := repository.NewProjectRepository(dbConn.Postgres)
	requirementsRepo := repository.NewRequirementsRepository(dbConn.Postgres)
	invitationRepo := repository.NewInvitationRepository(dbConn.Postgres)
	documentRepo := repository.NewDocumentRepository(dbConn.Postgres)
	rubrikRepo := repository.NewRubrikRepository(dbConn.Postgres)
	reviewRepo := repository.NewReviewRepository(dbConn.Postgres)
	activityRepo := repository.NewActivityRepository(dbConn.Mongo)
	reportRepo := repository.NewReportRepository(dbConn.Mongo)

	// =================================================================
	// SERVICES
	// =================================================================
	recorder := service.NewActivityRecorder(activityRepo, publisher)
	defer recorder.Wait()

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	semesterService := service.NewSemesterService(semesterRepo)
	rubrikService := service.NewRubrikService(rubrikRepo)
	projectService := service.NewProjectService(
		projectRepo,
		semesterRepo,
		documentRepo,
		reviewRepo,
		github,
		uploader,
		recorder,
	)
	requirementsService := service.NewRequirementsService(projectRepo, requirementsRepo, recorder)
	invitationService := service.NewInvitationService(projectRepo, invitationRepo, userRepo, recorder, cfg.TeamMaxMembers)
	documentService := service.NewDocumentService(projectRepo, documentRepo, uploader, recorder, cfg.UploadFolder, cfg.UploadMaxBytes)
	reviewService := service.NewReviewService(projectRepo, reviewRepo, rubrikRepo, userRepo, recorder)
	reportService := service.NewReportService(projectRepo, reportRepo, activityRepo)

	// =================================================================
	// ROUTER
	// =================================================================
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = cfg.UploadMaxBytes + 1<<20
	r.Use(middleware.ActiveUserCheck(userRepo))

	// Auth & user
	routes.NewAuthHandler(authService).SetupAuthRoutes(r)
	routes.NewUserHandler(userService).SetupUserRoutes(r)

	// Data master: semester, rubrik, meta
	routes.NewCatalogHandler(semesterService, rubrikService).SetupCatalogRoutes(r)

	// Project, workflow status, requirements
	routes.NewProjectHandler(projectService, requirementsService, reportService).SetupProjectRoutes(r)
	routes.NewTeamHandler(invitationService).SetupTeamRoutes(r)
	routes.NewDocumentHandler(documentService, cfg.UploadMaxBytes).SetupDocumentRoutes(r)

	// Penilaian dosen penguji
	routes.NewReviewHandler(reviewService).SetupReviewRoutes(r)

	// GitHub & laporan
	routes.NewGithubHandler(projectService).SetupGithubRoutes(r)
	routes.ReportRoutes(r, reportService)

	// Root endpoint (optional)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Capstone Project API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	log.Println("🚀 Server running at http://localhost:" + cfg.AppPort)

	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}
