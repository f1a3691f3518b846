package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/internet-kid/notes-api/internal/auth"
	"github.com/internet-kid/notes-api/internal/cache"
	"github.com/internet-kid/notes-api/internal/config"
	"github.com/internet-kid/notes-api/internal/database"
	"github.com/internet-kid/notes-api/internal/export"
	"github.com/internet-kid/notes-api/internal/handlers"
	"github.com/internet-kid/notes-api/internal/logger"
	"github.com/internet-kid/notes-api/internal/mail"
	"github.com/internet-kid/notes-api/internal/middleware"
	"github.com/internet-kid/notes-api/internal/repository"
	"github.com/internet-kid/notes-api/internal/services"
	"github.com/internet-kid/notes-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLog := logger.Default()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Shared Redis pool backs both the note cache and the export queue
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	redisPool := cache.NewRedisPool(redisAddr)
	defer redisPool.Close()

	noteCache := cache.NewNoteCache(cache.NewRedisStore(redisPool), cfg.CacheTTL)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	collabRepo := repository.NewCollaborationRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Token manager
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Object storage
	uploader, err := storage.NewS3Uploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Export pipeline
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	exportQueue := export.NewRedisQueue(redisPool, cfg.ExportQueue)
	exportWorker := export.NewWorker(exportQueue, noteRepo, userRepo, mailer, appLog)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go exportWorker.Run(workerCtx)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	noteService := services.NewNoteService(noteRepo, noteCache)
	collabService := services.NewCollaborationService(collabRepo, noteRepo, userRepo, noteCache)
	contactService := services.NewContactService(contactRepo)
	exportService := services.NewExportService(exportQueue)
	uploadService := services.NewUploadService(uploader)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService)
	collabHandler := handlers.NewCollaborationHandler(collabService)
	contactHandler := handlers.NewContactHandler(contactService)
	exportHandler := handlers.NewExportHandler(exportService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Notes API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// User routes
		api.POST("/users", userHandler.Register)
		api.GET("/users", userHandler.Search)
		api.GET("/users/current", middleware.RequireAuth(tokens), userHandler.GetCurrent)
		api.PUT("/users/current", middleware.RequireAuth(tokens), userHandler.UpdateCurrent)
		api.PATCH("/users/current/password", middleware.RequireAuth(tokens), userHandler.UpdatePassword)
		api.GET("/users/:id", userHandler.Get)

		// Authentication routes
		api.POST("/authentications", authHandler.Login)
		api.PUT("/authentications", authHandler.Refresh)
		api.DELETE("/authentications", authHandler.Logout)

		// Note routes (protected)
		notes := api.Group("/notes")
		notes.Use(middleware.RequireAuth(tokens))
		{
			notes.POST("", noteHandler.Create)
			notes.GET("", noteHandler.List)
			notes.GET("/:id", noteHandler.Get)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}

		// Collaboration routes (protected)
		collaborations := api.Group("/collaborations")
		collaborations.Use(middleware.RequireAuth(tokens))
		{
			collaborations.POST("", collabHandler.Create)
			collaborations.DELETE("", collabHandler.Delete)
		}

		// Contact routes (protected)
		contacts := api.Group("/contacts")
		contacts.Use(middleware.RequireAuth(tokens))
		{
			contacts.POST("", contactHandler.Create)
			contacts.GET("", contactHandler.Search)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		// Export and upload routes (protected)
		api.POST("/exports/notes", middleware.RequireAuth(tokens), exportHandler.RequestExport)
		api.POST("/uploads/images", middleware.RequireAuth(tokens), uploadHandler.UploadImage)
	}

	// Start server
	appLog.Info().Str("addr", ":8080").Msg("server starting")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
