package main

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/okiroth/gallery_backend/internal/application"
	"github.com/okiroth/gallery_backend/internal/config"
	"github.com/okiroth/gallery_backend/internal/domain"
	"github.com/okiroth/gallery_backend/internal/email"
	"github.com/okiroth/gallery_backend/internal/infrastructure/repository"
	handlers "github.com/okiroth/gallery_backend/internal/interfaces/http"
	"github.com/okiroth/gallery_backend/internal/scheduler"
	services "github.com/okiroth/gallery_backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var (
		itemRepo    domain.ItemRepository
		userRepo    domain.UserRepository
		contactRepo domain.ContactRepository
	)

	switch cfg.DBDriver {
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.DataFile), 0755); err != nil {
			log.Fatalf("Error creating data directory: %v", err)
		}
		itemRepo = repository.NewFileItemRepository(cfg.DataFile)
		// The file-backed variant carries no users or messages; the
		// shared admin password is the only credential in that mode.
	default:
		dialect := repository.DialectSQLite
		dsn := cfg.SQLitePath
		driver := "sqlite3"
		if cfg.DBDriver == "postgres" {
			dialect = repository.DialectPostgres
			dsn = cfg.DatabaseURL
			driver = "postgres"
		} else if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			log.Fatalf("Error creating data directory: %v", err)
		}

		db, err := sql.Open(driver, dsn)
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Error pinging database: %v", err)
		}
		if err := repository.Migrate(db, dialect); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}

		itemRepo = repository.NewItemRepository(db, dialect)
		userRepo = repository.NewUserRepository(db, dialect)
		contactRepo = repository.NewContactRepository(db, dialect)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Admin-Password",
		MaxAge:       86400,
	}))

	// Items
	itemService := application.NewItemService(itemRepo)
	itemHandler := handlers.NewItemHandler(itemService)

	// Auth
	sharedAuth := application.NewSharedSecretAuthorizer(cfg.AdminPassword)
	tokenAuth := application.NewTokenAuthorizer([]byte(cfg.JWTSecret))
	authService := application.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	authHandler := handlers.NewAuthHandler(authService, sharedAuth)
	authMiddleware := handlers.NewAuthMiddleware(sharedAuth, tokenAuth)

	// Email client
	var emailClient *email.Client
	if cfg.SMTPHost != "" {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
			emailClient = nil
		}
	}

	api := app.Group("/api")

	// Gallery routes
	gallery := api.Group("/gallery")
	gallery.Get("/", itemHandler.List)
	gallery.Get("/view", itemHandler.ViewPage)
	gallery.Put("/:id", authMiddleware.RequireWrite, itemHandler.Update)
	gallery.Delete("/:id", authMiddleware.RequireWrite, itemHandler.Delete)
	gallery.Post("/:id/like", itemHandler.Like)
	gallery.Delete("/:id/like", itemHandler.Unlike)
	gallery.Post("/:id/dislike", itemHandler.Dislike)
	gallery.Delete("/:id/dislike", itemHandler.Undislike)

	api.Post("/upload", authMiddleware.RequireWrite, itemHandler.Create)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/check", authHandler.Check)

	// Contact/report and users need the SQL stores
	if contactRepo != nil {
		limiter := application.NewRateLimiter(1*time.Minute, 5)
		contactService := application.NewContactService(contactRepo, emailClient, cfg.ContactInbox, limiter)
		contactHandler := handlers.NewContactHandler(contactService)

		api.Post("/contact", contactHandler.Contact)
		api.Post("/report", contactHandler.Report)
		api.Get("/contact", authMiddleware.RequireAdmin, contactHandler.List)

		retention := scheduler.NewRetentionScheduler(contactService, cfg.MessageRetention)
		retention.Start()
		defer retention.Stop()
	}

	if userRepo != nil {
		userService := application.NewUserService(userRepo)
		userHandler := handlers.NewUserHandler(userService)

		users := api.Group("/users", authMiddleware.RequireAdmin)
		users.Get("/", userHandler.List)
		users.Post("/", userHandler.Create)
		users.Delete("/:id", userHandler.Delete)
	}

	// Image uploads go to S3 when a bucket is configured
	if cfg.S3Bucket != "" {
		s3Service, err := services.NewS3Service(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Printf("Warning: S3 service initialization failed: %v", err)
		} else {
			s3Handler := handlers.NewS3Handler(s3Service)
			api.Post("/upload/image", authMiddleware.RequireWrite, s3Handler.HandleUploadImage)
		}
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
