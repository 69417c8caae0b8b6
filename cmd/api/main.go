package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"lokalpro/internal/config"
	"lokalpro/internal/handler"
	"lokalpro/internal/middleware"
	"lokalpro/internal/repository"
	"lokalpro/internal/service"
	"lokalpro/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	store := storage.NewMinioStorage(minioClient, cfg)
	services := service.NewServices(repos, redisClient, store, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services, repos)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services, repos *repository.Repositories) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	public := v1.Group("/public")
	public.Get("/profiles", h.Public.SearchProfiles)
	public.Get("/profiles/:slug", h.Public.GetProfile)
	public.Get("/filters", h.Public.GetFilters)

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Get("/verify-email", h.Auth.VerifyEmail)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)

	favorites := protected.Group("/favorites")
	favorites.Get("/", h.Favorite.List)
	favorites.Post("/:profileId", h.Favorite.Add)
	favorites.Delete("/:profileId", h.Favorite.Remove)

	admin := protected.Group("/admin", middleware.AdminRequired(repos.AdminGrant))
	admin.Get("/profiles", h.Admin.ListProfiles)
	admin.Patch("/profiles/:profileId/verify", h.Admin.SetVerified)
	admin.Post("/profiles/:profileId/avatar", h.Media.UploadAvatar)
	admin.Post("/profiles/:profileId/gallery", h.Media.UploadGallery)
	admin.Post("/profiles/:profileId/gallery/append", h.Media.AppendGallery)
	admin.Post("/profiles/:profileId/media/remove", h.Media.RemoveMedia)
}
