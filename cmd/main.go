package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kavinraj03/PlaceHub/internal/config"
	"github.com/kavinraj03/PlaceHub/internal/db"
	"github.com/kavinraj03/PlaceHub/internal/geocode"
	"github.com/kavinraj03/PlaceHub/internal/handlers"
	"github.com/kavinraj03/PlaceHub/internal/httperr"
	"github.com/kavinraj03/PlaceHub/internal/middleware"
	"github.com/kavinraj03/PlaceHub/internal/services"
	"github.com/kavinraj03/PlaceHub/internal/storage"
	"github.com/kavinraj03/PlaceHub/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// Connect to MongoDB
	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := db.Disconnect(client); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	database := client.Database(cfg.DBName)
	log.Info().Str("db", cfg.DBName).Msg("connected to MongoDB")

	// Connect to MinIO
	images, err := storage.NewImageStore(storage.Options{
		Endpoint:     cfg.MinioEndpoint,
		AccessKey:    cfg.MinioAccessKey,
		SecretKey:    cfg.MinioSecretKey,
		UseSSL:       cfg.MinioUseSSL,
		Bucket:       cfg.Bucket,
		AssetBaseURL: cfg.AssetBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("minio connection failed")
	}
	log.Info().Str("bucket", cfg.Bucket).Msg("connected to MinIO")

	// Wire services
	userStore := store.NewMongoUserStore(database)
	placeStore := store.NewMongoPlaceStore(client, database)
	creds := services.NewCredentialService(cfg.JWTSecret)
	geocoder := geocode.NewGoogleGeocoder(cfg.GeocodeAPIKey)
	userService := services.NewUserService(userStore, creds, images, log)
	placeService := services.NewPlaceService(placeStore, userStore, geocoder, images, log)

	userHandler := handlers.NewUserHandler(userService)
	placeHandler := handlers.NewPlaceHandler(placeService)
	uploadHandler := handlers.NewUploadHandler(images)

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PATCH",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Places API is running"})
	})

	api := app.Group("/api")

	// Place Routes
	places := api.Group("/places")
	places.Get("/user/:uid", placeHandler.GetByUser)
	places.Get("/:pid", placeHandler.GetByID)
	places.Post("/", middleware.Auth(creds), placeHandler.Create)
	places.Patch("/:pid", middleware.Auth(creds), placeHandler.Update)
	places.Delete("/:pid", middleware.Auth(creds), placeHandler.Delete)

	// User Routes
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/signup", userHandler.Signup)
	users.Post("/login", userHandler.Login)

	// Standalone upload
	api.Post("/upload", uploadHandler.Upload)

	app.Use(func(c *fiber.Ctx) error {
		return httperr.NotFound("Could not find this route")
	})

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
