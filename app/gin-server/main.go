package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sikarir/sikarir-backend/config"
	"github.com/sikarir/sikarir-backend/internal/api/handlers"
	"github.com/sikarir/sikarir-backend/internal/api/middleware"
	"github.com/sikarir/sikarir-backend/internal/api/routes"
	"github.com/sikarir/sikarir-backend/internal/cache"
	"github.com/sikarir/sikarir-backend/internal/logger"
	"github.com/sikarir/sikarir-backend/internal/models"
	"github.com/sikarir/sikarir-backend/internal/providers/model"
	mongorepo "github.com/sikarir/sikarir-backend/internal/repositories/mongo"
	pgrepo "github.com/sikarir/sikarir-backend/internal/repositories/postgres"
	"github.com/sikarir/sikarir-backend/internal/services"
	"github.com/sikarir/sikarir-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	l.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.PostgresDB.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	// Repositories
	userRepo := pgrepo.NewUserRepo(config.PostgresDB)
	db := config.MongoDatabase()
	careerRepo := mongorepo.NewCareerRepo(db)
	majorRepo := mongorepo.NewMajorRepo(db)
	resultRepo := mongorepo.NewQuizResultRepo(db)

	// Providers
	modelURL := os.Getenv("MODEL_URL")
	if modelURL == "" {
		log.Fatal("MODEL_URL environment variable is not set")
	}
	scorer := model.NewTFServing(modelURL, 15*time.Second)

	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcs, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcs.Close()
		uploader = gcs
	} else {
		l.Warn("GCS_BUCKET not set; photo upload disabled")
	}

	// Services
	rcache := cache.NewRedisCache(config.RedisClient)
	authSvc := services.NewAuthService(userRepo, os.Getenv("JWT_SECRET"), time.Hour)
	userSvc := services.NewUserService(userRepo, uploader)
	catalogSvc := services.NewCatalogService(careerRepo, majorRepo, rcache)
	quizSvc := services.NewQuizService(userRepo, catalogSvc, resultRepo, scorer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:    handlers.NewAuthHandler(authSvc),
		User:    handlers.NewUserHandler(userSvc),
		Quiz:    handlers.NewQuizHandler(quizSvc),
		Catalog: handlers.NewCatalogHandler(catalogSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
