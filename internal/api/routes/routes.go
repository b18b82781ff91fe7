package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sikarir/sikarir-backend/internal/api/handlers"
	"github.com/sikarir/sikarir-backend/internal/api/middleware"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Quiz    *handlers.QuizHandler
	Catalog *handlers.CatalogHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/register", d.Auth.Register)
	r.POST("/login", d.Auth.Login)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/profile/me", d.User.Me)
	auth.PUT("/edit-account", d.User.EditAccount)
	auth.POST("/profile/photo", d.User.UploadPhoto)

	auth.POST("/quiz", d.Quiz.Submit)
	auth.GET("/quiz/history", d.Quiz.History)

	auth.GET("/careers", d.Catalog.ListCareers)
	auth.GET("/careers/search", d.Catalog.SearchCareers)
	auth.GET("/careers/:id", d.Catalog.GetCareer)
	auth.GET("/majors", d.Catalog.ListMajors)
	auth.GET("/majors/search", d.Catalog.SearchMajors)
	auth.GET("/majors/:id", d.Catalog.GetMajor)
}
