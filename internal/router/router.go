package router

import (
	"tribune/internal/handlers"
	"tribune/internal/middleware"

	"github.com/gin-gonic/gin"
)

// New builds the engine with the full route table. Kept separate from main so
// handler tests can run against the same routing.
func New() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.LoadUser())
	RegisterRoutes(r)
	return r
}

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	userHandler := handlers.NewUserHandler()
	topicHandler := handlers.NewTopicHandler()
	replyHandler := handlers.NewReplyHandler()
	searchHandler := handlers.NewSearchHandler()

	// Public Routes
	r.POST("/register/", authHandler.Register)
	r.POST("/login/", authHandler.Login)

	r.GET("/user/", userHandler.List)
	r.POST("/user/", userHandler.Create) // open creation, same validation as register
	r.GET("/user/:id/", userHandler.Retrieve)
	r.PUT("/user/:id/", userHandler.Update)
	r.PATCH("/user/:id/", userHandler.Update)
	r.DELETE("/user/:id/", userHandler.Destroy)

	r.GET("/topics/", topicHandler.List)
	r.GET("/topics/:id/", topicHandler.Retrieve) // bumps the view counter
	r.GET("/topics/:id/replies/", replyHandler.ListByTopic)
	r.GET("/replies/:id/", replyHandler.Retrieve)

	r.GET("/search/", searchHandler.Search)
	r.GET("/search/stats/", searchHandler.Stats)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me/", authHandler.Me)
		authorized.PUT("/profile/", authHandler.UpdateProfile)
		authorized.PATCH("/profile/", authHandler.UpdateProfile)

		authorized.POST("/topics/", topicHandler.Create)
		authorized.PUT("/topics/:id/", topicHandler.Update)
		authorized.PATCH("/topics/:id/", topicHandler.Update)
		authorized.DELETE("/topics/:id/", topicHandler.Destroy)

		authorized.POST("/topics/:id/replies/", replyHandler.Create)
		authorized.PUT("/replies/:id/", replyHandler.Update)
		authorized.PATCH("/replies/:id/", replyHandler.Update)
		authorized.DELETE("/replies/:id/", replyHandler.Destroy)
	}
}
