package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kutbudev/agri-api/internal/httplog"
)

// NewRouter wires every endpoint onto a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httplog.Middleware(h.log))

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	accounts := r.Group("/accounts")
	{
		accounts.POST("/register", h.Register)
		accounts.POST("/login", h.Login)
		accounts.GET("/current", h.RequireAuth(), h.CurrentUser)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/:id", h.GetPost)
		posts.POST("", h.RequireAuth(), h.CreatePost)
		posts.PUT("/:id", h.RequireAuth(), h.UpdatePost)
		posts.DELETE("/:id", h.RequireAuth(), h.DeletePost)
	}

	r.GET("/tags", h.ListTags)

	return r
}
