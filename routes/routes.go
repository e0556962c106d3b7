package routes

import (
	"net/http"
	"time"

	"freelanceai/handlers"
	"freelanceai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFreelancerRoutes exposes the public catalog and its query engine.
func RegisterFreelancerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/freelancers")
	{
		api.POST("/search", hb.Listing.Browse)
		api.GET("/skills", hb.Listing.GetSkills)
		api.GET("/categories", hb.Listing.GetCategories)
		api.GET("/:id", hb.Listing.GetFreelancer)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes.
		api.Use(middleware.JWTAuth(hb.UserRepo))
		api.GET("/me", hb.Auth.Profile)
		api.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterPaymentRoutes registers card, escrow and crypto endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuth(hb.UserRepo))
		api.POST("/intent", hb.Payment.CreateIntent)
		api.POST("/escrow/release", hb.Payment.ReleaseEscrow)
		api.POST("/crypto/check", hb.Payment.CheckCrypto)
		api.POST("/wallet/balance", hb.Payment.WalletBalance)
		api.POST("/contracts/template", hb.Payment.ContractTemplate)
	}
}

// RegisterAssistantRoutes registers the chatbot endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuth(hb.UserRepo))
		api.POST("/chat", hb.Assistant.Chat)
		api.DELETE("/context", hb.Assistant.Reset)
	}
}

// RegisterProjectRoutes registers project management endpoints.
func RegisterProjectRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/projects")
	{
		api.Use(middleware.JWTAuth(hb.UserRepo))
		api.POST("", hb.Project.Create)
		api.GET("", hb.Project.List)
		api.GET("/:id", hb.Project.Get)
		api.PUT("/:id", hb.Project.Update)
		api.DELETE("/:id", hb.Project.Delete)

		api.POST("/:id/tasks", hb.Project.CreateTask)
		api.GET("/:id/tasks", hb.Project.ListTasks)
		api.PUT("/:id/tasks/:taskId", hb.Project.UpdateTask)
		api.DELETE("/:id/tasks/:taskId", hb.Project.DeleteTask)

		api.POST("/:id/comments", hb.Project.AddComment)
		api.GET("/:id/comments", hb.Project.ListComments)

		api.POST("/:id/files", hb.Project.UploadFile)
		api.GET("/:id/files", hb.Project.ListFiles)
		api.GET("/:id/files/:fileId/url", hb.Project.FileURL)
		api.DELETE("/:id/files/:fileId", hb.Project.DeleteFile)

		api.POST("/:id/messages", hb.Project.SendMessage)
		api.GET("/:id/messages", hb.Project.ListMessages)
	}
}

// RegisterPlanRoutes registers the subscription tier catalog.
func RegisterPlanRoutes(r *gin.Engine) {
	r.GET("/api/plans", handlers.GetPlans)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FreelanceAI"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFreelancerRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterProjectRoutes(r, hb)
	RegisterPlanRoutes(r)
	RegisterHealthRoute(r)
}
