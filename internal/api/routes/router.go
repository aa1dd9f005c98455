package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/technova-labs/portal-go/internal/api/handlers"
	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/application"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services) {
	h := handlers.New(svc)

	r.GET("/healthz", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// public form intake
		api.POST("/contact", h.Inquiry.CreateContact)
		api.POST("/quote", h.Inquiry.CreateQuote)
		api.POST("/consultation", h.Consultation.Create)

		// inquiry/booking administration
		api.GET("/inquiries", h.Inquiry.List)
		api.PATCH("/inquiries/:id/read", h.Inquiry.MarkRead)
		api.GET("/consultations", h.Consultation.List)
		api.PATCH("/consultations/:id/status", h.Consultation.UpdateStatus)

		// portal data
		api.GET("/projects", h.Project.List)
		api.POST("/projects", h.Project.Create)
		api.GET("/projects/:id", h.Project.GetByID)
		api.GET("/tasks", h.Task.List)
		api.POST("/tasks", h.Task.Create)
		api.GET("/time-entries", h.TimeEntry.List)
		api.POST("/time-entries", h.TimeEntry.Create)
		api.GET("/project-comments/:projectId", h.Comment.ListByProject)
		api.POST("/project-comments", h.Comment.Create)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.JWTAuthMiddleware(), h.Auth.Me)
		}

		// identity-scoped views; the clientId comes from the session token
		portal := api.Group("/portal")
		portal.Use(middleware.JWTAuthMiddleware())
		{
			portal.GET("/projects", h.Project.ListMine)
			portal.GET("/time-entries", h.TimeEntry.ListMine)
		}
	}
}
