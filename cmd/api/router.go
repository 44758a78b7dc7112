package api

import (
	"net/http"

	agendaDelivery "agenda-backend/internal/agenda/delivery"
	agendaUsecasePkg "agenda-backend/internal/agenda/usecase"
	authDelivery "agenda-backend/internal/auth/delivery"
	authUsecasePkg "agenda-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecasePkg.AuthUsecase, agendaUsecase agendaUsecasePkg.AgendaUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUsecase)
	agendaHandler := agendaDelivery.NewAgendaHandler(agendaUsecase)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/me", authDelivery.AuthMiddleware(authUsecase), authHandler.Me)

	// Categoria routes (protected)
	categorias := r.Group("/categorias")
	categorias.Use(authDelivery.AuthMiddleware(authUsecase))
	{
		categorias.POST("/", agendaHandler.CreateCategoria)
		categorias.GET("/", agendaHandler.GetCategorias)
		categorias.GET("/:id", agendaHandler.GetCategorias)
		categorias.PUT("/:id", agendaHandler.UpdateCategoria)
		categorias.DELETE("/:id", agendaHandler.DeleteCategoria)
	}

	// Actividad routes (protected)
	actividades := r.Group("/actividades")
	actividades.Use(authDelivery.AuthMiddleware(authUsecase))
	{
		actividades.POST("/", agendaHandler.CreateActividad)
		actividades.GET("/", agendaHandler.GetActividades)
		actividades.GET("/:id", agendaHandler.GetActividades)
		actividades.PUT("/:id", agendaHandler.UpdateActividad)
		actividades.DELETE("/:id", agendaHandler.DeleteActividad)
	}

	// Recordatorio routes (protected)
	recordatorios := r.Group("/recordatorios")
	recordatorios.Use(authDelivery.AuthMiddleware(authUsecase))
	{
		recordatorios.POST("/", agendaHandler.CreateRecordatorio)
		recordatorios.GET("/", agendaHandler.GetRecordatorios)
		recordatorios.GET("/:id", agendaHandler.GetRecordatorios)
		recordatorios.PUT("/:id", agendaHandler.UpdateRecordatorio)
		recordatorios.DELETE("/:id", agendaHandler.DeleteRecordatorio)
	}
}
