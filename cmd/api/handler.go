package api

import (
	agendaUsecasePkg "agenda-backend/internal/agenda/usecase"
	authUsecasePkg "agenda-backend/internal/auth/usecase"
	"agenda-backend/pkg/config"
	"agenda-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecasePkg.AuthUsecase
	agendaUsecase agendaUsecasePkg.AgendaUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, agendaUc agendaUsecasePkg.AgendaUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		agendaUsecase: agendaUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	httperr.UseJSONFieldNames()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.agendaUsecase)

	return r.Run(addr)
}
