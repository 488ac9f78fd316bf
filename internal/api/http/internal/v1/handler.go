package v1

import (
	"github.com/KikiG13/travelife/internal/config"
	"github.com/KikiG13/travelife/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Travelife API
// @version 1.0
// @description Destinations a user has visited or wants to visit.

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(
	services *service.Services,
	config *config.Config,
) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")
	v1.Use(h.errorMiddleware)

	h.initUsersRoutes(v1)
	h.initDestinationsRoutes(v1)
}
