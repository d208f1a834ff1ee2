package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcalbornoz/adressbackendnet/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Acquisition *AcquisitionHandler
	Catalog     *CatalogHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Acquisition: NewAcquisitionHandler(svcs.Acquisition, svcs.Export),
		Catalog:     NewCatalogHandler(svcs.Catalog),
	}
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// @Summary Health Check
// @Description Checks if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "adres-backend",
		"version": "1.0.0",
	})
}
