package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcalbornoz/adressbackendnet/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// @Summary Get Catalogs
// @Description Both reference lists sorted by name
// @Tags Catalogs
// @Produce json
// @Success 200 {object} services.Catalogs
// @Router /catalogs [get]
func (h *CatalogHandler) Index(c *gin.Context) {
	catalogs, err := h.catalogService.Lists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogs)
}

// @Summary Get Catalogs as XML
// @Description Both reference lists as a UTF-8 XML document
// @Tags Catalogs
// @Produce xml
// @Success 200 {string} string
// @Router /catalogs/xml [get]
func (h *CatalogHandler) XML(c *gin.Context) {
	doc, err := h.catalogService.XML(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(doc))
}
