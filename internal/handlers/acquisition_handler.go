package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"github.com/jcalbornoz/adressbackendnet/internal/repository"
	"github.com/jcalbornoz/adressbackendnet/internal/services"
)

type AcquisitionHandler struct {
	acquisitionService *services.AcquisitionService
	exportService      *services.ExportService
}

func NewAcquisitionHandler(acquisitionService *services.AcquisitionService, exportService *services.ExportService) *AcquisitionHandler {
	return &AcquisitionHandler{
		acquisitionService: acquisitionService,
		exportService:      exportService,
	}
}

// @Summary List Acquisitions
// @Description Get acquisitions filtered by unit, type, provider, status and date range, newest first
// @Tags Acquisitions
// @Produce json
// @Param unidad query string false "Administrative unit (substring)"
// @Param tipo query string false "Goods/service type (substring)"
// @Param proveedor query string false "Provider (substring)"
// @Param estado query string false "ACTIVO or INACTIVO; any other value is ignored"
// @Param fechaDesde query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param fechaHasta query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} models.AcquisitionResponse
// @Router /acquisitions [get]
func (h *AcquisitionHandler) Index(c *gin.Context) {
	filters := parseFilters(c)

	acquisitions, err := h.acquisitionService.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.AcquisitionResponse, 0, len(acquisitions))
	for _, acq := range acquisitions {
		responses = append(responses, acq.ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Get Acquisition
// @Description Get one acquisition by id
// @Tags Acquisitions
// @Produce json
// @Param id path int true "Acquisition ID"
// @Success 200 {object} models.AcquisitionResponse
// @Failure 404 {object} map[string]string
// @Router /acquisitions/{id} [get]
func (h *AcquisitionHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	acq, err := h.acquisitionService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acq.ToResponse())
}

// @Summary Create Acquisition
// @Description Create a new acquisition; the total value is derived from cantidad × valorUnitario
// @Tags Acquisitions
// @Accept json
// @Produce json
// @Param acquisition body models.AcquisitionRequest true "Acquisition payload"
// @Success 201 {object} models.AcquisitionResponse
// @Failure 400 {object} map[string]string
// @Router /acquisitions [post]
func (h *AcquisitionHandler) Create(c *gin.Context) {
	var req models.AcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El cuerpo de la solicitud no es válido."})
		return
	}

	acq, err := h.acquisitionService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/acquisitions/%d", acq.ID))
	c.JSON(http.StatusCreated, acq.ToResponse())
}

// @Summary Update Acquisition
// @Description Full replace of every field; the total value is recomputed
// @Tags Acquisitions
// @Accept json
// @Produce json
// @Param id path int true "Acquisition ID"
// @Param acquisition body models.AcquisitionRequest true "Acquisition payload"
// @Success 200 {object} models.AcquisitionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /acquisitions/{id} [put]
func (h *AcquisitionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.AcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El cuerpo de la solicitud no es válido."})
		return
	}

	acq, err := h.acquisitionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acq.ToResponse())
}

// @Summary Change Acquisition Status
// @Description Toggle the active flag; no other field changes
// @Tags Acquisitions
// @Accept json
// @Produce json
// @Param id path int true "Acquisition ID"
// @Param status body models.StatusRequest true "New status"
// @Success 200 {object} models.AcquisitionResponse
// @Failure 404 {object} map[string]string
// @Router /acquisitions/{id}/status [patch]
func (h *AcquisitionHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El cuerpo de la solicitud no es válido."})
		return
	}

	acq, err := h.acquisitionService.SetStatus(c.Request.Context(), id, req.Activo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acq.ToResponse())
}

// @Summary Get Acquisition History
// @Description Audit entries for one acquisition, newest first
// @Tags Acquisitions
// @Produce json
// @Param id path int true "Acquisition ID"
// @Success 200 {array} models.AcquisitionHistory
// @Failure 404 {object} map[string]string
// @Router /acquisitions/{id}/history [get]
func (h *AcquisitionHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.acquisitionService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if entries == nil {
		entries = []models.AcquisitionHistory{}
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Export Acquisitions
// @Description Download the filtered acquisition list as XLSX or CSV
// @Tags Acquisitions
// @Produce application/octet-stream
// @Param format query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Router /acquisitions/export [get]
func (h *AcquisitionHandler) Export(c *gin.Context) {
	filters := parseFilters(c)

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		data, filename, err = h.exportService.CSV(c.Request.Context(), filters)
		contentType = "text/csv; charset=utf-8"
	default:
		data, filename, err = h.exportService.XLSX(c.Request.Context(), filters)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// parseFilters reads the optional list filters from the query string.
// Malformed dates are ignored rather than rejected.
func parseFilters(c *gin.Context) *repository.AcquisitionFilters {
	filters := &repository.AcquisitionFilters{
		Unidad:    c.Query("unidad"),
		Tipo:      c.Query("tipo"),
		Proveedor: c.Query("proveedor"),
		Estado:    c.Query("estado"),
	}
	if desde := c.Query("fechaDesde"); desde != "" {
		if t, err := time.Parse("2006-01-02", desde); err == nil {
			filters.FechaDesde = &t
		}
	}
	if hasta := c.Query("fechaHasta"); hasta != "" {
		if t, err := time.Parse("2006-01-02", hasta); err == nil {
			filters.FechaHasta = &t
		}
	}
	return filters
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No encontrado"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the two client error kinds; anything
// else is a generic failure.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
