package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"github.com/jcalbornoz/adressbackendnet/internal/repository"
	"github.com/jcalbornoz/adressbackendnet/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockAcquisitionRepo struct {
	repository.AcquisitionRepository
	findByID          func(ctx context.Context, id uint) (*models.Acquisition, error)
	exists            func(ctx context.Context, id uint) (bool, error)
	list              func(ctx context.Context, filters *repository.AcquisitionFilters) ([]models.Acquisition, error)
	createWithHistory func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error
	saveWithHistory   func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error
	listHistory       func(ctx context.Context, acquisitionID uint) ([]models.AcquisitionHistory, error)
}

func (m *mockAcquisitionRepo) FindByID(ctx context.Context, id uint) (*models.Acquisition, error) {
	return m.findByID(ctx, id)
}

func (m *mockAcquisitionRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return m.exists(ctx, id)
}

func (m *mockAcquisitionRepo) List(ctx context.Context, filters *repository.AcquisitionFilters) ([]models.Acquisition, error) {
	return m.list(ctx, filters)
}

func (m *mockAcquisitionRepo) CreateWithHistory(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
	return m.createWithHistory(ctx, acq, entry)
}

func (m *mockAcquisitionRepo) SaveWithHistory(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
	return m.saveWithHistory(ctx, acq, entry)
}

func (m *mockAcquisitionRepo) ListHistory(ctx context.Context, acquisitionID uint) ([]models.AcquisitionHistory, error) {
	return m.listHistory(ctx, acquisitionID)
}

func newTestRouter(repo *mockAcquisitionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	historySvc := services.NewHistoryService(repo)
	acquisitionSvc := services.NewAcquisitionService(repo, historySvc)
	exportSvc := services.NewExportService(repo)
	h := NewAcquisitionHandler(acquisitionSvc, exportSvc)

	router := gin.New()
	api := router.Group("/api")
	acquisitions := api.Group("/acquisitions")
	{
		acquisitions.GET("", h.Index)
		acquisitions.POST("", h.Create)
		acquisitions.GET("/export", h.Export)
		acquisitions.GET("/:id", h.Show)
		acquisitions.PUT("/:id", h.Update)
		acquisitions.PATCH("/:id/status", h.UpdateStatus)
		acquisitions.GET("/:id/history", h.History)
	}
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonBytes)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func creationPayload() map[string]interface{} {
	return map[string]interface{}{
		"presupuesto":      1000,
		"unidad":           "Dirección General",
		"tipo":             "Medicamentos",
		"cantidad":         10,
		"valorUnitario":    5.5,
		"fechaAdquisicion": "2024-01-10",
		"proveedor":        "ACME",
	}
}

func TestCreateAcquisition(t *testing.T) {
	repo := &mockAcquisitionRepo{
		createWithHistory: func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
			acq.ID = 7
			entry.AcquisitionID = acq.ID
			return nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "POST", "/api/acquisitions", creationPayload())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/acquisitions/7", w.Header().Get("Location"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, float64(55), resp["valorTotal"])
	assert.Equal(t, true, resp["activo"])
	assert.Equal(t, "2024-01-10", resp["fechaAdquisicion"])
	assert.Equal(t, "ACME", resp["proveedor"])
}

func TestCreateAcquisition_ValidationError(t *testing.T) {
	repo := &mockAcquisitionRepo{
		createWithHistory: func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
			t.Fatal("nothing may be persisted for an invalid payload")
			return nil
		},
	}
	router := newTestRouter(repo)

	payload := creationPayload()
	payload["cantidad"] = 0

	w := performJSON(router, "POST", "/api/acquisitions", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "El campo 'cantidad' debe ser mayor a 0.", resp["error"])
}

func TestCreateAcquisition_UnparseableDateFailsValidation(t *testing.T) {
	router := newTestRouter(&mockAcquisitionRepo{
		createWithHistory: func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
			t.Fatal("nothing may be persisted for an invalid payload")
			return nil
		},
	})

	payload := creationPayload()
	payload["fechaAdquisicion"] = "no es una fecha"

	w := performJSON(router, "POST", "/api/acquisitions", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "La fecha de adquisición no es válida.", resp["error"])
}

func TestShowAcquisition_NotFound(t *testing.T) {
	repo := &mockAcquisitionRepo{
		findByID: func(ctx context.Context, id uint) (*models.Acquisition, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "GET", "/api/acquisitions/9999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No encontrado", resp["error"])
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	repo := &mockAcquisitionRepo{
		findByID: func(ctx context.Context, id uint) (*models.Acquisition, error) {
			return nil, gorm.ErrRecordNotFound
		},
		saveWithHistory: func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
			t.Fatal("no history row may be written for an unknown id")
			return nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "PATCH", "/api/acquisitions/9999/status", map[string]interface{}{"activo": false})

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No encontrado", resp["error"])
}

func TestUpdateStatus(t *testing.T) {
	stored := &models.Acquisition{
		ID:               42,
		Presupuesto:      decimal.NewFromInt(1000),
		Unidad:           "Dirección General",
		Tipo:             "Medicamentos",
		Cantidad:         10,
		ValorUnitario:    decimal.RequireFromString("5.5"),
		ValorTotal:       decimal.RequireFromString("55.00"),
		FechaAdquisicion: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Proveedor:        "ACME",
		Activo:           true,
	}
	repo := &mockAcquisitionRepo{
		findByID: func(ctx context.Context, id uint) (*models.Acquisition, error) {
			return stored, nil
		},
		saveWithHistory: func(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
			return nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "PATCH", "/api/acquisitions/42/status", map[string]interface{}{"activo": false})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["activo"])
	assert.Equal(t, "ACME", resp["proveedor"])
}

func TestListAcquisitions_FilterParsing(t *testing.T) {
	var captured *repository.AcquisitionFilters
	repo := &mockAcquisitionRepo{
		list: func(ctx context.Context, filters *repository.AcquisitionFilters) ([]models.Acquisition, error) {
			captured = filters
			return nil, nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "GET", "/api/acquisitions?unidad=General&estado=activo&fechaDesde=2024-01-01&fechaHasta=2024-02-01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "General", captured.Unidad)
	assert.Equal(t, "activo", captured.Estado)
	require.NotNil(t, captured.FechaDesde)
	assert.Equal(t, "2024-01-01", captured.FechaDesde.Format("2006-01-02"))
	require.NotNil(t, captured.FechaHasta)
	assert.Equal(t, "2024-02-01", captured.FechaHasta.Format("2006-01-02"))

	// Empty result serializes as an empty array, not null
	assert.Equal(t, "[]", w.Body.String())
}

func TestListAcquisitions_MalformedDatesIgnored(t *testing.T) {
	var captured *repository.AcquisitionFilters
	repo := &mockAcquisitionRepo{
		list: func(ctx context.Context, filters *repository.AcquisitionFilters) ([]models.Acquisition, error) {
			captured = filters
			return nil, nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "GET", "/api/acquisitions?fechaDesde=ayer&fechaHasta=2024-13-99", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Nil(t, captured.FechaDesde)
	assert.Nil(t, captured.FechaHasta)
}

func TestHistory_UnknownID(t *testing.T) {
	repo := &mockAcquisitionRepo{
		exists: func(ctx context.Context, id uint) (bool, error) {
			return false, nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "GET", "/api/acquisitions/9999/history", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory_NewestFirst(t *testing.T) {
	repo := &mockAcquisitionRepo{
		exists: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
		listHistory: func(ctx context.Context, acquisitionID uint) ([]models.AcquisitionHistory, error) {
			return []models.AcquisitionHistory{
				{ID: 2, AcquisitionID: 42, Action: models.HistoryActionStatusChanged, Summary: "Estado cambiado a INACTIVO", Timestamp: time.Now().UTC()},
				{ID: 1, AcquisitionID: 42, Action: models.HistoryActionCreated, Summary: "Registro creado con proveedor ACME", Timestamp: time.Now().UTC().Add(-time.Hour)},
			}, nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "GET", "/api/acquisitions/42/history", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "ESTADO", entries[0]["action"])
	assert.Equal(t, "CREADO", entries[1]["action"])
}

func TestExportAcquisitions_CSV(t *testing.T) {
	repo := &mockAcquisitionRepo{
		list: func(ctx context.Context, filters *repository.AcquisitionFilters) ([]models.Acquisition, error) {
			return nil, nil
		},
	}
	router := newTestRouter(repo)

	w := performJSON(router, "GET", "/api/acquisitions/export?format=csv", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Proveedor")
}
