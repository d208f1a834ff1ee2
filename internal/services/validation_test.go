package services

import (
	"testing"
	"time"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *models.AcquisitionRequest {
	doc := "Orden de compra 123"
	return &models.AcquisitionRequest{
		Presupuesto:      decimal.NewFromInt(1000),
		Unidad:           "Dirección General",
		Tipo:             "Medicamentos",
		Cantidad:         10,
		ValorUnitario:    decimal.RequireFromString("5.5"),
		FechaAdquisicion: models.DateOnly{Time: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		Proveedor:        "ACME",
		Documentacion:    &doc,
	}
}

func TestValidateAcquisition_Valid(t *testing.T) {
	assert.Nil(t, ValidateAcquisition(validRequest()))
}

func TestValidateAcquisition_RuleOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.AcquisitionRequest)
		message string
	}{
		{
			name:    "negative presupuesto",
			mutate:  func(r *models.AcquisitionRequest) { r.Presupuesto = decimal.NewFromInt(-1) },
			message: "El campo 'presupuesto' debe ser mayor o igual a 0.",
		},
		{
			name:    "blank unidad",
			mutate:  func(r *models.AcquisitionRequest) { r.Unidad = "   " },
			message: "El campo 'unidad' es obligatorio.",
		},
		{
			name:    "blank tipo",
			mutate:  func(r *models.AcquisitionRequest) { r.Tipo = "" },
			message: "El campo 'tipo' es obligatorio.",
		},
		{
			name:    "zero cantidad",
			mutate:  func(r *models.AcquisitionRequest) { r.Cantidad = 0 },
			message: "El campo 'cantidad' debe ser mayor a 0.",
		},
		{
			name:    "negative cantidad",
			mutate:  func(r *models.AcquisitionRequest) { r.Cantidad = -3 },
			message: "El campo 'cantidad' debe ser mayor a 0.",
		},
		{
			name:    "negative valorUnitario",
			mutate:  func(r *models.AcquisitionRequest) { r.ValorUnitario = decimal.RequireFromString("-0.01") },
			message: "El campo 'valorUnitario' debe ser mayor o igual a 0.",
		},
		{
			name:    "blank proveedor",
			mutate:  func(r *models.AcquisitionRequest) { r.Proveedor = " " },
			message: "El campo 'proveedor' es obligatorio.",
		},
		{
			name:    "zero fecha",
			mutate:  func(r *models.AcquisitionRequest) { r.FechaAdquisicion = models.DateOnly{} },
			message: "La fecha de adquisición no es válida.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			verr := ValidateAcquisition(req)
			require.NotNil(t, verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

// First failure wins: a payload violating several rules reports the earliest.
func TestValidateAcquisition_FirstFailureWins(t *testing.T) {
	req := validRequest()
	req.Presupuesto = decimal.NewFromInt(-5)
	req.Unidad = ""
	req.Cantidad = 0

	verr := ValidateAcquisition(req)
	require.NotNil(t, verr)
	assert.Equal(t, "El campo 'presupuesto' debe ser mayor o igual a 0.", verr.Message)
}

func TestValidateAcquisition_ZeroValuesAllowed(t *testing.T) {
	req := validRequest()
	req.Presupuesto = decimal.Zero
	req.ValorUnitario = decimal.Zero
	assert.Nil(t, ValidateAcquisition(req))
}
