package services

import (
	"strings"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
)

// ValidateAcquisition checks a submitted payload against the business rules
// in a fixed order and returns the first violated rule, or nil if the payload
// is valid. It is a pure function: no repository or catalog access, and the
// unidad/tipo values are deliberately not checked against the reference lists.
func ValidateAcquisition(req *models.AcquisitionRequest) *ValidationError {
	if req.Presupuesto.IsNegative() {
		return &ValidationError{Message: "El campo 'presupuesto' debe ser mayor o igual a 0."}
	}
	if strings.TrimSpace(req.Unidad) == "" {
		return &ValidationError{Message: "El campo 'unidad' es obligatorio."}
	}
	if strings.TrimSpace(req.Tipo) == "" {
		return &ValidationError{Message: "El campo 'tipo' es obligatorio."}
	}
	if req.Cantidad <= 0 {
		return &ValidationError{Message: "El campo 'cantidad' debe ser mayor a 0."}
	}
	if req.ValorUnitario.IsNegative() {
		return &ValidationError{Message: "El campo 'valorUnitario' debe ser mayor o igual a 0."}
	}
	if strings.TrimSpace(req.Proveedor) == "" {
		return &ValidationError{Message: "El campo 'proveedor' es obligatorio."}
	}
	if req.FechaAdquisicion.IsZero() {
		return &ValidationError{Message: "La fecha de adquisición no es válida."}
	}
	return nil
}
