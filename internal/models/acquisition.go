package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Acquisition represents a single procurement record
type Acquisition struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Presupuesto      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"presupuesto"`
	Unidad           string          `gorm:"size:200;not null" json:"unidad"`
	Tipo             string          `gorm:"size:200;not null" json:"tipo"`
	Cantidad         int             `gorm:"not null" json:"cantidad"`
	ValorUnitario    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"valorUnitario"`
	ValorTotal       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"valorTotal"`
	FechaAdquisicion time.Time       `gorm:"type:date;not null;index" json:"fechaAdquisicion"`
	Proveedor        string          `gorm:"size:200;not null" json:"proveedor"`
	Documentacion    *string         `gorm:"type:text" json:"documentacion"`
	Activo           bool            `gorm:"not null;default:true" json:"activo"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`

	// Associations
	Histories []AcquisitionHistory `gorm:"foreignKey:AcquisitionID" json:"-"`
}

// TableName specifies the table name for Acquisition
func (Acquisition) TableName() string {
	return "acquisitions"
}

// AcquisitionResponse is the JSON response format for acquisitions
type AcquisitionResponse struct {
	ID               uint            `json:"id"`
	Presupuesto      decimal.Decimal `json:"presupuesto"`
	Unidad           string          `json:"unidad"`
	Tipo             string          `json:"tipo"`
	Cantidad         int             `json:"cantidad"`
	ValorUnitario    decimal.Decimal `json:"valorUnitario"`
	ValorTotal       decimal.Decimal `json:"valorTotal"`
	FechaAdquisicion string          `json:"fechaAdquisicion"`
	Proveedor        string          `json:"proveedor"`
	Documentacion    *string         `json:"documentacion"`
	Activo           bool            `json:"activo"`
}

// ToResponse converts Acquisition to AcquisitionResponse
func (a *Acquisition) ToResponse() AcquisitionResponse {
	return AcquisitionResponse{
		ID:               a.ID,
		Presupuesto:      a.Presupuesto,
		Unidad:           a.Unidad,
		Tipo:             a.Tipo,
		Cantidad:         a.Cantidad,
		ValorUnitario:    a.ValorUnitario,
		ValorTotal:       a.ValorTotal,
		FechaAdquisicion: a.FechaAdquisicion.Format("2006-01-02"),
		Proveedor:        a.Proveedor,
		Documentacion:    a.Documentacion,
		Activo:           a.Activo,
	}
}

// AcquisitionHistory is an append-only audit entry for one mutation applied
// to an acquisition. Rows are never updated or deleted.
type AcquisitionHistory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AcquisitionID uint      `gorm:"not null;index" json:"acquisitionId"`
	Action        string    `gorm:"size:50;not null" json:"action"`
	Summary       string    `gorm:"size:255;not null" json:"summary"`
	Timestamp     time.Time `gorm:"not null;index" json:"timestamp"`

	// Associations
	Acquisition *Acquisition `gorm:"foreignKey:AcquisitionID" json:"-"`
}

// TableName specifies the table name for AcquisitionHistory
func (AcquisitionHistory) TableName() string {
	return "acquisition_histories"
}

// History action constants
const (
	HistoryActionCreated       = "CREADO"
	HistoryActionUpdated       = "ACTUALIZADO"
	HistoryActionStatusChanged = "ESTADO"
)

// AcquisitionRequest is the payload for create and full-replace update.
type AcquisitionRequest struct {
	Presupuesto      decimal.Decimal `json:"presupuesto"`
	Unidad           string          `json:"unidad"`
	Tipo             string          `json:"tipo"`
	Cantidad         int             `json:"cantidad"`
	ValorUnitario    decimal.Decimal `json:"valorUnitario"`
	FechaAdquisicion DateOnly        `json:"fechaAdquisicion"`
	Proveedor        string          `json:"proveedor"`
	Documentacion    *string         `json:"documentacion"`
}

// StatusRequest is the payload for the status toggle.
type StatusRequest struct {
	Activo bool `json:"activo"`
}

// DateOnly is a calendar date accepted as "2006-01-02" or RFC 3339.
// Unparseable input leaves the zero value so the required-date validation
// rule reports it instead of a generic binding error.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.Time = time.Time{}
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}
