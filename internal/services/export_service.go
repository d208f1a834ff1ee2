package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jcalbornoz/adressbackendnet/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService renders the filtered acquisition list as a downloadable
// XLSX or CSV file. It applies the same filters as the list endpoint.
type ExportService struct {
	repo repository.AcquisitionRepository
}

func NewExportService(repo repository.AcquisitionRepository) *ExportService {
	return &ExportService{repo: repo}
}

var exportHeaders = []string{
	"ID", "Presupuesto", "Unidad", "Tipo", "Cantidad",
	"Valor Unitario", "Valor Total", "Fecha Adquisición",
	"Proveedor", "Documentación", "Estado",
}

func (s *ExportService) XLSX(ctx context.Context, filters *repository.AcquisitionFilters) ([]byte, string, error) {
	acquisitions, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Adquisiciones"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, a := range acquisitions {
		values := []interface{}{
			a.ID,
			a.Presupuesto.InexactFloat64(),
			a.Unidad,
			a.Tipo,
			a.Cantidad,
			a.ValorUnitario.InexactFloat64(),
			a.ValorTotal.InexactFloat64(),
			a.FechaAdquisicion.Format("2006-01-02"),
			a.Proveedor,
			optionalText(a.Documentacion),
			estadoLabel(a.Activo),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("adquisiciones_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) CSV(ctx context.Context, filters *repository.AcquisitionFilters) ([]byte, string, error) {
	acquisitions, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write(exportHeaders)
	for _, a := range acquisitions {
		_ = writer.Write([]string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Presupuesto.StringFixed(2),
			a.Unidad,
			a.Tipo,
			strconv.Itoa(a.Cantidad),
			a.ValorUnitario.StringFixed(2),
			a.ValorTotal.StringFixed(2),
			a.FechaAdquisicion.Format("2006-01-02"),
			a.Proveedor,
			optionalText(a.Documentacion),
			estadoLabel(a.Activo),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("adquisiciones_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func estadoLabel(activo bool) string {
	if activo {
		return "ACTIVO"
	}
	return "INACTIVO"
}

func optionalText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
