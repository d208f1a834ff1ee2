package services

import (
	"context"
	"strings"

	"github.com/jcalbornoz/adressbackendnet/internal/repository"
)

// CatalogService serves the two static reference lists, as a structured
// object or as a fixed XML document.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Catalogs is the JSON response format for both reference lists.
type Catalogs struct {
	UnidadesAdministrativas []string `json:"unidadesAdministrativas"`
	TiposBienServicio       []string `json:"tiposBienServicio"`
}

// Lists returns both catalogs sorted by name.
func (s *CatalogService) Lists(ctx context.Context) (*Catalogs, error) {
	unidades, err := s.repo.AdministrativeUnits(ctx)
	if err != nil {
		return nil, err
	}
	tipos, err := s.repo.GoodsServiceTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &Catalogs{
		UnidadesAdministrativas: unidades,
		TiposBienServicio:       tipos,
	}, nil
}

// XML renders both catalogs as a UTF-8 XML document with a fixed element
// layout. The document shape is a wire contract, so it is emitted directly
// instead of going through encoding/xml.
func (s *CatalogService) XML(ctx context.Context) (string, error) {
	catalogs, err := s.Lists(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<catalogos>\n")
	sb.WriteString("  <unidadesAdministrativas>\n")
	for _, u := range catalogs.UnidadesAdministrativas {
		sb.WriteString("    <unidad>" + escapeXML(u) + "</unidad>\n")
	}
	sb.WriteString("  </unidadesAdministrativas>\n")
	sb.WriteString("  <tiposBienServicio>\n")
	for _, t := range catalogs.TiposBienServicio {
		sb.WriteString("    <tipo>" + escapeXML(t) + "</tipo>\n")
	}
	sb.WriteString("  </tiposBienServicio>\n")
	sb.WriteString("</catalogos>\n")

	return sb.String(), nil
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
