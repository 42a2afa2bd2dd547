package reportes

import (
	"context"
	"time"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

// ReportePDFGenerator puerto del generador de la versión imprimible del
// reporte de vencimientos.
type ReportePDFGenerator interface {
	GenerarReporteVencimientos(ctx context.Context, corte time.Time, alertas []*entity.Alerta) ([]byte, error)
}

// PDFUseCase arma el reporte imprimible de vencimientos del back-office:
// la agregación vigente completa, volcada a una tabla PDF.
type PDFUseCase struct {
	agregador *alertas.Agregador
	generator ReportePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(agregador *alertas.Agregador, generator ReportePDFGenerator) *PDFUseCase {
	return &PDFUseCase{agregador: agregador, generator: generator}
}

// Generar produce los bytes del PDF con las alertas vigentes al corte.
// Las archivadas no se imprimen.
func (uc *PDFUseCase) Generar(ctx context.Context) ([]byte, []string, error) {
	corte := uc.agregador.Hoy()
	todas, warnings, err := uc.agregador.Agregar(ctx, corte)
	if err != nil {
		return nil, warnings, err
	}
	visibles := make([]*entity.Alerta, 0, len(todas))
	for _, al := range todas {
		if !al.Archivada() {
			visibles = append(visibles, al)
		}
	}
	pdf, err := uc.generator.GenerarReporteVencimientos(ctx, corte, visibles)
	if err != nil {
		return nil, warnings, err
	}
	return pdf, warnings, nil
}
