// Package alerta contiene las reglas de negocio puras del motor de
// vencimientos: clasificación de severidad por días restantes, síntesis de
// ids de alertas derivadas y aritmética de fechas calendario.
//
// Estas reglas estaban duplicadas (con umbrales distintos) en cada endpoint
// del back-office; acá viven una sola vez y se configuran por Politica.
package alerta

import (
	"fmt"
	"strings"
	"time"

	"github.com/gescop/gescop-api/internal/domain/entity"
)

// Politica umbrales de severidad, inyectada al construir el clasificador y el
// agregador. Los límites superiores son inclusivos: con DiasAlto=7, el día 7
// todavía es Alto y el día 8 pasa a Medio.
type Politica struct {
	DiasAlto  int // bucket Alto: 0 < d <= DiasAlto
	DiasMedio int // bucket Medio: DiasAlto < d <= DiasMedio
}

// PoliticaDefault umbrales unificados del back-office (7 / 30 días).
func PoliticaDefault() Politica {
	return Politica{DiasAlto: 7, DiasMedio: 30}
}

// Clasificar mapea días restantes a severidad. nil (sin fecha de vencimiento)
// es Informativo; cero o negativo (vencido) es Critico.
func (p Politica) Clasificar(dias *int) entity.Severidad {
	if dias == nil {
		return entity.SeveridadInformativo
	}
	d := *dias
	switch {
	case d <= 0:
		return entity.SeveridadCritico
	case d <= p.DiasAlto:
		return entity.SeveridadAlto
	case d <= p.DiasMedio:
		return entity.SeveridadMedio
	default:
		return entity.SeveridadBajo
	}
}

// DiasEntre devuelve la diferencia en días calendario entre dos instantes,
// truncando ambos a su fecha en la zona horaria de reporte. La resta se hace
// sobre los componentes de calendario, no sobre la duración real del lapso,
// así un cambio de hora dentro del rango no corre los umbrales.
func DiasEntre(desde, hasta time.Time, loc *time.Location) int {
	y0, m0, d0 := desde.In(loc).Date()
	y1, m1, d1 := hasta.In(loc).Date()
	u0 := time.Date(y0, m0, d0, 0, 0, 0, 0, time.UTC)
	u1 := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	return int(u1.Sub(u0) / (24 * time.Hour))
}

// Fecha trunca un instante a su fecha calendario en la zona de reporte.
func Fecha(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// FechaCalendario reinterpreta un valor que transporta una fecha pura en la
// zona de reporte. Las columnas DATE llegan de pgx como medianoche UTC y una
// conversión con In() las correría al día anterior en cualquier zona al oeste
// de Greenwich: acá se toman los componentes año/mes/día tal cual vienen y se
// reconstruye la medianoche en loc.
func FechaCalendario(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Prefijos de id sintetizado por tipo de entidad.
var prefijos = map[entity.TipoEntidad]string{
	entity.TipoVehiculo:  "VEH",
	entity.TipoPersonal:  "PER",
	entity.TipoProveedor: "PRO",
	entity.TipoSede:      "SED",
}

// Categoría de alerta por tipo de entidad de origen.
var categorias = map[entity.TipoEntidad]entity.Categoria{
	entity.TipoVehiculo:  entity.CategoriaVehiculos,
	entity.TipoPersonal:  entity.CategoriaPersonal,
	entity.TipoProveedor: entity.CategoriaProveedores,
	entity.TipoSede:      entity.CategoriaSedes,
}

// SintetizarID arma el id determinístico de una alerta derivada:
// "{prefijo}-{entidadID}-{regla}", ej. "VEH-42-VTV".
func SintetizarID(tipo entity.TipoEntidad, entidadID, regla string) string {
	prefijo, ok := prefijos[tipo]
	if !ok {
		prefijo = "OTR"
	}
	return fmt.Sprintf("%s-%s-%s", prefijo, entidadID, regla)
}

// CategoriaDe devuelve la categoría de alerta para un tipo de entidad.
func CategoriaDe(tipo entity.TipoEntidad) entity.Categoria {
	if c, ok := categorias[tipo]; ok {
		return c
	}
	return entity.CategoriaOtros
}

// EsIDDerivado reconoce los ids sintetizados de alertas derivadas (los ids de
// alertas manuales son UUIDs y nunca llevan estos prefijos).
func EsIDDerivado(id string) bool {
	for _, p := range prefijos {
		if strings.HasPrefix(id, p+"-") {
			return true
		}
	}
	return false
}
