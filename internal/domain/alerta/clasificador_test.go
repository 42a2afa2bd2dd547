package alerta_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescop/gescop-api/internal/domain/alerta"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestClasificar valida los bordes exactos de cada bucket de severidad.
//
// Los límites superiores son inclusivos: día 7 → Alto (no Medio), día 30 →
// Medio (no Bajo). Un off-by-one acá cambia el día en que un vencimiento pasa
// a "próximo", que es exactamente el bug que este módulo vino a eliminar.
// ──────────────────────────────────────────────────────────────────────────────

func dias(n int) *int { return &n }

func TestClasificar_Bordes(t *testing.T) {
	p := alerta.PoliticaDefault()

	casos := []struct {
		nombre   string
		dias     *int
		esperado entity.Severidad
	}{
		{"muy vencido", dias(-120), entity.SeveridadCritico},
		{"vencido ayer", dias(-1), entity.SeveridadCritico},
		{"vence hoy", dias(0), entity.SeveridadCritico},
		{"vence mañana", dias(1), entity.SeveridadAlto},
		{"dia 7 sigue siendo Alto", dias(7), entity.SeveridadAlto},
		{"dia 8 pasa a Medio", dias(8), entity.SeveridadMedio},
		{"dia 30 sigue siendo Medio", dias(30), entity.SeveridadMedio},
		{"dia 31 pasa a Bajo", dias(31), entity.SeveridadBajo},
		{"muy lejano", dias(365), entity.SeveridadBajo},
		{"sin fecha", nil, entity.SeveridadInformativo},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, p.Clasificar(c.dias))
		})
	}
}

// La política es configurable por env; un umbral distinto corre los bordes.
func TestClasificar_PoliticaCustom(t *testing.T) {
	p := alerta.Politica{DiasAlto: 15, DiasMedio: 60}

	assert.Equal(t, entity.SeveridadAlto, p.Clasificar(dias(15)))
	assert.Equal(t, entity.SeveridadMedio, p.Clasificar(dias(16)))
	assert.Equal(t, entity.SeveridadMedio, p.Clasificar(dias(60)))
	assert.Equal(t, entity.SeveridadBajo, p.Clasificar(dias(61)))
}

func TestDiasEntre_FechasCalendario(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	// La hora del día no afecta el cálculo: 23:59 de hoy a 00:01 de mañana es 1 día.
	hoy := time.Date(2026, 3, 10, 23, 59, 0, 0, loc)
	maniana := time.Date(2026, 3, 11, 0, 1, 0, 0, loc)
	assert.Equal(t, 1, alerta.DiasEntre(hoy, maniana, loc))

	// Mismo día, horas distintas → 0 días.
	assert.Equal(t, 0, alerta.DiasEntre(
		time.Date(2026, 3, 10, 1, 0, 0, 0, loc),
		time.Date(2026, 3, 10, 22, 0, 0, 0, loc),
		loc,
	))

	// Vencimiento pasado → negativo.
	assert.Equal(t, -5, alerta.DiasEntre(
		time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
		time.Date(2026, 3, 5, 12, 0, 0, 0, loc),
		loc,
	))
}

// Un cambio de hora dentro del rango no puede mover el conteo: la resta es
// entre fechas de calendario, no entre duraciones reales.
func TestDiasEntre_CambioDeHora(t *testing.T) {
	stgo, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	// Semana con adelanto de reloj (el lapso real dura una hora menos).
	assert.Equal(t, 8, alerta.DiasEntre(
		time.Date(2026, 9, 1, 0, 0, 0, 0, stgo),
		time.Date(2026, 9, 9, 0, 0, 0, 0, stgo),
		stgo,
	))

	// Semana con atraso de reloj (dura una hora más).
	assert.Equal(t, 8, alerta.DiasEntre(
		time.Date(2026, 4, 1, 0, 0, 0, 0, stgo),
		time.Date(2026, 4, 9, 0, 0, 0, 0, stgo),
		stgo,
	))
}

// Una columna DATE llega de pgx como medianoche UTC; FechaCalendario debe
// conservar ese día calendario al pasarlo a la zona de reporte, a diferencia
// de una conversión de instante.
func TestFechaCalendario_ConservaElDia(t *testing.T) {
	ba, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	columnaDATE := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	f := alerta.FechaCalendario(columnaDATE, ba)
	assert.Equal(t, "2026-03-17", f.Format("2006-01-02"))
	assert.Equal(t, ba, f.Location())

	// La conversión de instante corre el día hacia atrás; por eso no se usa
	// para valores que transportan una fecha pura.
	assert.Equal(t, "2026-03-16", alerta.Fecha(columnaDATE, ba).Format("2006-01-02"))

	// Sobre una medianoche ya expresada en la zona de reporte es neutra.
	local := time.Date(2026, 3, 17, 0, 0, 0, 0, ba)
	assert.True(t, alerta.FechaCalendario(local, ba).Equal(local))
}

func TestSintetizarID(t *testing.T) {
	assert.Equal(t, "VEH-42-VTV", alerta.SintetizarID(entity.TipoVehiculo, "42", "VTV"))
	assert.Equal(t, "PER-7-Licencia", alerta.SintetizarID(entity.TipoPersonal, "7", "Licencia"))
	assert.Equal(t, "PRO-3-Contrato", alerta.SintetizarID(entity.TipoProveedor, "3", "Contrato"))
	assert.Equal(t, "SED-1-Habilitacion", alerta.SintetizarID(entity.TipoSede, "1", "Habilitacion"))
}

func TestEsIDDerivado(t *testing.T) {
	assert.True(t, alerta.EsIDDerivado("VEH-42-VTV"))
	assert.True(t, alerta.EsIDDerivado("SED-1-Permiso"))
	assert.False(t, alerta.EsIDDerivado("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, alerta.EsIDDerivado("VEHICULO-42"))
}

func TestCategoriaDe(t *testing.T) {
	assert.Equal(t, entity.CategoriaVehiculos, alerta.CategoriaDe(entity.TipoVehiculo))
	assert.Equal(t, entity.CategoriaOtros, alerta.CategoriaDe(entity.TipoEntidad("desconocido")))
}
