package alertas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

func TestResumir_ConteosPorSeveridadYCategoria(t *testing.T) {
	corte := corteTest()
	fuente := &fuenteFija{nombre: "mixta", vencs: []entity.Vencimiento{
		vencVehiculo("1", "AA111AA Fiat", "VTV", enDias(corte, -3)),     // Critico
		vencVehiculo("2", "BB222BB Scania", "Seguro", enDias(corte, 5)), // Alto
		vencPersonal("3", "Gómez, Ana", "Licencia", enDias(corte, 20)),  // Medio
	}}
	repo := nuevoRepoMemoria()
	motor := armarMotor(repo, fuente)
	stats := alertas.NewEstadisticas(motor, repo)

	r, warnings, err := stats.Resumir(context.Background(), corte)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.PorSeveridad[entity.SeveridadCritico])
	assert.Equal(t, 1, r.PorSeveridad[entity.SeveridadAlto])
	assert.Equal(t, 1, r.PorSeveridad[entity.SeveridadMedio])
	assert.Equal(t, 2, r.PorCategoria[entity.CategoriaVehiculos])
	assert.Equal(t, 1, r.PorCategoria[entity.CategoriaPersonal])
	assert.Equal(t, 0, r.ResueltasEnPeriodo)
}

func TestResumir_ExcluyeArchivadasYCuentaResueltas(t *testing.T) {
	repo := nuevoRepoMemoria()
	fuente := &fuenteFija{nombre: "vehiculos"}
	motor := armarMotor(repo, fuente)
	ciclo := alertas.NewCiclo(repo, motor)
	stats := alertas.NewEstadisticas(motor, repo)
	hoy := motor.Hoy()

	fuente.vencs = []entity.Vencimiento{
		vencVehiculo("1", "AA111AA Fiat", "VTV", enDias(hoy, 5)),
		vencVehiculo("2", "BB222BB Scania", "VTV", enDias(hoy, 6)),
	}
	_, err := ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Otros", Titulo: "Nota suelta",
	})
	require.NoError(t, err)

	_, err = ciclo.Resolver(context.Background(), "VEH-1-VTV", "jperez", "")
	require.NoError(t, err)
	_, err = ciclo.Archivar(context.Background(), "VEH-2-VTV")
	require.NoError(t, err)

	r, _, err := stats.Resumir(context.Background(), hoy)
	require.NoError(t, err)

	// La archivada no cuenta; la resuelta sigue visible y además suma al período.
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 1, r.ResueltasEnPeriodo)
	assert.Equal(t, 1, r.PorCategoria[entity.CategoriaVehiculos])
	assert.Equal(t, 1, r.PorCategoria[entity.CategoriaOtros])
}

// El resumen se recalcula siempre: mover un vencimiento cambia el próximo conteo.
func TestResumir_SinCache(t *testing.T) {
	corte := corteTest()
	fuente := &fuenteFija{nombre: "vehiculos", vencs: []entity.Vencimiento{
		vencVehiculo("1", "AA111AA Fiat", "VTV", enDias(corte, 5)),
	}}
	repo := nuevoRepoMemoria()
	motor := armarMotor(repo, fuente)
	stats := alertas.NewEstadisticas(motor, repo)

	r, _, err := stats.Resumir(context.Background(), corte)
	require.NoError(t, err)
	assert.Equal(t, 1, r.PorSeveridad[entity.SeveridadAlto])

	// La entidad renovó su VTV: la fuente ahora devuelve una fecha lejana.
	fuente.vencs[0].FechaVenc = enDias(corte, 300)

	r, _, err = stats.Resumir(context.Background(), corte)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total)
}
