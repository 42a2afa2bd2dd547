package alertas_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

func TestConsultar_DefaultExcluyeArchivadas(t *testing.T) {
	corte := corteTest()
	repo := nuevoRepoMemoria()
	fuente := &fuenteFija{nombre: "vehiculos", vencs: []entity.Vencimiento{
		vencVehiculo("1", "AA111AA Fiat", "VTV", enDias(corte, 5)),
		vencVehiculo("2", "BB222BB Scania", "VTV", enDias(corte, 10)),
	}}
	motor := armarMotor(repo, fuente)
	ciclo := alertas.NewCiclo(repo, motor)
	consulta := alertas.NewConsulta(motor)

	_, err := ciclo.Archivar(context.Background(), "VEH-1-VTV")
	require.NoError(t, err)

	res, err := consulta.Consultar(context.Background(), corte, alertas.Filtros{}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "VEH-2-VTV", res.Items[0].ID)

	// El filtro explícito de estado recupera las archivadas.
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{Estado: entity.EstadoArchivada}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "VEH-1-VTV", res.Items[0].ID)
}

func TestConsultar_FiltrosCombinados(t *testing.T) {
	corte := corteTest()
	fuente := &fuenteFija{nombre: "mixta", vencs: []entity.Vencimiento{
		vencVehiculo("1", "AA111AA Fiat", "VTV", enDias(corte, 5)),
		vencVehiculo("2", "BB222BB Scania", "Seguro", enDias(corte, 20)),
		vencPersonal("3", "Gómez, Ana", "Licencia", enDias(corte, 5)),
	}}
	motor := armarMotor(nuevoRepoMemoria(), fuente)
	consulta := alertas.NewConsulta(motor)

	// Por categoría.
	res, err := consulta.Consultar(context.Background(), corte,
		alertas.Filtros{Categoria: entity.CategoriaPersonal}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "PER-3-Licencia", res.Items[0].ID)

	// Por severidad + tipo de entidad (AND).
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{Severidad: entity.SeveridadAlto, TipoEntidad: entity.TipoVehiculo}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "VEH-1-VTV", res.Items[0].ID)

	// Texto libre sobre el elemento, case-insensitive.
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{Texto: "scania"}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "VEH-2-Seguro", res.Items[0].ID)

	// Texto que matchea el id sintetizado.
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{Texto: "per-3"}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	// Días máximos: sólo lo que vence dentro de 7 días.
	dias := 7
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{DiasMax: &dias}, alertas.Paginacion{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)

	// Fecha exacta.
	f := enDias(corte, 20)
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{FechaVenc: &f}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "VEH-2-Seguro", res.Items[0].ID)

	// Sin coincidencias: lista vacía, no error.
	res, err = consulta.Consultar(context.Background(), corte,
		alertas.Filtros{Texto: "no-existe"}, alertas.Paginacion{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalCount)
}

func TestConsultar_Paginacion(t *testing.T) {
	corte := corteTest()
	var vencs []entity.Vencimiento
	// 25 vencimientos escalonados: 1..25 días.
	for i := 1; i <= 25; i++ {
		vencs = append(vencs, vencVehiculo(fmt.Sprintf("%02d", i), fmt.Sprintf("UNIDAD %02d", i), "VTV", enDias(corte, i)))
	}
	motor := armarMotor(nuevoRepoMemoria(), &fuenteFija{nombre: "vehiculos", vencs: vencs})
	consulta := alertas.NewConsulta(motor)

	res, err := consulta.Consultar(context.Background(), corte, alertas.Filtros{},
		alertas.Paginacion{Page: 2, PageSize: 10})
	require.NoError(t, err)

	// total_count es el conteo filtrado pre-paginación.
	assert.Equal(t, 25, res.TotalCount)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 2, res.CurrentPage)
	require.Len(t, res.Items, 10)
	// Página 2 con tamaño 10 = ítems 11 a 20 del conjunto ordenado.
	assert.Equal(t, 11, *res.Items[0].DiasRestantes)
	assert.Equal(t, 20, *res.Items[9].DiasRestantes)

	// Página fuera de rango: vacía pero con los mismos metadatos.
	res, err = consulta.Consultar(context.Background(), corte, alertas.Filtros{},
		alertas.Paginacion{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 25, res.TotalCount)
}

func TestConsultar_PropagaWarnings(t *testing.T) {
	corte := corteTest()
	rota := &fuenteFija{nombre: "sedes", err: assert.AnError}
	motor := armarMotor(nuevoRepoMemoria(), rota)
	consulta := alertas.NewConsulta(motor)

	res, err := consulta.Consultar(context.Background(), corte, alertas.Filtros{}, alertas.Paginacion{})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "sedes")
}
