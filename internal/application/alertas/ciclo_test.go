package alertas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

// El ciclo de vida opera contra "hoy" real (valida fechas pospuestas contra el
// reloj), así que estos tests arman sus vencimientos relativos a motor.Hoy().

func armarCiclo(t *testing.T) (*alertas.Ciclo, *alertas.Agregador, *repoMemoria, *fuenteFija) {
	t.Helper()
	repo := nuevoRepoMemoria()
	fuente := &fuenteFija{nombre: "vehiculos"}
	motor := armarMotor(repo, fuente)
	return alertas.NewCiclo(repo, motor), motor, repo, fuente
}

func TestResolver_DerivadaNoTocaLaFuente(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fechaOriginal := enDias(hoy, 5)
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", fechaOriginal)}

	al, err := ciclo.Resolver(context.Background(), "VEH-42-VTV", "jperez", "se renovó la VTV")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoResuelto, al.Estado)
	assert.Equal(t, "jperez", al.ResueltaPor)
	require.NotNil(t, al.ResueltaEn)

	// La fuente sigue intacta: resolver la alerta no mutó la fecha de la entidad.
	assert.True(t, fuente.vencs[0].FechaVenc.Equal(fechaOriginal))

	// La próxima agregación refleja el estado resuelto vía override.
	lista, _, err := motor.Agregar(context.Background(), hoy)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, entity.EstadoResuelto, lista[0].Estado)
	assert.Equal(t, 5, *lista[0].DiasRestantes)
}

func TestResolver_Idempotente(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", enDias(hoy, 5))}

	primera, err := ciclo.Resolver(context.Background(), "VEH-42-VTV", "jperez", "listo")
	require.NoError(t, err)

	// Re-resolver no es error: devuelve el registro existente.
	segunda, err := ciclo.Resolver(context.Background(), "VEH-42-VTV", "otro", "")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoResuelto, segunda.Estado)
	assert.Equal(t, primera.ResueltaPor, segunda.ResueltaPor)
}

func TestResolver_NoEncontrada(t *testing.T) {
	ciclo, _, _, _ := armarCiclo(t)

	_, err := ciclo.Resolver(context.Background(), "VEH-99-VTV", "jperez", "")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)

	_, err = ciclo.Resolver(context.Background(), "id-manual-inexistente", "jperez", "")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestArchivar_EsTerminal(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", enDias(hoy, 5))}

	al, err := ciclo.Archivar(context.Background(), "VEH-42-VTV")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoArchivada, al.Estado)

	// Resolver una archivada es una operación inválida.
	_, err = ciclo.Resolver(context.Background(), "VEH-42-VTV", "jperez", "")
	assert.ErrorIs(t, err, domain.ErrOperacionInvalida)

	// Posponer tampoco.
	_, err = ciclo.Posponer(context.Background(), "VEH-42-VTV", enDias(hoy, 10), "jperez", "")
	assert.ErrorIs(t, err, domain.ErrOperacionInvalida)
}

func TestPosponer_OverrideGobiernaLaLectura(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fechaOriginal := enDias(hoy, 3)
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", fechaOriginal)}

	nueva := enDias(hoy, 20)
	al, err := ciclo.Posponer(context.Background(), "VEH-42-VTV", nueva, "jperez", "turno reprogramado")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnProceso, al.Estado)
	assert.Equal(t, 20, *al.DiasRestantes)
	assert.Equal(t, entity.SeveridadMedio, al.Severidad)

	// La agregación siguiente usa la fecha del override, no la original.
	lista, _, err := motor.Agregar(context.Background(), hoy)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, entity.EstadoEnProceso, lista[0].Estado)
	assert.Equal(t, 20, *lista[0].DiasRestantes)
	assert.True(t, lista[0].FechaVenc.Equal(nueva))

	// La fuente conserva la fecha real del negocio.
	assert.True(t, fuente.vencs[0].FechaVenc.Equal(fechaOriginal))
}

func TestPosponer_MasAllaDeLaVentanaSaleDelRadar(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", enDias(hoy, 3))}

	// Pospuesta a 60 días con ventana de 30: deja de ser urgente y desaparece
	// de la agregación por defecto. El override participa de la ventana igual
	// que una fecha real.
	_, err := ciclo.Posponer(context.Background(), "VEH-42-VTV", enDias(hoy, 60), "jperez", "")
	require.NoError(t, err)

	lista, _, err := motor.Agregar(context.Background(), hoy)
	require.NoError(t, err)
	assert.Empty(t, lista)

	// Pero sigue siendo operable por id (resolver, archivar).
	al, err := motor.BuscarPorID(context.Background(), hoy, "VEH-42-VTV")
	require.NoError(t, err)
	require.NotNil(t, al)
	assert.Equal(t, entity.EstadoEnProceso, al.Estado)
}

func TestPosponer_FechaPasadaEsInvalida(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", enDias(hoy, 3))}

	_, err := ciclo.Posponer(context.Background(), "VEH-42-VTV", enDias(hoy, -1), "jperez", "")
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

func TestCrearManual_SinFechaEsInformativa(t *testing.T) {
	ciclo, _, _, _ := armarCiclo(t)

	al, err := ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Otros",
		Titulo:    "Revisión especial",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SeveridadInformativo, al.Severidad)
	assert.Nil(t, al.DiasRestantes)
	assert.Equal(t, entity.OrigenManual, al.Origen)
	assert.Equal(t, entity.EstadoPendiente, al.Estado)
}

func TestCrearManual_SeveridadSiempreDerivada(t *testing.T) {
	ciclo, motor, _, _ := armarCiclo(t)
	hoy := motor.Hoy()

	// Con fecha, la severidad sale del clasificador.
	al, err := ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Documentacion",
		Titulo:    "Renovar seguro de caución",
		FechaVenc: enDias(hoy, 2).Format(dto.FormatoFecha),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SeveridadAlto, al.Severidad)

	// Mandar prioridad junto con fecha es contradicción: se rechaza.
	_, err = ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Documentacion",
		Titulo:    "Renovar seguro de caución",
		FechaVenc: enDias(hoy, 2).Format(dto.FormatoFecha),
		Prioridad: "Bajo",
	})
	assert.ErrorIs(t, err, domain.ErrValidacion)

	// Sin fecha, la prioridad declarada se respeta.
	al, err = ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Otros",
		Titulo:    "Auditoría interna",
		Prioridad: "Alto",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SeveridadAlto, al.Severidad)
}

func TestCrearManual_Validaciones(t *testing.T) {
	ciclo, _, _, _ := armarCiclo(t)

	_, err := ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{Categoria: "Otros"})
	assert.ErrorIs(t, err, domain.ErrValidacion) // sin título

	_, err = ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Inexistente", Titulo: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidacion) // categoría desconocida

	_, err = ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Otros", Titulo: "x", FechaVenc: "10/03/2026",
	})
	assert.ErrorIs(t, err, domain.ErrValidacion) // formato de fecha
}

func TestActualizar_SoloManuales(t *testing.T) {
	ciclo, motor, _, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", enDias(hoy, 5))}

	nuevoTitulo := "otro título"
	_, err := ciclo.Actualizar(context.Background(), "VEH-42-VTV", dto.ActualizarAlertaRequest{Titulo: &nuevoTitulo})
	assert.ErrorIs(t, err, domain.ErrOperacionInvalida)

	manual, err := ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Otros", Titulo: "Original",
	})
	require.NoError(t, err)

	actualizada, err := ciclo.Actualizar(context.Background(), manual.ID, dto.ActualizarAlertaRequest{Titulo: &nuevoTitulo})
	require.NoError(t, err)
	assert.Equal(t, "otro título", actualizada.Titulo)
}

func TestEliminar_SoloManuales(t *testing.T) {
	ciclo, motor, repo, fuente := armarCiclo(t)
	hoy := motor.Hoy()
	fuente.vencs = []entity.Vencimiento{vencVehiculo("42", "AB123CD Ford", "VTV", enDias(hoy, 5))}

	err := ciclo.Eliminar(context.Background(), "VEH-42-VTV")
	assert.ErrorIs(t, err, domain.ErrOperacionInvalida)

	manual, err := ciclo.CrearManual(context.Background(), dto.CrearAlertaRequest{
		Categoria: "Otros", Titulo: "Borrable",
	})
	require.NoError(t, err)
	require.NoError(t, ciclo.Eliminar(context.Background(), manual.ID))

	quedo, err := repo.ObtenerManual(context.Background(), manual.ID)
	require.NoError(t, err)
	assert.Nil(t, quedo)

	err = ciclo.Eliminar(context.Background(), manual.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
