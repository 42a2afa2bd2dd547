package entity

import "time"

// Severidad nivel de urgencia de una alerta, derivado de los días restantes
// hasta el vencimiento (ver alerta.Clasificador). Nunca se setea directamente
// cuando la alerta tiene fecha de vencimiento.
type Severidad string

const (
	SeveridadCritico     Severidad = "Critico"     // vencido (días restantes <= 0)
	SeveridadAlto        Severidad = "Alto"        // vence dentro del umbral alto
	SeveridadMedio       Severidad = "Medio"       // vence dentro del umbral medio
	SeveridadBajo        Severidad = "Bajo"        // vence más allá del umbral medio
	SeveridadInformativo Severidad = "Informativo" // sin fecha de vencimiento
)

// EstadoAlerta estado del ciclo de vida de una alerta.
type EstadoAlerta string

const (
	EstadoPendiente EstadoAlerta = "Pendiente"
	EstadoEnProceso EstadoAlerta = "EnProceso" // pospuesta con nueva fecha
	EstadoResuelto  EstadoAlerta = "Resuelto"
	EstadoArchivada EstadoAlerta = "Archivada" // terminal
)

// Categoria agrupación funcional de la alerta.
type Categoria string

const (
	CategoriaVehiculos     Categoria = "Vehiculos"
	CategoriaPersonal      Categoria = "Personal"
	CategoriaProveedores   Categoria = "Proveedores"
	CategoriaSedes         Categoria = "Sedes"
	CategoriaDocumentacion Categoria = "Documentacion"
	CategoriaMantenimiento Categoria = "Mantenimiento"
	CategoriaOtros         Categoria = "Otros"
)

// CategoriaValida indica si el valor corresponde a una categoría conocida.
func CategoriaValida(c Categoria) bool {
	switch c {
	case CategoriaVehiculos, CategoriaPersonal, CategoriaProveedores,
		CategoriaSedes, CategoriaDocumentacion, CategoriaMantenimiento, CategoriaOtros:
		return true
	}
	return false
}

// Origen distingue alertas derivadas de vencimientos de entidades vs. creadas a mano.
type Origen string

const (
	// OrigenDerivada alerta regenerada en cada consulta a partir de un
	// vencimiento de entidad; sólo sus overrides de ciclo de vida persisten.
	OrigenDerivada Origen = "Derivada"
	// OrigenManual alerta creada explícitamente por un usuario y persistida completa.
	OrigenManual Origen = "Manual"
)

// TipoEntidad tipo de entidad de negocio que origina un vencimiento.
type TipoEntidad string

const (
	TipoVehiculo  TipoEntidad = "vehiculo"
	TipoPersonal  TipoEntidad = "personal"
	TipoProveedor TipoEntidad = "proveedor"
	TipoSede      TipoEntidad = "sede"
)

// Vencimiento registro de una entidad de negocio con un atributo que vence.
// Una misma entidad puede producir varios (ej: un vehículo aporta VTV, seguro y permiso).
type Vencimiento struct {
	TipoEntidad TipoEntidad
	EntidadID   string
	Nombre      string    // nombre de display de la entidad afectada
	Regla       string    // qué atributo vence: "VTV", "Seguro", "Licencia", ...
	FechaVenc   time.Time // fecha calendario, sin componente horario
}

// Alerta entidad central del motor de vencimientos.
// DiasRestantes y Severidad se calculan al momento de la consulta, nunca se persisten.
type Alerta struct {
	ID            string // "{prefijo}-{entidadID}-{regla}" para derivadas; UUID para manuales
	Categoria     Categoria
	Titulo        string
	Descripcion   string
	Elemento      string // nombre de display de la entidad afectada
	TipoEntidad   TipoEntidad
	Regla         string
	FechaVenc     *time.Time // nil = alerta informativa sin vencimiento
	DiasRestantes *int       // negativo = vencida; nil cuando FechaVenc es nil
	Severidad     Severidad
	Estado        EstadoAlerta
	Origen        Origen
	Prioridad     Severidad // hint manual, sólo relevante si FechaVenc es nil
	CreadaEn      time.Time
	ResueltaEn    *time.Time
	ResueltaPor   string
	Notas         string
}

// Archivada indica si la alerta está en su estado terminal.
func (a *Alerta) Archivada() bool { return a.Estado == EstadoArchivada }

// OverrideCiclo excepción persistida que cambia el estado y/o la fecha efectiva
// de una alerta derivada sin tocar la entidad de origen. Se aplica al leer:
// la fecha de la entidad sigue siendo la autoritativa para el negocio, el
// override sólo gobierna cómo se presenta la alerta.
type OverrideCiclo struct {
	AlertaID      string // id sintetizado de la alerta derivada
	Estado        EstadoAlerta
	NuevaFecha    *time.Time // fecha efectiva si fue pospuesta
	Notas         string
	ResueltaPor   string
	ResueltaEn    *time.Time
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
