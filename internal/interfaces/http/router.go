package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/application/auth"
	"github.com/gescop/gescop-api/internal/application/reportes"
	"github.com/gescop/gescop-api/internal/application/usecase"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Log          *logger.Logger
	Agregador    *alertas.Agregador
	Consulta     *alertas.Consulta
	Ciclo        *alertas.Ciclo
	Estadisticas *alertas.Estadisticas
	ReportePDF   *reportes.PDFUseCase
	VehiculoUC   *usecase.VehiculoUseCase
	PersonalUC   *usecase.PersonalUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	SedeUC       *usecase.SedeUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// El logger viaja en Locals para que los helpers de respuesta registren
	// los errores que terminan en 500.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocalLogger, deps.Log)
		return c.Next()
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	// Escritura: sólo admin y operador; consulta queda en sólo lectura.
	escritura := RequireRol(entity.RolAdmin, entity.RolOperador)

	// Alertas (protegido). Las rutas fijas van antes que /:id.
	alertasGroup := protected.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.Agregador, deps.Consulta, deps.Ciclo, deps.Estadisticas, deps.ReportePDF)
	alertasGroup.Get("/", alertaHandler.Listar)
	alertasGroup.Get("/estadisticas", alertaHandler.Estadisticas)
	alertasGroup.Get("/proximas", alertaHandler.Proximas)
	alertasGroup.Get("/reporte", alertaHandler.Reporte)
	alertasGroup.Get("/:id", alertaHandler.ObtenerPorID)
	alertasGroup.Post("/", escritura, alertaHandler.Crear)
	alertasGroup.Put("/:id", escritura, alertaHandler.Actualizar)
	alertasGroup.Delete("/:id", escritura, alertaHandler.Eliminar)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.Agregador, deps.Estadisticas)
	protected.Get("/dashboard/resumen", dashboardHandler.Resumen)

	// Vehículos (protegido)
	vehiculos := protected.Group("/vehiculos")
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos.Get("/", vehiculoHandler.Listar)
	vehiculos.Get("/:id", vehiculoHandler.ObtenerPorID)
	vehiculos.Post("/", escritura, vehiculoHandler.Crear)
	vehiculos.Post("/importar", escritura, vehiculoHandler.Importar)
	vehiculos.Put("/:id", escritura, vehiculoHandler.Actualizar)
	vehiculos.Delete("/:id", escritura, vehiculoHandler.Eliminar)

	// Personal (protegido)
	personal := protected.Group("/personal")
	personalHandler := NewPersonalHandler(deps.PersonalUC)
	personal.Get("/", personalHandler.Listar)
	personal.Get("/:id", personalHandler.ObtenerPorID)
	personal.Post("/", escritura, personalHandler.Crear)
	personal.Post("/importar", escritura, personalHandler.Importar)
	personal.Put("/:id", escritura, personalHandler.Actualizar)
	personal.Delete("/:id", escritura, personalHandler.Eliminar)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id", proveedorHandler.ObtenerPorID)
	proveedores.Post("/", escritura, proveedorHandler.Crear)
	proveedores.Put("/:id", escritura, proveedorHandler.Actualizar)
	proveedores.Delete("/:id", escritura, proveedorHandler.Eliminar)

	// Sedes (protegido)
	sedes := protected.Group("/sedes")
	sedeHandler := NewSedeHandler(deps.SedeUC)
	sedes.Get("/", sedeHandler.Listar)
	sedes.Get("/:id", sedeHandler.ObtenerPorID)
	sedes.Post("/", escritura, sedeHandler.Crear)
	sedes.Put("/:id", escritura, sedeHandler.Actualizar)
	sedes.Delete("/:id", escritura, sedeHandler.Eliminar)
}
