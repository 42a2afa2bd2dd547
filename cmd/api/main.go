package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gescop/gescop-api/internal/application/alertas"
	"github.com/gescop/gescop-api/internal/application/auth"
	"github.com/gescop/gescop-api/internal/application/reportes"
	"github.com/gescop/gescop-api/internal/application/usecase"
	"github.com/gescop/gescop-api/internal/domain/alerta"
	"github.com/gescop/gescop-api/internal/domain/repository"
	infrapdf "github.com/gescop/gescop-api/internal/infrastructure/pdf"
	"github.com/gescop/gescop-api/internal/infrastructure/postgres"
	httpRouter "github.com/gescop/gescop-api/internal/interfaces/http"
	"github.com/gescop/gescop-api/pkg/config"
	"github.com/gescop/gescop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	loc, err := time.LoadLocation(cfg.Alertas.ZonaHoraria)
	if err != nil {
		log.Fatal().Err(err).Str("zona", cfg.Alertas.ZonaHoraria).Msg("zona horaria inválida")
	}

	alertaRepo := postgres.NewAlertaRepository(pool)
	vehiculoRepo := postgres.NewVehiculoRepository(pool)
	personalRepo := postgres.NewPersonalRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	sedeRepo := postgres.NewSedeRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de alertas: una fuente por tipo de entidad con vencimientos.
	fuentes := []repository.FuenteVencimientos{
		postgres.NewFuenteVehiculos(pool),
		postgres.NewFuentePersonal(pool),
		postgres.NewFuenteProveedores(pool),
		postgres.NewFuenteSedes(pool),
	}
	politica := alerta.Politica{
		DiasAlto:  cfg.Alertas.DiasAlto,
		DiasMedio: cfg.Alertas.DiasMedio,
	}
	agregador := alertas.NewAgregador(alertaRepo, fuentes, politica, cfg.Alertas.DiasAnticipacion, loc, log)
	ciclo := alertas.NewCiclo(alertaRepo, agregador)
	consulta := alertas.NewConsulta(agregador)
	estadisticas := alertas.NewEstadisticas(agregador, alertaRepo)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	reporteUC := reportes.NewPDFUseCase(agregador, pdfGenerator)

	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo, txRunner)
	personalUC := usecase.NewPersonalUseCase(personalRepo, txRunner)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	sedeUC := usecase.NewSedeUseCase(sedeRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GESCOP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Log:          log,
		Agregador:    agregador,
		Consulta:     consulta,
		Ciclo:        ciclo,
		Estadisticas: estadisticas,
		ReportePDF:   reporteUC,
		VehiculoUC:   vehiculoUC,
		PersonalUC:   personalUC,
		ProveedorUC:  proveedorUC,
		SedeUC:       sedeUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
