package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/buildstock-api/internal/application/analytics"
	"github.com/tu-usuario/buildstock-api/internal/application/auth"
	"github.com/tu-usuario/buildstock-api/internal/application/catalog"
	"github.com/tu-usuario/buildstock-api/internal/application/stock"
	"github.com/tu-usuario/buildstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/buildstock-api/internal/interfaces/http"
	"github.com/tu-usuario/buildstock-api/pkg/config"
	"github.com/tu-usuario/buildstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.Auth.Enabled).
		Bool("strict_check", cfg.Stock.StrictCheck).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Esquema al día antes de aceptar tráfico.
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordMovementUC := stock.NewRecordMovementUseCase(txRunner, materialRepo, movementRepo, cfg.Stock.StrictCheck)
	listMovementsUC := stock.NewListMovementsUseCase(movementRepo)
	catalogUC := catalog.NewCatalogUseCase(materialRepo)
	summaryUC := analytics.NewSummaryUseCase(reportRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo, movementRepo)
	userUC := auth.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BuildStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordMovement: recordMovementUC,
		ListMovements:  listMovementsUC,
		CatalogUC:      catalogUC,
		SummaryUC:      summaryUC,
		DashboardUC:    dashboardUC,
		UserUC:         userUC,
		AuthUC:         authUC,
		AuthEnabled:    cfg.Auth.Enabled,
		JWTSecret:      cfg.JWT.Secret,
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
