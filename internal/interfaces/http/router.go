package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/buildstock-api/internal/application/analytics"
	"github.com/tu-usuario/buildstock-api/internal/application/auth"
	"github.com/tu-usuario/buildstock-api/internal/application/catalog"
	"github.com/tu-usuario/buildstock-api/internal/application/stock"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordMovement *stock.RecordMovementUseCase
	ListMovements  *stock.ListMovementsUseCase
	CatalogUC      *catalog.CatalogUseCase
	SummaryUC      *analytics.SummaryUseCase
	DashboardUC    *analytics.DashboardUseCase
	UserUC         *auth.UserUseCase
	AuthUC         *auth.AuthUseCase
	AuthEnabled    bool
	JWTSecret      string
}

// Router registra las rutas de la API. Con AuthEnabled=false (el despliegue
// por defecto) todas las rutas son públicas y no se monta /api/auth.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	if deps.AuthEnabled {
		authGroup := api.Group("/auth")
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup.Post("/login", authHandler.Login)

		api = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Movimientos (ledger append-only)
	stockHandler := NewStockHandler(deps.RecordMovement, deps.ListMovements)
	movements := api.Group("/movements")
	movements.Post("/", stockHandler.RecordMovement)
	movements.Get("/", stockHandler.ListMovements)

	// Materiales (catálogo)
	materialHandler := NewMaterialHandler(deps.CatalogUC)
	materials := api.Group("/materials")
	materials.Get("/", materialHandler.List)
	materials.Put("/:id/limits", materialHandler.UpdateLimits)
	if deps.AuthEnabled {
		materials.Delete("/:id", RequireRole(entity.RoleAdmin), materialHandler.Deactivate)
	} else {
		materials.Delete("/:id", materialHandler.Deactivate)
	}

	// Agregados
	dashboardHandler := NewDashboardHandler(deps.SummaryUC, deps.DashboardUC)
	api.Get("/summary", dashboardHandler.GetSummary)
	api.Get("/dashboard", dashboardHandler.GetDashboard)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/users", userHandler.List)
}
