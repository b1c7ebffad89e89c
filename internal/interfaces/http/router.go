package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bitacora-api/internal/application/auth"
	"github.com/jhoicas/bitacora-api/internal/application/usecase"
	"github.com/jhoicas/bitacora-api/internal/application/worklog"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	WorkLogUC *worklog.WorkLogUseCase
	ReportUC  *worklog.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
// Toda ruta protegida pasa por AuthMiddleware (claims a locals) y, si aplica,
// RequireRole(ADMIN); los handlers no vuelven a consultar la DB para autorizar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público, registro solo para ADMIN autenticado
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo ADMIN)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)

	// Work logs (cualquier rol autenticado; report y delete solo ADMIN)
	logs := protected.Group("/work-logs")
	workLogHandler := NewWorkLogHandler(deps.WorkLogUC, deps.ReportUC)
	logs.Post("/", workLogHandler.Submit)
	logs.Get("/", workLogHandler.List)
	logs.Get("/report", adminOnly, workLogHandler.Report)
	logs.Delete("/:id", adminOnly, workLogHandler.Delete)
}
