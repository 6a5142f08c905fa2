package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oams-ph/transfer-api/internal/application/auth"
	apptransfer "github.com/oams-ph/transfer-api/internal/application/transfer"
	"github.com/oams-ph/transfer-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	TransferUC *apptransfer.WorkflowUseCase
	SchoolUC   *usecase.SchoolUseCase
	DivisionUC *usecase.DivisionUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Transfer workflow (protected)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Post("/:id/approve", transferHandler.Approve)
	transfers.Post("/:id/complete", transferHandler.Complete)

	// Schools (protected)
	schools := protected.Group("/schools")
	schoolHandler := NewSchoolHandler(deps.SchoolUC)
	schools.Post("/", schoolHandler.Create)
	schools.Get("/", schoolHandler.List)
	schools.Get("/:id", schoolHandler.GetByID)
	schools.Put("/:id", schoolHandler.Update)
	schools.Delete("/:id", schoolHandler.Delete)

	// Divisions (protected)
	divisions := protected.Group("/divisions")
	divisionHandler := NewDivisionHandler(deps.DivisionUC)
	divisions.Post("/", divisionHandler.Create)
	divisions.Get("/", divisionHandler.List)
	divisions.Get("/:id", divisionHandler.GetByID)
	divisions.Put("/:id", divisionHandler.Update)
	divisions.Delete("/:id", divisionHandler.Delete)
}
