package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/todo-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Todos          *handlers.TodosHandler
	AuthMiddleware fiber.Handler
}

// RegisterRoutes wires HTTP routes. Everything under /api/todo sits
// behind the bearer-token middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	user := api.Group("/user")
	user.Post("/register", cfg.Users.Register)
	user.Post("/login", cfg.Users.Login)

	todo := api.Group("/todo", cfg.AuthMiddleware)
	todo.Post("/new", cfg.Todos.Create)
	todo.Get("/", cfg.Todos.List)
	todo.Get("/:id/view", cfg.Todos.Get)
	todo.Put("/:id/update", cfg.Todos.Update)
	todo.Put("/:id/markAsComplete", cfg.Todos.MarkComplete)
	todo.Delete("/:id/delete", cfg.Todos.Delete)
}
