package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/todo-service/internal/api/dto"
	"github.com/spec-kit/todo-service/internal/auth"
	"github.com/spec-kit/todo-service/internal/service"
	apperrors "github.com/spec-kit/todo-service/pkg/util"
)

// TodosHandler manages the owner-scoped todo endpoints.
type TodosHandler struct {
	service  *service.TodoService
	validate *validator.Validate
}

// NewTodosHandler constructs handler.
func NewTodosHandler(todoService *service.TodoService) *TodosHandler {
	return &TodosHandler{service: todoService, validate: validator.New()}
}

// Create handles POST /api/todo/new.
func (h *TodosHandler) Create(c *fiber.Ctx) error {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Please login to continue")
	}
	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	todo, err := h.service.Create(c.Context(), caller.UserID, service.TodoCreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "New ToDo created successfully",
		"todo":    dto.NewTodoResponse(todo),
	})
}

// List handles GET /api/todo/.
func (h *TodosHandler) List(c *fiber.Ctx) error {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Please login to continue")
	}

	todos, err := h.service.List(c.Context(), caller.UserID)
	if err != nil {
		return err
	}
	if len(todos) == 0 {
		return apperrors.NewNotFound("No ToDo Item(s) found")
	}

	items := make([]dto.TodoResponse, 0, len(todos))
	for i := range todos {
		items = append(items, dto.NewTodoResponse(&todos[i]))
	}
	return c.JSON(fiber.Map{"todos": items})
}

// Get handles GET /api/todo/:id/view.
func (h *TodosHandler) Get(c *fiber.Ctx) error {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Please login to continue")
	}

	todo, err := h.service.Get(c.Context(), caller.UserID, c.Params("id"))
	if err != nil {
		return mapTodoError(err)
	}
	return c.JSON(fiber.Map{"todo": dto.NewTodoResponse(todo)})
}

// Update handles PUT /api/todo/:id/update.
func (h *TodosHandler) Update(c *fiber.Ctx) error {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Please login to continue")
	}
	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	todo, err := h.service.Update(c.Context(), caller.UserID, c.Params("id"), service.TodoUpdateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return mapTodoError(err)
	}

	return c.JSON(fiber.Map{
		"message": "ToDo updated successfully",
		"todo":    dto.NewTodoResponse(todo),
	})
}

// MarkComplete handles PUT /api/todo/:id/markAsComplete. Completing an
// already-completed todo is a no-op that still reports success.
func (h *TodosHandler) MarkComplete(c *fiber.Ctx) error {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Please login to continue")
	}

	todo, already, err := h.service.MarkComplete(c.Context(), caller.UserID, c.Params("id"))
	if err != nil {
		return mapTodoError(err)
	}
	if already {
		return c.JSON(fiber.Map{"message": "Already marked as complete"})
	}

	return c.JSON(fiber.Map{
		"message": "Marked as complete",
		"todo":    dto.NewTodoResponse(todo),
	})
}

// Delete handles DELETE /api/todo/:id/delete.
func (h *TodosHandler) Delete(c *fiber.Ctx) error {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Please login to continue")
	}

	if err := h.service.Delete(c.Context(), caller.UserID, c.Params("id")); err != nil {
		return mapTodoError(err)
	}
	return c.JSON(fiber.Map{"message": "ToDo deleted successfully"})
}

// mapTodoError translates a repository miss into the fixed per-resource
// not-found answer. A miss and a foreign-owned id are indistinguishable
// by construction.
func mapTodoError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("No ToDo Item(s) found")
	}
	return err
}
