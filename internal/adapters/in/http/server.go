// Package http exposes the menu over a JSON API built on echo.
package http

import (
	"errors"
	"net/http"

	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processOrderHandler commands.ProcessOrderCommandHandler
	getMenuHandler      queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrderHandler commands.ProcessOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		processOrderHandler: processOrderHandler,
		getMenuHandler:      getMenuHandler,
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	v1 := e.Group("/api/v1")
	v1.GET("/menu", s.GetMenu)
	v1.POST("/orders", s.CreateOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetMenu handles GET /api/v1/menu - lists every course and its items.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := make([]Course, len(menu))
	for i, c := range menu {
		items := make([]MenuItem, len(c.Items))
		for j, it := range c.Items {
			items[j] = MenuItem{ID: it.ID, Name: it.Name, Category: it.Category}
		}
		response[i] = Course{Name: c.Course, Items: items}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - validates and renders one order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newProcessOrderCommand(req)
	if err != nil {
		return failure(ctx, http.StatusUnprocessableEntity, err)
	}

	result, err := s.processOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrCourseIsUnknown) {
		return failure(ctx, http.StatusNotFound, err)
	}
	if err != nil {
		return failure(ctx, http.StatusUnprocessableEntity, err)
	}

	lines := make([]OrderLine, len(result.Lines))
	for i, l := range result.Lines {
		lines[i] = OrderLine{ID: l.Item.ID(), Name: l.Item.Name(), Quantity: l.Quantity}
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:     result.OrderID.String(),
		Course: result.Course,
		Lines:  lines,
		Text:   result.Text,
	})
}

func newProcessOrderCommand(req OrderRequest) (commands.ProcessOrderCommand, error) {
	if req.Line != "" {
		return commands.ParseProcessOrderCommand(req.Line)
	}
	return commands.NewProcessOrderCommand(req.Course, req.Items)
}

func failure(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: commands.FailureMessage(err),
	})
}
