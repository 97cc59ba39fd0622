package commands

import (
	"context"
	"errors"
	"log/slog"

	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/services"
	"menu/internal/core/ports"
	"menu/internal/pkg/errs"
)

// ProcessOrderResult is a validated order ready to be shown to the customer.
type ProcessOrderResult struct {
	OrderID kernel.UUID
	Course  string
	Lines   []services.Line
	Text    string
}

// ProcessOrderCommandHandler resolves the course of an order, validates the
// order against it and renders the result.
//
// Example:
//
//	handler := NewProcessOrderCommandHandler(courseRepo, logger)
//	cmd, _ := NewProcessOrderCommand("Lunch", []int{1, 2, 2})
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    fmt.Println(FailureMessage(err))
//	    return
//	}
//	fmt.Println(result.Text) // "Sandwich, Chips(2), Water"
type ProcessOrderCommandHandler struct {
	courses ports.CourseRepository
	logger  *slog.Logger
}

// NewProcessOrderCommandHandler creates a handler reading courses from the repository.
// A nil logger falls back to slog.Default().
func NewProcessOrderCommandHandler(courses ports.CourseRepository, logger *slog.Logger) ProcessOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ProcessOrderCommandHandler{
		courses: courses,
		logger:  logger.With("component", "process_order_handler"),
	}
}

// Handle processes the order. Failures carry the customer-facing reason as
// their message; the first violated rule wins.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (ProcessOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessOrderResult{}, err
	}

	c, err := h.courses.Get(cmd.CourseName())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			err = NewCourseIsUnknownError(cmd.CourseName(), err)
		}
		h.logger.WarnContext(ctx, "Order rejected", "course", cmd.CourseName(), "reason", err)
		return ProcessOrderResult{}, err
	}

	tally, err := c.ProcessOrder(cmd.ItemIDs())
	if err != nil {
		h.logger.WarnContext(ctx, "Order rejected",
			"course", cmd.CourseName(), "items", cmd.ItemIDs(), "reason", err)
		return ProcessOrderResult{}, err
	}

	result := ProcessOrderResult{
		OrderID: kernel.NewUUID(),
		Course:  cmd.CourseName(),
		Lines:   c.Arrange(tally),
		Text:    c.Render(tally),
	}

	h.logger.InfoContext(ctx, "Order processed",
		"order_id", result.OrderID.String(), "course", result.Course, "result", result.Text)
	return result, nil
}
