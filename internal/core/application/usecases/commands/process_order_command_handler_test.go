package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/domain/model/course"
	"menu/internal/core/domain/model/order"
	"menu/internal/core/ports"
	"menu/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourseRepository struct{ mock.Mock }

func (m *MockCourseRepository) Add(name string, c *course.Course) error {
	args := m.Called(name, c)
	return args.Error(0)
}

func (m *MockCourseRepository) Get(name string) (*course.Course, error) {
	args := m.Called(name)
	c, _ := args.Get(0).(*course.Course)
	return c, args.Error(1)
}

func (m *MockCourseRepository) All() []ports.RegisteredCourse {
	args := m.Called()
	return args.Get(0).([]ports.RegisteredCourse)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand("Breakfast", []int{1, 2, 3, 3, 3})

	repo := new(MockCourseRepository)
	repo.On("Get", "Breakfast").Return(course.NewBreakfast(), nil).Once()

	h := commands.NewProcessOrderCommandHandler(repo, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, result.OrderID.Validate())
	assert.Equal(t, "Breakfast", result.Course)
	assert.Equal(t, "Eggs, Toast, Coffee(3)", result.Text)
	require.Len(t, result.Lines, 3)
	assert.Equal(t, 3, result.Lines[2].Quantity)
	repo.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_AssignsNewOrderIDs(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand("Lunch", []int{1, 2})

	repo := new(MockCourseRepository)
	repo.On("Get", "Lunch").Return(course.NewLunch(), nil).Twice()

	h := commands.NewProcessOrderCommandHandler(repo, discardLogger())
	first, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, first.OrderID.IsEqual(second.OrderID))
	assert.Equal(t, first.Text, second.Text)
	repo.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockCourseRepository)
	h := commands.NewProcessOrderCommandHandler(repo, discardLogger())

	_, err := h.Handle(t.Context(), commands.ProcessOrderCommand{})

	require.ErrorIs(t, err, commands.ErrProcessOrderCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Get", mock.Anything)
}

func TestProcessOrderCommandHandler_Handle_UnknownCourse(t *testing.T) {
	cmd, _ := commands.NewProcessOrderCommand("Snack", []int{1, 2})

	repo := new(MockCourseRepository)
	repo.On("Get", "Snack").Return(nil, errs.NewObjectNotFoundError("course", "Snack")).Once()

	h := commands.NewProcessOrderCommandHandler(repo, discardLogger())
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrCourseIsUnknown)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, "Invalid course 'Snack' given in order", err.Error())

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "course", notFound.ParamName)
	repo.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_RuleViolation(t *testing.T) {
	cmd, _ := commands.NewProcessOrderCommand("Dinner", []int{1, 2, 3})

	repo := new(MockCourseRepository)
	repo.On("Get", "Dinner").Return(course.NewDinner(), nil).Once()

	h := commands.NewProcessOrderCommandHandler(repo, nil)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, order.ErrCategoryIsMissing)
	assert.Equal(t, "Unable to process: Dessert is missing", commands.FailureMessage(err))
	repo.AssertExpectations(t)
}
