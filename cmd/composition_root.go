package cmd

import (
	"log/slog"
	"os"
	"strings"

	"menu/internal/adapters/in/cli"
	menuhttp "menu/internal/adapters/in/http"
	"menu/internal/adapters/out/memory/courserepo"
	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/application/usecases/queries"
	"menu/internal/core/domain/model/course"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	courses *courserepo.InMemoryCourseRepository
}

// NewCompositionRoot registers every course under its default name.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	root := CompositionRoot{
		config:  config,
		logger:  NewLogger(config.LogLevel),
		courses: courserepo.NewInMemoryCourseRepository(),
	}

	for _, kind := range course.Kinds() {
		if err := root.courses.Add(kind.String(), course.New(kind)); err != nil {
			return CompositionRoot{}, err
		}
	}

	return root, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.courses, c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.courses)
}

func (c *CompositionRoot) CreatePoller() *cli.Poller {
	return cli.NewPoller(c.CreateProcessOrderCommandHandler(), c.config.OrderPrompt, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *menuhttp.Server {
	return menuhttp.NewServer(
		c.CreateProcessOrderCommandHandler(),
		c.CreateGetMenuQueryHandler(),
	)
}

// NewLogger returns a text logger on stderr. Unknown levels fall back to info.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
