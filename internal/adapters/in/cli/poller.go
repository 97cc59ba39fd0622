// Package cli provides the line-oriented order prompt: one order per line,
// one result line per order.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"menu/internal/core/application/usecases/commands"
)

const (
	// QuitCommand ends the session.
	QuitCommand = "q"

	// DefaultPrompt is written before every line is read.
	DefaultPrompt = "Enter your order: "
)

// Poller reads order lines until QuitCommand or end of input and writes the
// rendered order, or the failure, for each of them.
type Poller struct {
	handler commands.ProcessOrderCommandHandler
	prompt  string
	logger  *slog.Logger
}

// NewPoller creates a poller that processes orders with handler.
func NewPoller(handler commands.ProcessOrderCommandHandler, prompt string, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		handler: handler,
		prompt:  prompt,
		logger:  logger.With("component", "order_poller"),
	}
}

// Run polls in until the session ends. It returns nil on QuitCommand or end
// of input, and the context error if ctx is done between two lines. Lines
// have no length limit; a last line without a newline is still processed.
func (p *Poller) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p.logger.InfoContext(ctx, "Order prompt started")
	defer p.logger.InfoContext(ctx, "Order prompt stopped")

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, p.prompt); err != nil {
			return err
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line == QuitCommand {
			return nil
		}
		if _, werr := fmt.Fprintln(out, p.ProcessLine(ctx, line)); werr != nil {
			return werr
		}
		if err != nil {
			return nil
		}
	}
}

// ProcessLine handles one order line such as "Breakfast 1,2,3" and returns
// the text to show: the rendered order, or "Unable to process: <reason>".
func (p *Poller) ProcessLine(ctx context.Context, line string) string {
	cmd, err := commands.ParseProcessOrderCommand(line)
	if err != nil {
		p.logger.DebugContext(ctx, "Order line rejected", "line", line, "reason", err)
		return commands.FailureMessage(err)
	}

	result, err := p.handler.Handle(ctx, cmd)
	if err != nil {
		return commands.FailureMessage(err)
	}
	return result.Text
}
