package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu/cmd"
	"menu/internal/adapters/in/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch configs.Mode {
	case cmd.ModeHTTP:
		startWebServer(ctx, app, configs.HTTPPort)
	case cmd.ModeCLI:
		if err = app.CreatePoller().Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Order prompt failed: %v", err)
		}
	default:
		log.Fatalf("Unknown APP_MODE %q", configs.Mode)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		Mode:        envOrDefault("APP_MODE", cmd.ModeCLI),
		HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		OrderPrompt: envOrDefault("ORDER_PROMPT", cli.DefaultPrompt),
	}
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			app.Logger().Error("HTTP server shutdown failed", "error", err)
		}
	}()

	app.Logger().Info("HTTP server listening", "port", port)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
