package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitForShutdown blocks until SIGINT/SIGTERM or ctx is done, then shuts the
// fiber app down within timeout.
func WaitForShutdown(app *fiber.App, timeout time.Duration, ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	zap.L().Info("shutting down server...")

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Error("server forced to shutdown", zap.Error(err))
		return
	}
	zap.L().Info("server exited gracefully")
}
