package bootstrap

import (
	"context"
	"errors"
	"time"

	"duel-service/config"
	"duel-service/internal/api/game"
	httpUsecase "duel-service/internal/api/http/usecase"
	"duel-service/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config       config.Config
	postgresRepo PostgresRepository
	roomRedis    RoomRedisManager
	results      ResultPublisher
	accounts     AccountConsumer
	ledger       Ledger
	leaderboard  *game.Leaderboard
	registry     *game.Registry
	hub          Hub
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}

	ctx    context.Context
	cancel context.CancelFunc
}

func NewApp(config config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	settings, err := a.config.GameSettings()
	if err != nil {
		zap.L().Fatal("Invalid game settings", zap.Error(err))
	}

	if a.config.Postgres.Enabled {
		a.postgresRepo = InitDatabase(a.config)
	}
	a.ledger = InitLedger(a.config, a.postgresRepo)
	a.leaderboard = game.NewLeaderboard()
	a.hub = InitWebsocket()

	notifiers := game.Notifiers{a.hub}
	if a.config.SessionRedis.Enabled {
		a.roomRedis = InitRoomRedis(a.config)
		notifiers = append(notifiers, a.roomRedis)
	}

	recorders := []game.Recorder{a.leaderboard}
	if a.config.Kafka.Enabled {
		a.results, a.accounts = SetupMessaging(a.config, a.ledger)
		recorders = append(recorders, a.results)
	}

	var (
		reconciler game.Reconciler
		unresolved httpUsecase.UnresolvedReader
	)
	if a.postgresRepo != nil {
		recorders = append(recorders, a.postgresRepo)
		reconciler = a.postgresRepo
		unresolved = a.postgresRepo
	}

	a.registry = InitRegistry(game.Dependencies{
		Settings:  settings,
		Ledger:    a.ledger,
		Puzzles:   InitPuzzles(a.config),
		Payouts:   game.NewPayoutEngine(a.ledger, reconciler, settings, zap.L()),
		Notifier:  notifiers,
		Recorders: recorders,
		Log:       zap.L(),
	})

	a.httpHandlers = SetupHTTPHandlers(a.registry, a.leaderboard, a.ledger, unresolved)
	a.wsHandlers = SetupWSHandlers(a.config, a.registry, a.leaderboard, a.hub)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

// Start runs the hub, the HTTP server and the account consumer until a
// shutdown signal or the first fatal error.
func (a *App) Start() {
	g, ctx := errgroup.WithContext(a.ctx)
	a.hub.Run(ctx)

	g.Go(func() error {
		zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))
		if err := a.fiberApp.Listen(":" + a.config.Server.Port); err != nil {
			return err
		}
		return nil
	})

	if a.accounts != nil {
		g.Go(func() error {
			return a.accounts.Run(ctx)
		})
	}

	g.Go(func() error {
		graceful.WaitForShutdown(a.fiberApp, 5*time.Second, ctx)
		a.cancel()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		zap.L().Error("Service stopped with error", zap.Error(err))
	}
	a.close()
}

func (a *App) close() {
	a.registry.Shutdown()

	closers := map[string]func() error{}
	if a.results != nil {
		closers["kafka results"] = a.results.Close
	}
	if a.accounts != nil {
		closers["kafka accounts"] = a.accounts.Close
	}
	if a.roomRedis != nil {
		closers["redis"] = a.roomRedis.Close
	}
	if a.postgresRepo != nil {
		closers["postgres"] = a.postgresRepo.Close
	}
	for name, closeFn := range closers {
		if err := closeFn(); err != nil {
			zap.L().Error("Failed to close "+name, zap.Error(err))
		}
	}
}
