package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/engine/rpgtoolkit"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
	v1alpha1 "github.com/Richard10-cpu/termux-telegram-rpg/internal/handlers/rpg/v1alpha1"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/adventure"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/orchestrators/battle"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/clock"
	"github.com/Richard10-cpu/termux-telegram-rpg/internal/pkg/idgen"
	playerrepo "github.com/Richard10-cpu/termux-telegram-rpg/internal/repositories/player"
	playersvc "github.com/Richard10-cpu/termux-telegram-rpg/internal/services/player"
)

var serverCfg = Config{}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the game server with the configured player store and content tables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&serverCfg.Port, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&serverCfg.Store, "store", StoreMemory, "player store: memory, redis or file")
	serverCmd.Flags().StringVar(&serverCfg.RedisAddr, "redis-addr", "localhost:6379", "Redis address for --store=redis")
	serverCmd.Flags().StringVar(&serverCfg.DataFile, "data-file", playerrepo.DefaultDataFile, "JSON file for --store=file")
	serverCmd.Flags().StringVar(&serverCfg.ContentPath, "content", "", "YAML content tables (default: built in)")
	serverCmd.Flags().Int64Var(&serverCfg.Seed, "seed", 0, "dice seed for reproducible fights (0: random)")
	serverCmd.Flags().IntVar(&serverCfg.EliteChance, "elite-chance", rpgtoolkit.DefaultEliteChance, "percent chance an encounter is elite")
	serverCmd.Flags().StringVar(&serverCfg.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// app is the wired game stack
type app struct {
	handler *v1alpha1.Handler
	bus     events.EventBus
	cleanup func()
}

// buildApp wires repositories, services, the engine and orchestrators
func buildApp(ctx context.Context, cfg *Config, clk clock.Clock) (*app, error) {
	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}

	rules, err := engine.NewRules(&engine.RulesConfig{Catalog: catalog, Clock: clk})
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	rpgtoolkit.SubscribeLogger(bus, slog.Default())

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:    bus,
		DiceRoller:  newRoller(cfg.Seed),
		Rules:       rules,
		IDGenerator: idgen.NewUUID("battle"),
		Clock:       clk,
		EliteChance: cfg.EliteChance,
	})
	if err != nil {
		return nil, err
	}

	repo, cleanup, err := openRepository(ctx, cfg, clk)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open player store")
	}

	players, err := playersvc.NewManager(&playersvc.Config{
		Repository:    repo,
		Clock:         clk,
		StartLocation: catalog.StartLocation(),
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	battles, err := battle.NewOrchestrator(&battle.Config{
		PlayerService: players,
		Engine:        eng,
		Catalog:       catalog,
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	adventures, err := adventure.NewOrchestrator(&adventure.Config{
		PlayerService: players,
		Rules:         rules,
		Engine:        eng,
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService:    battles,
		AdventureService: adventures,
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	return &app{handler: handler, bus: bus, cleanup: cleanup}, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := serverCfg.Validate(); err != nil {
		return err
	}

	level, _ := parseLevel(serverCfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	a, err := buildApp(ctx, &serverCfg, clock.New())
	if err != nil {
		return err
	}
	defer a.cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", serverCfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterGameServiceServer(srv, a.handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", serverCfg.Port,
			"store", serverCfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
