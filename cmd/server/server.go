package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/trainer-api/internal/handlers/catalog/v1alpha1"
	"github.com/KirkDiggler/trainer-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/trainer-api/internal/pkg/clock"
	"github.com/KirkDiggler/trainer-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/trainer-api/internal/redis"
	resolvedcard "github.com/KirkDiggler/trainer-api/internal/repositories/resolved_card"
	"github.com/KirkDiggler/trainer-api/internal/repositories/roster"
)

var (
	grpcPort  int
	redisAddr string
	dataDir   string
	cacheTTL  time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Trainer API gRPC server with the catalog service.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address (host:port or redis:// URL)")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory of YAML tables (embedded data set when empty)")
	serverCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", resolvedcard.DefaultTTL, "Resolved card cache TTL")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	tables, err := loadTables(dataDir)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d creatures and %d cards", len(tables.Creatures), len(tables.Cards))

	redisClient, err := newRedisClient(redisAddr)
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	if err := redisclient.Ping(ctx, redisClient, 5*time.Second); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", redisAddr, err)
	}

	sysClock := clock.New()

	rosterRepo, err := roster.NewRedis(&roster.RedisConfig{
		Client: redisClient,
		Clock:  sysClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster repository: %w", err)
	}

	dataVersion, err := tables.CardVersion()
	if err != nil {
		return err
	}

	cardCache, err := resolvedcard.NewRedis(&resolvedcard.RedisConfig{
		Client:      redisClient,
		TTL:         cacheTTL,
		DataVersion: dataVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create card cache: %w", err)
	}

	if err := purgeCardCache(ctx, cardCache, tables.CardNames()); err != nil {
		return err
	}
	log.Printf("Card cache purged for data version %s", dataVersion)

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		Tables:      tables,
		RosterRepo:  rosterRepo,
		CardCache:   cardCache,
		IDGenerator: idgen.NewUUID("oc"),
		Clock:       sysClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}

	catalogHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CatalogService: catalogService,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
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

	v1alpha1.RegisterCatalogServiceServer(srv, catalogHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
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
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// purgeCardCache drops every cached resolution of the loaded cards, including
// entries written from earlier data sets
func purgeCardCache(ctx context.Context, cache resolvedcard.Repository, names []string) error {
	for _, name := range names {
		if _, err := cache.Invalidate(ctx, resolvedcard.InvalidateInput{CardName: name}); err != nil {
			return fmt.Errorf("failed to purge cached card %s: %w", name, err)
		}
	}
	return nil
}

func newRedisClient(addr string) (redisclient.Client, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		client, err := redisclient.NewClientFromURL(addr)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		return client, nil
	}

	client, err := redisclient.NewClient(addr, &redisclient.Options{
		PoolSize:        10,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	return client, nil
}

// logFunc forwards interceptor logs to slog; the two level scales line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
