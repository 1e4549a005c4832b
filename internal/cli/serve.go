package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/autocat-service/internal/config"
	"github.com/light-bringer/autocat-service/internal/services"
	"github.com/light-bringer/autocat-service/internal/transport/grpc/catalog"
	"github.com/light-bringer/autocat-service/internal/transport/grpc/interceptors"
	httptransport "github.com/light-bringer/autocat-service/internal/transport/http"
)

const (
	envLocal = "local"
	envDev   = "dev"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST, gRPC and metrics servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return serve(cmd.Context(), cfg, log)
	},
}

func serve(parent context.Context, cfg *config.Config, log *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	rootCtx, rootCancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	log.Info("starting application", zap.String("env", cfg.Env), zap.String("store", cfg.Store.Driver))

	// Store connection with a bounded wait.
	initCtx, initCancel := context.WithTimeout(rootCtx, 10*time.Second)
	opts, err := services.NewServiceOptions(initCtx, cfg, log)
	initCancel()
	if err != nil {
		return err
	}
	defer opts.Close()

	var ready atomic.Bool

	// Probes and Prometheus.
	metricsMux := http.NewServeMux()
	metricsMux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if ready.Load() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	metricsMux.Handle("/metrics", promhttp.Handler())

	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	apiSrv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: httptransport.NewRouter(opts.HTTPHandler, httptransport.Options{
			Logger:  log,
			Timeout: cfg.Timeouts.Request,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpc_prometheus.EnableHandlingTimeHistogram()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.Recover(),
			interceptors.UnaryLogging(log),
			interceptors.WithTimeout(cfg.Timeouts.Request),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	catalog.RegisterCatalogServiceServer(grpcServer, opts.CatalogHandler)

	if cfg.Env == envLocal || cfg.Env == envDev {
		reflection.Register(grpcServer)
	}
	grpc_prometheus.Register(grpcServer)

	listener, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		return err
	}

	errCh := make(chan error, 3)
	go func() {
		log.Info("metrics_listen_start", zap.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		log.Info("http_listen_start", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		log.Info("grpc_listen_start", zap.String("addr", cfg.GRPC.Addr()))
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
	}()

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(catalog.ServiceName, healthpb.HealthCheckResponse_SERVING)
	ready.Store(true)

	var serveErr error
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-errCh:
		log.Error("server_failed", zap.Error(serveErr))
	}

	hs.Shutdown()
	ready.Store(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		log.Info("grpc_stopped")
	case <-shutdownCtx.Done():
		log.Warn("grpc_force_stop")
		grpcServer.Stop()
	}

	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_failed", zap.Error(err))
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics_shutdown_failed", zap.Error(err))
	}

	log.Info("service_stopped")
	return serveErr
}
