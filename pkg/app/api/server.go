// Package api wires the token registry API server process together.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/memeforge/memeforge/pkg/app/http"
	"github.com/memeforge/memeforge/pkg/config"
	"github.com/memeforge/memeforge/pkg/fees"
	liquidityservice "github.com/memeforge/memeforge/pkg/liquidity/service"
	"github.com/memeforge/memeforge/pkg/liquiditystore"
	"github.com/memeforge/memeforge/pkg/pgutil"
	"github.com/memeforge/memeforge/pkg/solana"
	tokenservice "github.com/memeforge/memeforge/pkg/token/service"
	"github.com/memeforge/memeforge/pkg/tokenstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

// Run starts the API server and blocks until shutdown.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	tokenStore := tokenstore.NewStore(db)
	controlStore := liquiditystore.NewStore(db)

	tokenSvc := tokenservice.NewService(
		tokenStore,
		controlStore,
		solana.NewKeypairGenerator(),
		logger,
	)
	liquiditySvc := liquidityservice.NewService(controlStore, logger)

	estimator, err := fees.NewEstimator(&fees.Schedule{
		MainnetCreationFee: cfg.Fees.MainnetCreationFee,
		MainnetMetadataFee: cfg.Fees.MainnetMetadataFee,
	})
	if err != nil {
		return fmt.Errorf("setup fee estimator: %w", err)
	}

	router := s.setupRouter(
		tokenservice.NewLog(tokenSvc, logger),
		liquidityservice.NewLog(liquiditySvc, logger),
		estimator,
		logger,
	)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(
	tokenSvc tokenservice.Service,
	liquiditySvc liquidityservice.Service,
	estimator *fees.Estimator,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	tokenservice.RegisterRoutes(r, tokenSvc, logger)
	liquidityservice.RegisterRoutes(r, liquiditySvc, logger)
	fees.RegisterRoutes(r, estimator, logger)

	return r
}
