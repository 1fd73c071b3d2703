package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/memeforge/memeforge/internal/metrics"
	"github.com/memeforge/memeforge/pkg/token"
)

const serviceName = "TokenService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the token Service.
// It logs method entry/exit, duration and errors, and records request metrics.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Create(ctx context.Context, req *token.CreateRequest) (resp *token.Response, err error) {
	start := time.Now()

	ls.logger.Info("Create started",
		zap.String("service", serviceName),
		zap.String("method", "Create"),
		zap.String("user_id", req.UserID),
		zap.String("symbol", req.Symbol),
		zap.String("network", req.Network),
	)

	defer func() {
		duration := time.Since(start)
		ls.observe("Create", duration, err)

		if err != nil {
			ls.logger.Error("Create failed",
				zap.String("service", serviceName),
				zap.String("method", "Create"),
				zap.String("user_id", req.UserID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			metrics.TokensCreated.WithLabelValues(resp.Network).Inc()
			ls.logger.Info("Create completed",
				zap.String("service", serviceName),
				zap.String("method", "Create"),
				zap.String("token_id", resp.ID),
				zap.String("mint_address", resp.MintAddress),
				zap.String("network", resp.Network),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Create(ctx, req)
}

func (ls *logService) Get(ctx context.Context, id string) (resp *token.Response, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		ls.observe("Get", duration, err)

		if err != nil {
			ls.logger.Warn("Get failed",
				zap.String("service", serviceName),
				zap.String("method", "Get"),
				zap.String("token_id", id),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("Get completed",
				zap.String("service", serviceName),
				zap.String("method", "Get"),
				zap.String("token_id", id),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Get(ctx, id)
}

func (ls *logService) List(ctx context.Context, userID, network string) (resp *token.ListResponse, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		ls.observe("List", duration, err)

		if err != nil {
			ls.logger.Error("List failed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.String("user_id", userID),
				zap.String("network", network),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("List completed",
				zap.String("service", serviceName),
				zap.String("method", "List"),
				zap.String("user_id", userID),
				zap.String("network", network),
				zap.Int("count", len(resp.Tokens)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.List(ctx, userID, network)
}

func (ls *logService) Update(ctx context.Context, id string, req *token.UpdateRequest) (resp *token.Response, err error) {
	start := time.Now()

	ls.logger.Info("Update started",
		zap.String("service", serviceName),
		zap.String("method", "Update"),
		zap.String("token_id", id),
		zap.Bool("has_mint_address", req.MintAddress != nil),
		zap.Bool("has_transaction_signature", req.TransactionSignature != nil),
	)

	defer func() {
		duration := time.Since(start)
		ls.observe("Update", duration, err)

		if err != nil {
			ls.logger.Error("Update failed",
				zap.String("service", serviceName),
				zap.String("method", "Update"),
				zap.String("token_id", id),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Update completed",
				zap.String("service", serviceName),
				zap.String("method", "Update"),
				zap.String("token_id", id),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Update(ctx, id, req)
}

func (ls *logService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()

	ls.logger.Info("Delete started",
		zap.String("service", serviceName),
		zap.String("method", "Delete"),
		zap.String("token_id", id),
	)

	defer func() {
		duration := time.Since(start)
		ls.observe("Delete", duration, err)

		if err != nil {
			ls.logger.Error("Delete failed",
				zap.String("service", serviceName),
				zap.String("method", "Delete"),
				zap.String("token_id", id),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Delete completed",
				zap.String("service", serviceName),
				zap.String("method", "Delete"),
				zap.String("token_id", id),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Delete(ctx, id)
}

func (ls *logService) observe(method string, duration time.Duration, err error) {
	metrics.ServiceRequestsTotal.WithLabelValues(serviceName, method, metrics.Outcome(err)).Inc()
	metrics.ServiceRequestDuration.WithLabelValues(serviceName, method).Observe(duration.Seconds())
}
