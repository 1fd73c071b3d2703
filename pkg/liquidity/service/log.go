package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/memeforge/memeforge/internal/metrics"
	"github.com/memeforge/memeforge/pkg/liquidity"
)

const serviceName = "LiquidityService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the liquidity Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Upsert(ctx context.Context, req *liquidity.UpsertRequest) (resp *liquidity.Response, err error) {
	start := time.Now()

	ls.logger.Info("Upsert started",
		zap.String("service", serviceName),
		zap.String("method", "Upsert"),
		zap.String("token_id", req.TokenID),
		zap.Bool("multi_sig_enabled", req.MultiSigEnabled),
		zap.Int("required_signatures", req.RequiredSignatures),
		zap.Int("timelock_duration", req.TimelockDuration),
		zap.Int("withdrawal_addresses", len(req.WithdrawalAddresses)),
	)

	defer func() {
		duration := time.Since(start)
		ls.observe("Upsert", duration, err)

		if err != nil {
			ls.logger.Error("Upsert failed",
				zap.String("service", serviceName),
				zap.String("method", "Upsert"),
				zap.String("token_id", req.TokenID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			metrics.LiquidityControlsUpserted.Inc()
			ls.logger.Info("Upsert completed",
				zap.String("service", serviceName),
				zap.String("method", "Upsert"),
				zap.String("control_id", resp.ID),
				zap.String("token_id", resp.TokenID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Upsert(ctx, req)
}

func (ls *logService) Get(ctx context.Context, tokenID string) (resp *liquidity.Response, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		ls.observe("Get", duration, err)

		if err != nil {
			ls.logger.Warn("Get failed",
				zap.String("service", serviceName),
				zap.String("method", "Get"),
				zap.String("token_id", tokenID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("Get completed",
				zap.String("service", serviceName),
				zap.String("method", "Get"),
				zap.String("token_id", tokenID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Get(ctx, tokenID)
}

func (ls *logService) observe(method string, duration time.Duration, err error) {
	metrics.ServiceRequestsTotal.WithLabelValues(serviceName, method, metrics.Outcome(err)).Inc()
	metrics.ServiceRequestDuration.WithLabelValues(serviceName, method).Observe(duration.Seconds())
}
