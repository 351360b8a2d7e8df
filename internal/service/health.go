package service

import (
	"context"
	"time"

	"github.com/VladPetriv/busbooker/pkg/logger"
)

type healthService struct {
	logger *logger.Logger
	stores Stores
}

var _ HealthService = (*healthService)(nil)

// NewHealth returns new instance of health service.
func NewHealth(logger *logger.Logger, stores Stores) *healthService {
	return &healthService{
		logger: logger,
		stores: stores,
	}
}

func (h healthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy:   true,
		Timestamp: time.Now(),
	}

	if h.stores.Health == nil {
		return status
	}

	err := h.stores.Health.Ping(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("ping store")
		status.Healthy = false
	}

	return status
}
