package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"
)

const healthPingTimeout = 2 * time.Second

type healthUsecase struct {
	store domain.Pinger
}

func NewHealthUsecase(store domain.Pinger) domain.HealthUsecase {
	return &healthUsecase{store: store}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := u.store.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn("store ping failed", "error", err)
		return map[string]string{
			"status": "degraded",
			"store":  "down",
		}
	}
	return map[string]string{
		"status": "ok",
		"store":  "up",
	}
}
