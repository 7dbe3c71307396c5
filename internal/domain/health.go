package domain

import "context"

// Pinger is implemented by every document store backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}
