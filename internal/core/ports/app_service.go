package ports

import (
	"context"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type AppService interface {
	Get(ctx context.Context) (*domain.AppState, error)
	SetActive(ctx context.Context, actor domain.Actor, active bool, expectedVersion int64) (*domain.AppState, error)
}
