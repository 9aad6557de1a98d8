package ports

import (
	"context"
	"time"

	"github.com/iskate/admin-portal/internal/core/domain"
)

// AppRepository reads and writes the global app state record.
type AppRepository interface {
	// Get returns domain.ErrAppStateNotFound when the record is absent.
	Get(ctx context.Context) (*domain.AppState, error)
	// SetActive writes the flag only if the stored version equals
	// expectedVersion, returning domain.ErrVersionConflict otherwise.
	SetActive(ctx context.Context, active bool, expectedVersion int64, by string, at time.Time) (*domain.AppState, error)
}
