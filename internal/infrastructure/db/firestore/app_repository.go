package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/iskate/admin-portal/internal/core/domain"
)

type AppRepository struct {
	client *firestore.Client
}

func NewAppRepository(client *firestore.Client) *AppRepository {
	return &AppRepository{client: client}
}

func (r *AppRepository) Get(ctx context.Context) (*domain.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	snap, err := r.client.Doc(appDocPath).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrAppStateNotFound
		}
		return nil, fmt.Errorf("get app state: %w", err)
	}
	return decodeAppState(snap.Data()), nil
}

// SetActive checks the version and writes inside one transaction. The
// transaction's read lock makes the check-and-set atomic.
func (r *AppRepository) SetActive(ctx context.Context, active bool, expectedVersion int64, by string, at time.Time) (*domain.AppState, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	ref := r.client.Doc(appDocPath)
	var next *domain.AppState
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrAppStateNotFound
			}
			return err
		}

		current := decodeAppState(snap.Data())
		if current.Version != expectedVersion {
			return domain.ErrVersionConflict
		}

		next = &domain.AppState{Active: active, Version: current.Version + 1, UpdatedAt: &at, UpdatedBy: by}
		return tx.Set(ref, map[string]any{
			"active":    next.Active,
			"version":   next.Version,
			"updatedAt": at,
			"updatedBy": by,
		}, firestore.MergeAll)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAppStateNotFound) || errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("set app state: %w", err)
	}
	return next, nil
}

func decodeAppState(data map[string]any) *domain.AppState {
	return &domain.AppState{
		Active:    boolField(data, "active"),
		Version:   int64Field(data, "version"),
		UpdatedAt: timeField(data, "updatedAt"),
		UpdatedBy: stringField(data, "updatedBy"),
	}
}
