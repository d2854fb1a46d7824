// Package store holds the live application dataset and implements the
// repository ports over it. The dataset is a single shared value guarded by
// an RWMutex; every mutation is written through to the snapshot blob before
// the call returns.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/api/metrics"
	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/infrastructure/snapshot"
)

type Store struct {
	mu   sync.RWMutex
	data *domain.Dataset
	blob snapshot.Blob
	log  zerolog.Logger
}

// New loads the dataset from the blob store, falling back to the seed
// dataset when the snapshot is absent or malformed. A freshly seeded
// dataset is persisted immediately so the next load finds it.
func New(ctx context.Context, blob snapshot.Blob, log zerolog.Logger) (*Store, error) {
	ds, seeded, err := snapshot.LoadOrSeed(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("store: load snapshot: %w", err)
	}
	s := &Store{data: ds, blob: blob, log: log}
	if seeded {
		log.Info().Msg("no usable snapshot found, seeded default dataset")
		if err := s.persistLocked(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dataset returns a deep copy of the current dataset.
func (s *Store) Dataset() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// persistLocked encodes and saves the full dataset. Callers must hold mu.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := snapshot.Encode(s.data)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := s.blob.Save(ctx, data); err != nil {
		metrics.SnapshotSaveErrorsTotal.Inc()
		return fmt.Errorf("store: save snapshot: %w", err)
	}
	metrics.SnapshotSavesTotal.Inc()
	return nil
}
