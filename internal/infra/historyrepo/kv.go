// Package historyrepo persists the diagnosis history snapshot.
package historyrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/naufalrizky/healthscan/internal/domain/history"
	"github.com/naufalrizky/healthscan/internal/infra/kvstore"
)

const historyKey = "diagnosis_history"

// envelopeVersion guards the persisted layout.
const envelopeVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Entries []history.Entry `json:"entries"`
}

// KVRepository stores the whole log as one JSON envelope in the
// key-value store, mirroring the full-rewrite-per-mutation contract.
type KVRepository struct {
	store kvstore.Store
	key   string
}

// NewKVRepository constructs the repository.
func NewKVRepository(store kvstore.Store, prefix string) *KVRepository {
	return &KVRepository{store: store, key: kvstore.Key(prefix, historyKey)}
}

// Load implements history.Repository. A missing key means an empty log.
func (r *KVRepository) Load(ctx context.Context) ([]history.Entry, error) {
	payload, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil, fmt.Errorf("decode history envelope: %w", err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported history schema version %d", env.Version)
	}
	return env.Entries, nil
}

// Save implements history.Repository.
func (r *KVRepository) Save(ctx context.Context, entries []history.Entry) error {
	payload, err := json.Marshal(envelope{Version: envelopeVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("encode history envelope: %w", err)
	}
	return r.store.Set(ctx, r.key, string(payload))
}

var _ history.Repository = (*KVRepository)(nil)
