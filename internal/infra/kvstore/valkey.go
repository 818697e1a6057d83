package kvstore

import (
	"context"

	"github.com/valkey-io/valkey-go"
)

// ValkeyStore persists keys in a Valkey-compatible database so rate
// limit state and history survive restarts.
type ValkeyStore struct {
	client valkey.Client
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client) *ValkeyStore {
	return &ValkeyStore{client: client}
}

// Get implements Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := s.client.B().Get().Key(key).Build()
	value, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set implements Store.
func (s *ValkeyStore) Set(ctx context.Context, key, value string) error {
	cmd := s.client.B().Set().Key(key).Value(value).Build()
	return s.client.Do(ctx, cmd).Error()
}

// Delete implements Store.
func (s *ValkeyStore) Delete(ctx context.Context, key string) error {
	cmd := s.client.B().Del().Key(key).Build()
	return s.client.Do(ctx, cmd).Error()
}

var _ Store = (*ValkeyStore)(nil)
