// Package kvstore provides the persistent key-value store used for the
// rate-limit timestamp, the display preference and the history snapshot.
package kvstore

import "context"

// Store reads and writes string values under namespaced keys. All
// persisted keys carry an explicit schema version so a future layout
// change cannot silently misread old data.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SchemaVersion is embedded in every key the service persists.
const SchemaVersion = "v1"

// Key builds a fully qualified store key.
func Key(prefix, name string) string {
	if prefix == "" {
		prefix = "healthscan"
	}
	return prefix + ":" + SchemaVersion + ":" + name
}
