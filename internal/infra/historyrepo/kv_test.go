package historyrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	"github.com/naufalrizky/healthscan/internal/domain/history"
	"github.com/naufalrizky/healthscan/internal/infra/kvstore"
)

func TestKVRepositoryRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewKVRepository(store, "test")
	ctx := context.Background()

	entries := []history.Entry{
		{
			ID:       "abc",
			Date:     time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			Symptoms: []string{"Demam"},
			Diagnosis: diagnosis.Diagnosis{
				PossibleConditions: []string{"Influenza"},
				Severity:           diagnosis.SeverityMedium,
				Recommendation:     "Istirahat",
			},
		},
	}

	require.NoError(t, repo.Save(ctx, entries))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, entries, got)
}

func TestKVRepositoryMissingKeyMeansEmptyLog(t *testing.T) {
	repo := NewKVRepository(kvstore.NewMemoryStore(), "test")

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestKVRepositoryRejectsUnknownSchemaVersion(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewKVRepository(store, "test")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kvstore.Key("test", "diagnosis_history"), `{"version":2,"entries":[]}`))

	_, err := repo.Load(ctx)
	require.Error(t, err)
}
