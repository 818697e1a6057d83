package diagnosis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/naufalrizky/healthscan/internal/infra/kvstore"
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

func newGateUnderTest(window time.Duration) (*CooldownGate, *time.Time) {
	gate := NewCooldownGate(kvstore.NewMemoryStore(), "test", window, newTestLogger())
	current := time.UnixMilli(1700000000000)
	gate.now = func() time.Time { return current }
	return gate, &current
}

func TestCooldownGateBlocksWithinWindow(t *testing.T) {
	gate, current := newGateUnderTest(5 * time.Second)
	ctx := context.Background()

	require.NoError(t, gate.Allow(ctx))

	*current = current.Add(3 * time.Second)
	err := gate.Allow(ctx)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "too_soon"))
	require.Equal(t, "Mohon tunggu beberapa saat sebelum melakukan diagnosis baru", apperrors.UserMessage(err))

	*current = current.Add(3 * time.Second)
	require.NoError(t, gate.Allow(ctx))
}

func TestCooldownGateRejectionDoesNotResetWindow(t *testing.T) {
	gate, current := newGateUnderTest(5 * time.Second)
	ctx := context.Background()

	require.NoError(t, gate.Allow(ctx))

	// Hammering during the window must not push the deadline out.
	*current = current.Add(4 * time.Second)
	require.Error(t, gate.Allow(ctx))

	*current = current.Add(2 * time.Second)
	require.NoError(t, gate.Allow(ctx))
}

func TestCooldownGateDisabledWindow(t *testing.T) {
	gate, _ := newGateUnderTest(0)
	ctx := context.Background()

	require.NoError(t, gate.Allow(ctx))
	require.NoError(t, gate.Allow(ctx))
}

func TestCooldownGateUnreadableTimestampAllows(t *testing.T) {
	store := kvstore.NewMemoryStore()
	gate := NewCooldownGate(store, "test", 5*time.Second, newTestLogger())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kvstore.Key("test", "last_diagnosis_at"), "not-a-number"))
	require.NoError(t, gate.Allow(ctx))
}
