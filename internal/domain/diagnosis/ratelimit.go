package diagnosis

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/naufalrizky/healthscan/internal/infra/kvstore"
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

const lastDiagnosisKey = "last_diagnosis_at"

// CooldownGate enforces the minimum interval between two diagnosis
// attempts, backed by a single persisted timestamp so the window
// survives restarts.
type CooldownGate struct {
	store  kvstore.Store
	key    string
	window time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewCooldownGate constructs the gate. window <= 0 disables it.
func NewCooldownGate(store kvstore.Store, prefix string, window time.Duration, logger *slog.Logger) *CooldownGate {
	return &CooldownGate{
		store:  store,
		key:    kvstore.Key(prefix, lastDiagnosisKey),
		window: window,
		logger: logger.With("component", "diagnosis.cooldown"),
		now:    time.Now,
	}
}

// Allow checks the cooldown and, when the attempt may proceed, records
// the current instant as the new last-call timestamp. Rejected
// attempts leave the timestamp untouched, so hammering the endpoint
// cannot push the window forever out of reach. Store failures degrade
// open: a broken store must not block diagnosis.
func (g *CooldownGate) Allow(ctx context.Context) error {
	if g.window <= 0 {
		return nil
	}

	now := g.now()
	value, found, err := g.store.Get(ctx, g.key)
	if err != nil {
		g.logger.Warn("cooldown read failed, allowing request", "error", err)
	} else if found {
		lastMillis, parseErr := strconv.ParseInt(value, 10, 64)
		if parseErr != nil {
			g.logger.Warn("cooldown timestamp unreadable, allowing request", "value", value)
		} else if elapsed := now.Sub(time.UnixMilli(lastMillis)); elapsed < g.window {
			return apperrors.Wrap("too_soon", "Mohon tunggu beberapa saat sebelum melakukan diagnosis baru", nil)
		}
	}

	if err := g.store.Set(ctx, g.key, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		g.logger.Warn("cooldown write failed", "error", err)
	}
	return nil
}
