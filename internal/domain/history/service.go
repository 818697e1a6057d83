package history

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
	"github.com/naufalrizky/healthscan/pkg/util"
)

// DefaultLimit caps the log at the most recent entries.
const DefaultLimit = 10

// Service owns the diagnosis history log.
type Service interface {
	Append(ctx context.Context, symptoms []string, result diagnosis.Diagnosis) (Entry, error)
	Delete(ctx context.Context, index int) error
	Query(ctx context.Context, filter Filter) ([]Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

// Config holds history behavior knobs.
type Config struct {
	Limit int
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
	now    func() time.Time

	// mu serializes read-modify-write cycles within this process so
	// two in-flight mutations cannot lose an update.
	mu sync.Mutex
}

// NewService wires up the history domain.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "history.service"),
		now:    util.NowUTC,
	}
}

// Append prepends the new entry, truncates to the newest entries and
// persists the whole snapshot.
func (s *service) Append(ctx context.Context, symptoms []string, result diagnosis.Diagnosis) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Date:      s.now(),
		Symptoms:  append([]string(nil), symptoms...),
		Diagnosis: result,
	}
	entries = append([]Entry{entry}, entries...)
	if len(entries) > s.cfg.Limit {
		entries = entries[:s.cfg.Limit]
	}

	if err := s.save(ctx, entries); err != nil {
		return Entry{}, err
	}
	s.logger.Info("history entry appended", "id", entry.ID, "size", len(entries))
	return entry, nil
}

// Delete removes the entry at the given position. Deletion is
// immediate and irreversible.
func (s *service) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return apperrors.Wrap("not_found", "Riwayat diagnosis tidak ditemukan", nil)
	}

	removed := entries[index]
	entries = append(entries[:index], entries[index+1:]...)
	if err := s.save(ctx, entries); err != nil {
		return err
	}
	s.logger.Info("history entry deleted", "id", removed.ID, "size", len(entries))
	return nil
}

// Query filters by case-insensitive substring over symptom names and
// possible conditions, combined with the inclusive date range.
func (s *service) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	s.mu.Lock()
	entries, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, filter) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// List returns the current snapshot, newest first.
func (s *service) List(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *service) load(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "gagal membaca riwayat diagnosis", err)
	}
	return entries, nil
}

func (s *service) save(ctx context.Context, entries []Entry) error {
	if err := s.repo.Save(ctx, entries); err != nil {
		return apperrors.Wrap("storage_error", "gagal menyimpan riwayat diagnosis", err)
	}
	return nil
}

func matches(entry Entry, filter Filter) bool {
	if !filter.Start.IsZero() && entry.Date.Before(filter.Start) {
		return false
	}
	if !filter.End.IsZero() && !entry.Date.Before(filter.End.AddDate(0, 0, 1)) {
		return false
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	if needle == "" {
		return true
	}
	for _, symptom := range entry.Symptoms {
		if strings.Contains(strings.ToLower(symptom), needle) {
			return true
		}
	}
	for _, condition := range entry.Diagnosis.PossibleConditions {
		if strings.Contains(strings.ToLower(condition), needle) {
			return true
		}
	}
	return false
}
