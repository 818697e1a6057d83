package diagnosis

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

// Service exposes the diagnosis and facility lookup pipelines.
type Service interface {
	Diagnose(ctx context.Context, symptoms []string) (Diagnosis, error)
	LookupFacilities(ctx context.Context, location string) []HealthFacility
}

// TextGenerator is the single-method model abstraction so pipelines
// can be tested with a scripted fake.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config holds the pipeline knobs.
type Config struct {
	DefaultLocation string
}

type service struct {
	cfg    Config
	client TextGenerator
	gate   *CooldownGate
	logger *slog.Logger
}

// NewService wires up the diagnosis domain.
func NewService(cfg Config, client TextGenerator, gate *CooldownGate, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		gate:   gate,
		logger: logger.With("component", "diagnosis.service"),
	}
}

// Diagnose runs gate, validation, prompt, model call and coercion.
// It never writes history; the caller appends an entry on success.
func (s *service) Diagnose(ctx context.Context, symptoms []string) (Diagnosis, error) {
	if err := s.gate.Allow(ctx); err != nil {
		return Diagnosis{}, err
	}
	if err := ValidateSymptoms(symptoms); err != nil {
		return Diagnosis{}, err
	}

	raw, err := s.client.GenerateText(ctx, diagnosisPrompt(symptoms))
	if err != nil {
		return Diagnosis{}, remapGenerateError(err)
	}
	s.logger.Debug("diagnosis response received", "content", raw)

	result, err := coerceDiagnosis(raw)
	if err != nil {
		return Diagnosis{}, err
	}
	s.logger.Info("diagnosis completed", "symptoms", len(symptoms), "severity", result.Severity)
	return result, nil
}

// LookupFacilities never fails outward: every error path logs and
// yields an empty list. No rate limiting applies here.
func (s *service) LookupFacilities(ctx context.Context, location string) []HealthFacility {
	if strings.TrimSpace(location) == "" {
		location = s.cfg.DefaultLocation
	}

	raw, err := s.client.GenerateText(ctx, facilityPrompt(location))
	if err != nil {
		s.logger.Warn("facility lookup failed", "location", location, "error", err)
		return nil
	}

	facilities := coerceFacilities(raw)
	s.logger.Info("facility lookup completed", "location", location, "count", len(facilities))
	return facilities
}

// remapGenerateError reclassifies opaque transport failures into the
// user-facing messages by substring heuristic.
func remapGenerateError(err error) error {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "rate limit"):
		return apperrors.Wrap("llm_error", "Terlalu banyak permintaan. Mohon tunggu beberapa saat.", err)
	case strings.Contains(text, "invalid"):
		return apperrors.Wrap("llm_error", "Input tidak valid. Mohon periksa kembali gejala yang dipilih.", err)
	default:
		return apperrors.Wrap("llm_error", "Terjadi kesalahan dalam memproses diagnosis", err)
	}
}
