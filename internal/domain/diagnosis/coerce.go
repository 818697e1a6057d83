package diagnosis

import (
	"encoding/json"
	"strings"

	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

// Sentinel values substituted when the model output cannot be used.
const (
	fallbackCondition      = "Tidak dapat menentukan diagnosis spesifik"
	fallbackRecommendation = "Silakan konsultasikan dengan dokter untuk evaluasi lebih lanjut."
	reasonUnavailable      = "Tidak tersedia"
	severityReasonLabel    = "Alasan tingkat keparahan"
)

// sanitizeResponse strips control characters and collapses whitespace
// runs so the JSON span can be located reliably.
func sanitizeResponse(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, raw)
	return strings.Join(strings.Fields(cleaned), " ")
}

// extractJSONSpan returns the greedy first-{ through last-} region.
func extractJSONSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

type diagnosisWire struct {
	PossibleConditions json.RawMessage `json:"possibleConditions"`
	Severity           json.RawMessage `json:"severity"`
	SeverityReason     json.RawMessage `json:"severityReason"`
	Recommendation     json.RawMessage `json:"recommendation"`
}

// coerceDiagnosis extracts and normalizes a Diagnosis from untrusted
// model output. Only a missing or unparseable JSON span fails; every
// field-level problem is repaired with a safe default.
func coerceDiagnosis(raw string) (Diagnosis, error) {
	span, ok := extractJSONSpan(sanitizeResponse(raw))
	if !ok {
		return Diagnosis{}, apperrors.Wrap("malformed_response", "Format respons tidak valid", nil)
	}

	var wire diagnosisWire
	if err := json.Unmarshal([]byte(span), &wire); err != nil {
		return Diagnosis{}, apperrors.Wrap("malformed_response", "Struktur respons tidak valid", err)
	}

	return Diagnosis{
		PossibleConditions: coerceConditions(wire.PossibleConditions),
		Severity:           coerceSeverity(wire.Severity),
		Recommendation:     coerceRecommendation(wire.Recommendation, wire.SeverityReason),
	}, nil
}

func coerceConditions(raw json.RawMessage) []string {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []string{fallbackCondition}
	}
	conditions := make([]string, 0, MaxSymptoms)
	for _, entry := range entries {
		var condition string
		if err := json.Unmarshal(entry, &condition); err != nil {
			continue
		}
		if strings.TrimSpace(condition) == "" {
			continue
		}
		conditions = append(conditions, condition)
		if len(conditions) == MaxSymptoms {
			break
		}
	}
	if len(conditions) == 0 {
		return []string{fallbackCondition}
	}
	return conditions
}

func coerceSeverity(raw json.RawMessage) Severity {
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return SeverityLow
	}
	severity := Severity(token)
	if !severity.Valid() {
		// An unrecognized token degrades to the least urgent tier.
		return SeverityLow
	}
	return severity
}

func coerceRecommendation(recRaw, reasonRaw json.RawMessage) string {
	var recommendation string
	if err := json.Unmarshal(recRaw, &recommendation); err != nil || strings.TrimSpace(recommendation) == "" {
		return fallbackRecommendation
	}

	reason := reasonUnavailable
	var decoded string
	if err := json.Unmarshal(reasonRaw, &decoded); err == nil && strings.TrimSpace(decoded) != "" {
		reason = decoded
	}
	return recommendation + "\n\n" + severityReasonLabel + ": " + reason
}

type facilitiesWire struct {
	Facilities []HealthFacility `json:"facilities"`
}

// coerceFacilities extracts the facility list. Lookup degrades
// silently: any structural failure yields an empty slice.
func coerceFacilities(raw string) []HealthFacility {
	span, ok := extractJSONSpan(sanitizeResponse(raw))
	if !ok {
		return nil
	}
	var wire facilitiesWire
	if err := json.Unmarshal([]byte(span), &wire); err != nil {
		return nil
	}
	return wire.Facilities
}
