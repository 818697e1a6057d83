package diagnosis

import (
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

// catalog is the fixed set of selectable symptom labels. The order is
// the display order.
var catalog = []string{
	"Sakit Kepala",
	"Demam",
	"Batuk",
	"Kelelahan",
	"Sakit Tenggorokan",
	"Nyeri Badan",
	"Mual",
	"Pusing",
	"Pilek",
	"Sesak Nafas",
	"Diare",
	"Kehilangan Nafsu Makan",
}

var catalogSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(catalog))
	for _, symptom := range catalog {
		set[symptom] = struct{}{}
	}
	return set
}()

// MaxSymptoms caps how many symptoms one diagnosis may cover.
const MaxSymptoms = 3

// Symptoms returns a copy of the catalog.
func Symptoms() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsKnownSymptom reports whether the label belongs to the catalog.
func IsKnownSymptom(symptom string) bool {
	_, ok := catalogSet[symptom]
	return ok
}

// ValidateSymptoms enforces the 1..3 count bound and catalog
// membership before any prompt is built.
func ValidateSymptoms(symptoms []string) error {
	if len(symptoms) == 0 || len(symptoms) > MaxSymptoms {
		return apperrors.Wrap("invalid_input", "Jumlah gejala tidak valid (1-3 gejala)", nil)
	}
	seen := make(map[string]struct{}, len(symptoms))
	for _, symptom := range symptoms {
		if !IsKnownSymptom(symptom) {
			return apperrors.Wrap("invalid_input", "Ditemukan gejala yang tidak valid", nil)
		}
		if _, dup := seen[symptom]; dup {
			return apperrors.Wrap("invalid_input", "Ditemukan gejala yang tidak valid", nil)
		}
		seen[symptom] = struct{}{}
	}
	return nil
}
