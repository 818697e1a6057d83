package diagnosis

import (
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

// ErrSelectionFull is returned when a fourth symptom is toggled on.
var ErrSelectionFull = apperrors.Wrap("invalid_input", "Anda hanya dapat memilih maksimal 3 gejala", nil)

// Selection is the ordered unique set of symptoms a user has toggled
// on, capped at MaxSymptoms.
type Selection struct {
	items []string
}

// Toggle flips the membership of symptom. Toggling an unknown label
// fails, and toggling a fourth symptom on is rejected without changing
// the selection.
func (s *Selection) Toggle(symptom string) error {
	if !IsKnownSymptom(symptom) {
		return apperrors.Wrap("invalid_input", "Ditemukan gejala yang tidak valid", nil)
	}
	for i, existing := range s.items {
		if existing == symptom {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	if len(s.items) >= MaxSymptoms {
		return ErrSelectionFull
	}
	s.items = append(s.items, symptom)
	return nil
}

// Contains reports whether the symptom is currently selected.
func (s *Selection) Contains(symptom string) bool {
	for _, existing := range s.items {
		if existing == symptom {
			return true
		}
	}
	return false
}

// Len returns the number of selected symptoms.
func (s *Selection) Len() int {
	return len(s.items)
}

// Items returns the selection snapshot in toggle order.
func (s *Selection) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.items = nil
}
