package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

func TestCoerceDiagnosisEmbeddedJSON(t *testing.T) {
	raw := "Berikut hasil analisis:\n```json\n{\"possibleConditions\":[\"Influenza\",\"ISPA\"],\"severity\":\"sedang\",\"severityReason\":\"Dua gejala sedang ditemukan\",\"recommendation\":\"Istirahat dan minum air putih\"}\n```\nSemoga lekas sembuh."

	got, err := coerceDiagnosis(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Influenza", "ISPA"}, got.PossibleConditions)
	require.Equal(t, SeverityMedium, got.Severity)
	require.Equal(t, "Istirahat dan minum air putih\n\nAlasan tingkat keparahan: Dua gejala sedang ditemukan", got.Recommendation)
}

func TestCoerceDiagnosisUnknownSeverityDegrades(t *testing.T) {
	raw := `{"possibleConditions":["Demam berdarah"],"severity":"urgent","recommendation":"Segera ke rumah sakit"}`

	got, err := coerceDiagnosis(raw)
	require.NoError(t, err)
	require.Equal(t, SeverityLow, got.Severity)
	require.Equal(t, "Segera ke rumah sakit\n\nAlasan tingkat keparahan: Tidak tersedia", got.Recommendation)
}

func TestCoerceDiagnosisNoJSONSpan(t *testing.T) {
	_, err := coerceDiagnosis("Maaf, saya tidak dapat membantu dengan permintaan ini.")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "malformed_response"))
	require.Equal(t, "Format respons tidak valid", apperrors.UserMessage(err))
}

func TestCoerceDiagnosisUnparseableSpan(t *testing.T) {
	_, err := coerceDiagnosis(`{"possibleConditions": [unterminated`)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "malformed_response"))
	require.Equal(t, "Struktur respons tidak valid", apperrors.UserMessage(err))
}

func TestCoerceDiagnosisConditionListRepaired(t *testing.T) {
	raw := `{"possibleConditions":["A",42,"","B","C","D"],"severity":"tinggi","recommendation":"x"}`

	got, err := coerceDiagnosis(raw)
	require.NoError(t, err)
	// Non-string and blank members are skipped, then the list is capped.
	require.Equal(t, []string{"A", "B", "C"}, got.PossibleConditions)
	require.Equal(t, SeverityHigh, got.Severity)
}

func TestCoerceDiagnosisEmptyConditionsFallBack(t *testing.T) {
	raw := `{"possibleConditions":[],"severity":"rendah"}`

	got, err := coerceDiagnosis(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Tidak dapat menentukan diagnosis spesifik"}, got.PossibleConditions)
	require.Equal(t, "Silakan konsultasikan dengan dokter untuk evaluasi lebih lanjut.", got.Recommendation)
}

func TestCoerceDiagnosisStripsControlCharacters(t *testing.T) {
	raw := "{\"possibleConditions\":[\"Flu\x01 Biasa\"],\n\t\"severity\":\"rendah\",\"recommendation\":\"Istirahat\"}"

	got, err := coerceDiagnosis(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Flu Biasa"}, got.PossibleConditions)
}

func TestCoerceFacilities(t *testing.T) {
	raw := `Berikut rekomendasinya: {"facilities":[{"name":"RSUD Tarakan","type":"RS Umum","address":"Jl. Kyai Caringin No.7","distance":"2 KM"}]}`

	got := coerceFacilities(raw)
	require.Len(t, got, 1)
	require.Equal(t, "RSUD Tarakan", got[0].Name)
	require.Equal(t, "2 KM", got[0].Distance)
}

func TestCoerceFacilitiesDegradesToEmpty(t *testing.T) {
	require.Empty(t, coerceFacilities("tidak ada data"))
	require.Empty(t, coerceFacilities(`{"facilities": "bukan daftar"}`))
}
