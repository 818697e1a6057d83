package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymptomsReturnsCopy(t *testing.T) {
	first := Symptoms()
	require.Len(t, first, 12)
	require.Equal(t, "Sakit Kepala", first[0])

	first[0] = "mutated"
	require.Equal(t, "Sakit Kepala", Symptoms()[0])
}

func TestValidateSymptoms(t *testing.T) {
	require.NoError(t, ValidateSymptoms([]string{"Demam"}))
	require.NoError(t, ValidateSymptoms([]string{"Demam", "Batuk", "Diare"}))

	require.Error(t, ValidateSymptoms(nil))
	require.Error(t, ValidateSymptoms([]string{"Demam", "Batuk", "Diare", "Mual"}))
	require.Error(t, ValidateSymptoms([]string{"demam"})) // catalog match is exact
	require.Error(t, ValidateSymptoms([]string{"Demam", "Demam"}))
}
