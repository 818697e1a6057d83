package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

type fakeRepository struct {
	entries []Entry
	loadErr error
	saveErr error
}

func (f *fakeRepository) Load(ctx context.Context) ([]Entry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]Entry(nil), f.entries...), nil
}

func (f *fakeRepository) Save(ctx context.Context, entries []Entry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = append([]Entry(nil), entries...)
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDiagnosis(condition string) diagnosis.Diagnosis {
	return diagnosis.Diagnosis{
		PossibleConditions: []string{condition},
		Severity:           diagnosis.SeverityLow,
		Recommendation:     "Istirahat",
	}
}

func TestAppendKeepsNewestEntries(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(Config{Limit: 10}, repo, newTestLogger()).(*service)
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		_, err := svc.Append(ctx, []string{"Demam"}, sampleDiagnosis(fmt.Sprintf("Kondisi %d", i)))
		require.NoError(t, err)
	}

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	require.Equal(t, []string{"Kondisi 10"}, entries[0].Diagnosis.PossibleConditions)
	require.Equal(t, []string{"Kondisi 1"}, entries[9].Diagnosis.PossibleConditions)

	for _, entry := range entries {
		require.NotEmpty(t, entry.ID)
	}
}

func TestDeleteByIndex(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(Config{}, repo, newTestLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Append(ctx, []string{"Batuk"}, sampleDiagnosis(fmt.Sprintf("Kondisi %d", i)))
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, 1))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, []string{"Kondisi 2"}, entries[0].Diagnosis.PossibleConditions)
	require.Equal(t, []string{"Kondisi 0"}, entries[1].Diagnosis.PossibleConditions)
}

func TestDeleteOutOfRange(t *testing.T) {
	svc := NewService(Config{}, &fakeRepository{}, newTestLogger())
	ctx := context.Background()

	err := svc.Delete(ctx, 0)
	require.True(t, apperrors.IsCode(err, "not_found"))

	err = svc.Delete(ctx, -1)
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestQuerySearchMatchesSymptomsAndConditions(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(Config{}, repo, newTestLogger())
	ctx := context.Background()

	_, err := svc.Append(ctx, []string{"Demam", "Batuk"}, sampleDiagnosis("Influenza"))
	require.NoError(t, err)
	_, err = svc.Append(ctx, []string{"Diare"}, sampleDiagnosis("Gastroenteritis"))
	require.NoError(t, err)

	got, err := svc.Query(ctx, Filter{Search: "influ"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []string{"Demam", "Batuk"}, got[0].Symptoms)

	got, err = svc.Query(ctx, Filter{Search: "DIARE"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.Query(ctx, Filter{Search: "tidak ada"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestQueryDateRangeEndIsInclusive(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(Config{}, repo, newTestLogger()).(*service)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 30, 0, 0, time.UTC),
	}
	for i, date := range dates {
		svc.now = func() time.Time { return date }
		_, err := svc.Append(ctx, []string{"Demam"}, sampleDiagnosis(fmt.Sprintf("Kondisi %d", i)))
		require.NoError(t, err)
	}

	got, err := svc.Query(ctx, Filter{
		Start: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []string{"Kondisi 1"}, got[0].Diagnosis.PossibleConditions)
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	svc := NewService(Config{}, &fakeRepository{loadErr: errors.New("disk gone")}, newTestLogger())
	ctx := context.Background()

	_, err := svc.Append(ctx, []string{"Demam"}, sampleDiagnosis("Flu"))
	require.True(t, apperrors.IsCode(err, "storage_error"))

	_, err = svc.Query(ctx, Filter{})
	require.True(t, apperrors.IsCode(err, "storage_error"))
}
