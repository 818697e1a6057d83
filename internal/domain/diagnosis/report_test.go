package diagnosis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var reportDiagnosis = Diagnosis{
	PossibleConditions: []string{"Influenza", "ISPA"},
	Severity:           SeverityMedium,
	Recommendation:     "Istirahat cukup\n\nAlasan tingkat keparahan: Dua gejala sedang",
}

func TestBuildReport(t *testing.T) {
	// 20:00 UTC is already past midnight in Jakarta (UTC+7).
	now := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)

	report := BuildReport(reportDiagnosis, []string{"Demam", "Batuk"}, now)
	require.True(t, strings.HasPrefix(report, "Laporan Diagnosis Kesehatan"))
	require.Contains(t, report, "Tanggal: 6/3/2024")
	require.Contains(t, report, "Gejala yang dialami:\nDemam, Batuk")
	require.Contains(t, report, "Kemungkinan Kondisi:\nInfluenza\nISPA")
	require.Contains(t, report, "Tingkat Keparahan: sedang")
	require.Contains(t, report, "Catatan: Ini adalah diagnosis awal berbasis AI.")
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)
	require.Equal(t, "diagnosis-2024-03-06.txt", ReportFilename(now))
}

func TestBuildShareText(t *testing.T) {
	now := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	text := BuildShareText(reportDiagnosis, []string{"Demam"}, now)
	require.True(t, strings.HasPrefix(text, "*Hasil Diagnosis Kesehatan*"))
	require.Contains(t, text, "Tanggal: 5/3/2024")
	require.Contains(t, text, "*Gejala:*\nDemam")
	require.Contains(t, text, "*Tingkat Keparahan:* sedang")
	require.Contains(t, text, "_Ini adalah diagnosis awal berbasis AI.")
}

func TestShareLink(t *testing.T) {
	link := ShareLink("*Hasil* Diagnosis")
	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	require.Contains(t, link, "%2AHasil%2A+Diagnosis")
}

func TestPromptsEmbedInputs(t *testing.T) {
	prompt := diagnosisPrompt([]string{"Demam", "Pilek"})
	require.Contains(t, prompt, "Bahasa Indonesia: Demam, Pilek")
	require.Contains(t, prompt, `"severity": "rendah/sedang/tinggi"`)

	facility := facilityPrompt("Surabaya")
	require.Equal(t, 2, strings.Count(facility, "Surabaya"))
}
