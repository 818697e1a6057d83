package diagnosis

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/naufalrizky/healthscan/pkg/util"
)

const reportDisclaimer = "Ini adalah diagnosis awal berbasis AI. Harap konsultasikan dengan tenaga medis profesional."

// BuildReport serializes a diagnosis into the downloadable plain-text
// report.
func BuildReport(d Diagnosis, symptoms []string, now time.Time) string {
	return strings.TrimSpace(fmt.Sprintf(`Laporan Diagnosis Kesehatan
Tanggal: %s

Gejala yang dialami:
%s

Kemungkinan Kondisi:
%s

Tingkat Keparahan: %s

Rekomendasi:
%s

Catatan: %s`,
		displayDate(now),
		strings.Join(symptoms, ", "),
		strings.Join(d.PossibleConditions, "\n"),
		d.Severity,
		d.Recommendation,
		reportDisclaimer,
	))
}

// ReportFilename names the export after the current date.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("diagnosis-%s.txt", now.In(util.Jakarta).Format("2006-01-02"))
}

// BuildShareText serializes a diagnosis into the WhatsApp-formatted
// message block.
func BuildShareText(d Diagnosis, symptoms []string, now time.Time) string {
	return strings.TrimSpace(fmt.Sprintf(`*Hasil Diagnosis Kesehatan*
Tanggal: %s

*Gejala:*
%s

*Kemungkinan Kondisi:*
%s

*Tingkat Keparahan:* %s

*Rekomendasi:*
%s

_%s_`,
		displayDate(now),
		strings.Join(symptoms, ", "),
		strings.Join(d.PossibleConditions, "\n"),
		d.Severity,
		d.Recommendation,
		reportDisclaimer,
	))
}

// ShareLink wraps the share text in a messaging deep link.
func ShareLink(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

func displayDate(now time.Time) string {
	return now.In(util.Jakarta).Format("2/1/2006")
}
