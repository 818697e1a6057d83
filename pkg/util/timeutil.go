package util

import "time"

// Jakarta is the reference timezone for user-facing dates.
var Jakarta = time.FixedZone("Asia/Jakarta", 7*60*60)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}
