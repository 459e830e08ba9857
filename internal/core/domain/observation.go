package domain

import "time"

// ViewObservation is the cumulative view count seen for a clip on one
// calendar day. There is at most one observation per clip and day; a second
// observation on the same day replaces the first.
type ViewObservation struct {
	ClipID   int64
	Date     time.Time
	Views    int64
	Likes    int64
	Shares   int64
	Platform string
}

// ViewSnapshot is what a view supplier reports for a clip right now.
type ViewSnapshot struct {
	Views  int64 `json:"views"`
	Likes  int64 `json:"likes"`
	Shares int64 `json:"shares"`
}

// ObservationDay truncates t to the UTC calendar day used as the ledger key.
func ObservationDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
