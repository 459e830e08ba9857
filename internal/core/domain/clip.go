package domain

import "time"

type ClipStatus string

const (
	ClipActive  ClipStatus = "ACTIVE"
	ClipRemoved ClipStatus = "REMOVED"
)

// Clip is an approved submission tracked for views under one campaign.
// InitialViews is the baseline captured at approval time and never changes.
// SettledViews is the cumulative view count the clip was last paid up to; it
// is nil until the first payout for the clip.
type Clip struct {
	ID           int64
	CampaignID   int64
	UserID       string
	URL          string
	Platform     string
	Status       ClipStatus
	InitialViews int64
	SettledViews *int64
	CreatedAt    time.Time
}
