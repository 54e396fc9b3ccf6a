package models

import "time"

// Canonical emotion labels. Anything else falls through to the analyzer defaults.
const (
	EmotionJoy     = "joy"
	EmotionSadness = "sadness"
	EmotionAnger   = "anger"
	EmotionAnxiety = "anxiety"
	EmotionCalm    = "calm"
)

// Strength levels for a reported emotion.
const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

// EmotionWithStrength is one reported emotion. Strength is optional and does
// not influence flower derivation; it is kept for history and reports.
type EmotionWithStrength struct {
	Type     string `json:"type"`
	Strength string `json:"strength,omitempty"` // weak | medium | strong
}

// EmotionEntry is a single journal submission.
// CreatedAt is nil when no time source was available at build time; the
// persistence layer stores it as NULL in that case.
type EmotionEntry struct {
	EntryID   string                `json:"entry_id"`
	UserID    int                   `json:"user_id"`
	Emotions  []EmotionWithStrength `json:"emotions"`
	Memo      string                `json:"memo,omitempty"`
	CreatedAt *time.Time            `json:"created_at,omitempty"`
}
