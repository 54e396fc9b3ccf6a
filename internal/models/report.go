package models

import "time"

// Report period kinds.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// EmotionReport is an aggregate over one completed reporting window.
// PeriodKey is the window's start date (YYYY-MM-DD, local calendar) and keys
// deduplication: one report per user, kind and window.
type EmotionReport struct {
	ReportID    string             `json:"report_id"`
	UserID      int                `json:"user_id"`
	Kind        string             `json:"kind"` // weekly | monthly
	PeriodKey   string             `json:"period_key"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	EntryCount  int                `json:"entry_count"`
	Counts      map[string]int     `json:"counts"`
	Shares      map[string]float64 `json:"shares"`
	Dominant    string             `json:"dominant,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}
