package timesource

import (
	"encoding/json"
	"strconv"
	"time"
)

// Time-source modes.
const (
	ModeOff      = "off"      // no adapter; callers fall back to wall clock
	ModeSnapshot = "snapshot" // fresh wall-clock read per call
	ModeInterval = "interval" // snapshot reads plus a periodic subscriber push
)

// DefaultIntervalMs is the tick period used when interval mode is configured
// without an explicit one.
const DefaultIntervalMs = 60_000

// Config is the resolved time policy for one feature.
// FreezeTo/Frozen carry the freeze override: when Frozen is true every read
// returns FreezeTo, whatever the mode. A frozen zero instant is the
// invalid-instant marker produced by unparseable freeze input; callers detect
// it with Time.IsZero.
type Config struct {
	Mode       string    `json:"mode"`
	IntervalMs int       `json:"interval_ms,omitempty"`
	FreezeTo   time.Time `json:"freeze_to,omitzero"`
	Frozen     bool      `json:"frozen,omitempty"`
}

// Interval returns the effective tick period.
func (c Config) Interval() time.Duration {
	ms := c.IntervalMs
	if ms <= 0 {
		ms = DefaultIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Patch is a partial Config. Nil fields leave the previous value untouched.
// FreezeTo accepts a time.Time, an RFC3339/date string, or an epoch-millisecond
// number; an empty string clears the freeze.
type Patch struct {
	Mode       *string `json:"mode,omitempty" mapstructure:"mode"`
	IntervalMs *int    `json:"interval_ms,omitempty" mapstructure:"interval_ms"`
	FreezeTo   any     `json:"freeze_to,omitempty" mapstructure:"freeze_to"`
}

// Apply merges p into c field by field and returns the result.
// Unparseable freeze input freezes to the zero instant rather than being
// dropped, so a bad override is visible to callers instead of silently
// reverting to wall clock.
func (c Config) Apply(p Patch) Config {
	if p.Mode != nil {
		c.Mode = *p.Mode
	}
	if p.IntervalMs != nil {
		c.IntervalMs = *p.IntervalMs
	}
	if p.FreezeTo != nil {
		if s, ok := p.FreezeTo.(string); ok && s == "" {
			c.FreezeTo, c.Frozen = time.Time{}, false
		} else {
			c.FreezeTo, c.Frozen = ParseFreeze(p.FreezeTo), true
		}
	}
	return c
}

// freezeLayouts are the accepted string renderings of a freeze instant.
var freezeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFreeze converts a freeze override value into an instant.
// Accepted inputs: time.Time, a string in one of freezeLayouts, or an epoch
// millisecond number. Anything else parses to the zero instant.
func ParseFreeze(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case *time.Time:
		if x != nil {
			return *x
		}
	case string:
		for _, layout := range freezeLayouts {
			if t, err := time.ParseInLocation(layout, x, time.Local); err == nil {
				return t
			}
		}
		// bare digits are epoch milliseconds
		if ms, err := strconv.ParseInt(x, 10, 64); err == nil {
			return time.UnixMilli(ms)
		}
	case int:
		return time.UnixMilli(int64(x))
	case int64:
		return time.UnixMilli(x)
	case float64:
		return time.UnixMilli(int64(x))
	case json.Number:
		if ms, err := x.Int64(); err == nil {
			return time.UnixMilli(ms)
		}
	}
	return time.Time{}
}
