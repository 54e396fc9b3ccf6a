package timesource

import (
	"testing"
	"time"
)

func TestParseFreeze_AcceptedInputs(t *testing.T) {
	want := time.Date(2026, time.March, 1, 7, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time.Time", want, want},
		{"rfc3339 string", "2026-03-01T07:00:00Z", want},
		{"epoch ms int", int(want.UnixMilli()), want},
		{"epoch ms int64", want.UnixMilli(), want},
		{"epoch ms float64 (json number)", float64(want.UnixMilli()), want},
		{"epoch ms digit string", "1772348400000", time.UnixMilli(1772348400000)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseFreeze(tc.in); !got.Equal(tc.want) {
				t.Fatalf("ParseFreeze(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFreeze_DateOnlyIsLocalMidnight(t *testing.T) {
	got := ParseFreeze("2026-03-01")
	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseFreeze_InvalidInputYieldsZeroInstant(t *testing.T) {
	for _, in := range []any{"not-a-date", true, []string{"x"}, nil} {
		if got := ParseFreeze(in); !got.IsZero() {
			t.Fatalf("ParseFreeze(%v) = %v, want zero instant", in, got)
		}
	}
}

func TestConfigApply_FieldWiseMerge(t *testing.T) {
	base := Config{Mode: ModeInterval, IntervalMs: 5000}

	t.Run("omitted fields preserved", func(t *testing.T) {
		mode := ModeSnapshot
		merged := base.Apply(Patch{Mode: &mode})
		if merged.Mode != ModeSnapshot || merged.IntervalMs != 5000 {
			t.Fatalf("merged = %+v", merged)
		}
	})

	t.Run("freeze set and cleared", func(t *testing.T) {
		frozen := base.Apply(Patch{FreezeTo: "2026-03-01T07:00:00Z"})
		if !frozen.Frozen || frozen.FreezeTo.IsZero() {
			t.Fatalf("freeze not applied: %+v", frozen)
		}
		if frozen.Mode != base.Mode || frozen.IntervalMs != base.IntervalMs {
			t.Fatalf("freeze patch touched other fields: %+v", frozen)
		}

		cleared := frozen.Apply(Patch{FreezeTo: ""})
		if cleared.Frozen || !cleared.FreezeTo.IsZero() {
			t.Fatalf("freeze not cleared: %+v", cleared)
		}
	})

	t.Run("invalid freeze marks invalid instant instead of reverting", func(t *testing.T) {
		bad := base.Apply(Patch{FreezeTo: "garbage"})
		if !bad.Frozen || !bad.FreezeTo.IsZero() {
			t.Fatalf("invalid freeze should freeze to zero instant: %+v", bad)
		}
	})
}

func TestConfigInterval_DefaultsTo60s(t *testing.T) {
	if got := (Config{Mode: ModeInterval}).Interval(); got != time.Minute {
		t.Fatalf("default interval = %v, want 1m", got)
	}
	if got := (Config{Mode: ModeInterval, IntervalMs: 250}).Interval(); got != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", got)
	}
}
