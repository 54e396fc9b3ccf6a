// Package flower derives the visual/climate descriptor the rendering client
// animates. The mapping is a set of fixed lookup tables — deterministic
// heuristics, not ML — so identical inputs always produce identical output and
// the Unity side can reproduce animations exactly.
package flower

import (
	"time"

	"moodgarden/internal/models"
)

// priority orders the canonical labels; the first present label wins every
// table lookup. Ties are never blended.
var priority = []string{
	models.EmotionJoy,
	models.EmotionSadness,
	models.EmotionAnger,
	models.EmotionAnxiety,
	models.EmotionCalm,
}

// Per-label tone colors plus the fallback used when nothing matches.
var toneTable = map[string]models.ToneColor{
	models.EmotionJoy:     {Hue: 50, Saturation: 0.9, Lightness: 0.6},
	models.EmotionSadness: {Hue: 220, Saturation: 0.5, Lightness: 0.45},
	models.EmotionAnger:   {Hue: 0, Saturation: 0.8, Lightness: 0.5},
	models.EmotionAnxiety: {Hue: 280, Saturation: 0.45, Lightness: 0.5},
	models.EmotionCalm:    {Hue: 140, Saturation: 0.4, Lightness: 0.6},
}

var defaultTone = models.ToneColor{Hue: 200, Saturation: 0.5, Lightness: 0.55}

// Animation tables are independent: each is keyed by the same priority order
// but carries its own default.
var swayTable = map[string]float64{
	models.EmotionJoy:     0.8,
	models.EmotionSadness: 0.2,
	models.EmotionAnger:   0.9,
	models.EmotionAnxiety: 0.7,
	models.EmotionCalm:    0.3,
}

var breathTable = map[string]float64{
	models.EmotionJoy:     0.6,
	models.EmotionSadness: 0.3,
	models.EmotionAnger:   0.5,
	models.EmotionAnxiety: 0.8,
	models.EmotionCalm:    0.4,
}

var bloomTable = map[string]float64{
	models.EmotionJoy:     1.4,
	models.EmotionSadness: 0.6,
	models.EmotionAnger:   1.2,
	models.EmotionAnxiety: 0.9,
	models.EmotionCalm:    0.8,
}

const (
	defaultSway   = 0.5
	defaultBreath = 0.5
	defaultBloom  = 1.0
)

// Climate labels.
const (
	ClimateSunny  = "sunny"
	ClimateRainy  = "rainy"
	ClimateCloudy = "cloudy"
	ClimateNight  = "night"
)

// Night spans local [22:00, 05:00).
const (
	nightStartHour = 22
	nightEndHour   = 5
)

// Analyze maps a multiset of emotions (order-insensitive; only label presence
// matters) to a FlowerState. A zero `at` means no reference instant was
// supplied: the climate defaults to cloudy and the timestamp is omitted.
func Analyze(emotions []models.EmotionWithStrength, at time.Time) models.FlowerState {
	present := make(map[string]bool, len(emotions))
	for _, e := range emotions {
		present[e.Type] = true
	}
	dominant := dominantLabel(present)

	state := models.FlowerState{
		ToneColor: lookupTone(dominant),
		Shape: models.FlowerShape{
			Spread: spread(present, len(emotions)),
		},
		Animation: models.FlowerAnimation{
			Sway:            lookupFloat(swayTable, dominant, defaultSway),
			BreathAmplitude: lookupFloat(breathTable, dominant, defaultBreath),
			BloomSpeed:      lookupFloat(bloomTable, dominant, defaultBloom),
		},
		Climate: climate(present, at),
	}
	if !at.IsZero() {
		state.Timestamp = at.Format(time.RFC3339)
	}
	return state
}

// dominantLabel returns the first present label in priority order, or "".
func dominantLabel(present map[string]bool) string {
	for _, label := range priority {
		if present[label] {
			return label
		}
	}
	return ""
}

func lookupTone(label string) models.ToneColor {
	if tone, ok := toneTable[label]; ok {
		return tone
	}
	return defaultTone
}

func lookupFloat(table map[string]float64, label string, fallback float64) float64 {
	if v, ok := table[label]; ok {
		return v
	}
	return fallback
}

// spread opens the petals for joy and calm, with a small bonus for a varied
// entry (three or more reported emotions), clamped to 1.
func spread(present map[string]bool, count int) float64 {
	s := 0.0
	if present[models.EmotionJoy] {
		s += 0.6
	}
	if present[models.EmotionCalm] {
		s += 0.6
	}
	if count >= 3 {
		s += 0.2
	}
	if s > 1 {
		s = 1
	}
	return s
}

// climate picks the weather label. The hour-based night branch takes
// precedence over the emotion branches.
func climate(present map[string]bool, at time.Time) string {
	if at.IsZero() {
		return ClimateCloudy
	}
	if h := at.Hour(); h < nightEndHour || h >= nightStartHour {
		return ClimateNight
	}
	if present[models.EmotionJoy] {
		return ClimateSunny
	}
	if present[models.EmotionSadness] {
		return ClimateRainy
	}
	return ClimateCloudy
}
