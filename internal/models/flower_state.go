package models

// ToneColor is an HSL color: hue in degrees [0,360), saturation and
// lightness in [0,1].
type ToneColor struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// FlowerShape controls petal geometry.
type FlowerShape struct {
	Spread float64 `json:"spread"` // [0,1]
}

// FlowerAnimation controls client-side animation parameters.
type FlowerAnimation struct {
	Sway            float64 `json:"sway"`             // [0,1]
	BreathAmplitude float64 `json:"breath_amplitude"` // [0,1]
	BloomSpeed      float64 `json:"bloom_speed"`      // > 0
}

// FlowerState is the derived visual/climate descriptor for a set of emotions.
// It has no identity of its own and is recomputed on every call.
// Timestamp is the RFC3339 rendering of the reference instant, empty when the
// derivation ran without one.
type FlowerState struct {
	ToneColor ToneColor       `json:"tone_color"`
	Shape     FlowerShape     `json:"shape"`
	Animation FlowerAnimation `json:"animation"`
	Climate   string          `json:"climate,omitempty"` // sunny | rainy | cloudy | night
	Timestamp string          `json:"timestamp,omitempty"`
}
