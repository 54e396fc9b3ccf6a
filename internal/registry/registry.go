// Package registry owns the per-feature time configuration and the adapters
// built from it. There is no package-level singleton: construct a Registry,
// pass it around, close it on shutdown.
package registry

import (
	"sync"

	"moodgarden/internal/logger"
	"moodgarden/internal/timesource"

	"github.com/jonboulle/clockwork"
)

// Recognized feature names. Configure ignores anything else.
const (
	FeatureInput  = "input"
	FeatureMyWeb  = "myweb"
	FeatureFlower = "flower"
)

// Features lists every feature the registry builds an adapter for.
var Features = []string{FeatureInput, FeatureMyWeb, FeatureFlower}

// Patch is one configure call: an optional default patch plus per-feature
// patches. Omitted fields leave the previous values untouched.
type Patch struct {
	Default    *timesource.Patch           `json:"default,omitempty" mapstructure:"default"`
	PerFeature map[string]timesource.Patch `json:"per_feature,omitempty" mapstructure:"per_feature"`
}

// Registry resolves every feature to exactly one effective Config
// (override-or-default) and keeps zero or one live adapter per feature.
// All methods are mutex-serialized; Configure in particular mutates shared
// adapter state and must not interleave with itself.
type Registry struct {
	mu        sync.Mutex
	log       *logger.Logger
	clock     clockwork.Clock
	def       timesource.Config
	overrides map[string]timesource.Config
	adapters  map[string]timesource.Adapter
}

// New builds a registry with snapshot mode as the default policy and one
// adapter per feature.
func New(clock clockwork.Clock, log *logger.Logger) *Registry {
	r := &Registry{
		log:       log,
		clock:     clock,
		def:       timesource.Config{Mode: timesource.ModeSnapshot},
		overrides: make(map[string]timesource.Config),
		adapters:  make(map[string]timesource.Adapter),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rebuildAll()
	return r
}

// Configure merges p into the effective configuration and rebuilds every
// feature adapter — even features the patch does not mention. The rebuild-all
// is deliberate: the feature set is small and fixed, rebuild is cheap, and it
// keeps the adapter set trivially consistent with the config.
func (r *Registry) Configure(p Patch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Default != nil {
		r.def = r.def.Apply(*p.Default)
	}
	for feature, patch := range p.PerFeature {
		if !recognized(feature) {
			if r.log != nil {
				r.log.Infow("time_config_unknown_feature_ignored", "feature", feature)
			}
			continue
		}
		base, ok := r.overrides[feature]
		if !ok {
			// first override for this feature starts from the (already
			// merged) default
			base = r.def
		}
		r.overrides[feature] = base.Apply(patch)
	}

	r.rebuildAll()
}

// Adapter returns the feature's current adapter, or nil when its effective
// mode is off (or the feature is unknown). Callers substitute a direct
// wall-clock read for an absent adapter.
func (r *Registry) Adapter(feature string) timesource.Adapter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.adapters[feature]
}

// Resolved returns the effective Config for every feature.
func (r *Registry) Resolved() map[string]timesource.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]timesource.Config, len(Features))
	for _, f := range Features {
		out[f] = r.resolve(f)
	}
	return out
}

// Close tears down all adapters.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for feature, a := range r.adapters {
		if a != nil {
			a.Close()
		}
		delete(r.adapters, feature)
	}
}

// resolve returns override-or-default for one feature. Caller holds the lock.
func (r *Registry) resolve(feature string) timesource.Config {
	if cfg, ok := r.overrides[feature]; ok {
		return cfg
	}
	return r.def
}

// rebuildAll disposes every adapter and rebuilds from the resolved
// configuration. Disposal before rebuild is mandatory: a replaced interval
// adapter would otherwise leak its ticker goroutine. Caller holds the lock.
func (r *Registry) rebuildAll() {
	for feature, a := range r.adapters {
		if a != nil {
			a.Close()
		}
		delete(r.adapters, feature)
	}
	for _, feature := range Features {
		cfg := r.resolve(feature)
		if a := timesource.New(cfg, r.clock, r.log); a != nil {
			r.adapters[feature] = a
		}
	}
}

func recognized(feature string) bool {
	for _, f := range Features {
		if f == feature {
			return true
		}
	}
	return false
}
