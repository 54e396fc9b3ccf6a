// Package facade exposes per-feature namespaces that look up the feature's
// current time adapter and thread its instant into the pure period and flower
// logic. Features configured off have no adapter; every operation here
// tolerates that and substitutes a direct wall-clock read.
package facade

import (
	"time"

	"moodgarden/internal/flower"
	"moodgarden/internal/models"
	"moodgarden/internal/period"
	"moodgarden/internal/registry"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Router groups the per-feature facades.
type Router struct {
	Input  *InputFacade
	MyWeb  *MyWebFacade
	Flower *FlowerFacade
}

// NewRouter wires one facade per feature against the shared registry.
func NewRouter(reg *registry.Registry, clock clockwork.Clock) *Router {
	return &Router{
		Input:  &InputFacade{featureTime{reg, registry.FeatureInput, clock}},
		MyWeb:  &MyWebFacade{featureTime{reg, registry.FeatureMyWeb, clock}},
		Flower: &FlowerFacade{featureTime{reg, registry.FeatureFlower, clock}},
	}
}

// featureTime resolves one feature's current instant.
type featureTime struct {
	reg     *registry.Registry
	feature string
	clock   clockwork.Clock
}

// now returns the feature's current instant and whether a configured time
// source provided it (false means the off-mode wall-clock fallback).
func (f featureTime) now() (time.Time, bool) {
	if a := f.reg.Adapter(f.feature); a != nil {
		return a.Now(), true
	}
	return f.clock.Now(), false
}

// InputFacade builds journal entries for the input feature.
type InputFacade struct {
	featureTime
}

// BuildEntry assembles an entry from a submission. CreatedAt is attached only
// when the feature has a configured time source; with input off the entry is
// persisted without one and the storage layer keeps it NULL.
func (f *InputFacade) BuildEntry(userID int, emotions []models.EmotionWithStrength, memo string) models.EmotionEntry {
	entry := models.EmotionEntry{
		EntryID:  uuid.NewString(),
		UserID:   userID,
		Emotions: emotions,
		Memo:     memo,
	}
	if at, ok := f.now(); ok {
		entry.CreatedAt = &at
	}
	return entry
}

// MyWebFacade answers period queries for the myweb reporting feature.
type MyWebFacade struct {
	featureTime
}

// Now exposes the feature's current instant (wall clock when off).
func (f *MyWebFacade) Now() time.Time {
	at, _ := f.now()
	return at
}

func (f *MyWebFacade) CurrentWeekly() period.Range {
	return period.CurrentWeekly(f.Now())
}

func (f *MyWebFacade) CompletedWeekly() period.Range {
	return period.CompletedWeekly(f.Now())
}

func (f *MyWebFacade) CurrentMonthly() period.Range {
	return period.CurrentMonthly(f.Now())
}

func (f *MyWebFacade) CompletedMonthly() period.Range {
	return period.CompletedMonthly(f.Now())
}

func (f *MyWebFacade) IsWeeklyTrigger() bool {
	return period.IsWeeklyTrigger(f.Now())
}

func (f *MyWebFacade) IsMonthlyTrigger() bool {
	return period.IsMonthlyTrigger(f.Now())
}

// FlowerFacade derives flower states for the flower feature.
type FlowerFacade struct {
	featureTime
}

// Analyze derives the flower state for the given emotions at the feature's
// current instant.
func (f *FlowerFacade) Analyze(emotions []models.EmotionWithStrength) models.FlowerState {
	at, _ := f.now()
	return flower.Analyze(emotions, at)
}

// Now exposes the feature's current instant, for callers that timestamp
// derived states themselves.
func (f *FlowerFacade) Now() time.Time {
	at, _ := f.now()
	return at
}
