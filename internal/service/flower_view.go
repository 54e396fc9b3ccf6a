package service

import (
	"context"
	"fmt"
	"time"

	"moodgarden/internal/facade"
	"moodgarden/internal/models"
	"moodgarden/internal/registry"
	"moodgarden/internal/repository"
	"moodgarden/internal/timesource"
)

// FlowerService derives a user's current flower from the day's entries.
type FlowerService struct {
	entries repository.EntryRepo
	router  *facade.Router
	reg     *registry.Registry
}

func NewFlowerService(entries repository.EntryRepo, router *facade.Router, reg *registry.Registry) *FlowerService {
	return &FlowerService{entries: entries, router: router, reg: reg}
}

// State gathers the emotions reported since local midnight (by the flower
// feature's clock) and derives the flower state at that same instant.
func (s *FlowerService) State(ctx context.Context, userID int) (models.FlowerState, error) {
	now := s.router.Flower.Now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	entries, err := s.entries.List(ctx, userID, dayStart, now)
	if err != nil {
		return models.FlowerState{}, fmt.Errorf("load today's entries: %w", err)
	}

	var emotions []models.EmotionWithStrength
	for _, e := range entries {
		emotions = append(emotions, e.Emotions...)
	}
	return s.router.Flower.Analyze(emotions), nil
}

// Watch subscribes fn to the flower feature's interval ticks. When the
// feature is not in interval mode there is nothing to subscribe to and ok is
// false.
func (s *FlowerService) Watch(fn func(time.Time)) (cancel func(), ok bool) {
	sub, isSub := s.reg.Adapter(registry.FeatureFlower).(timesource.Subscriber)
	if !isSub {
		return nil, false
	}
	return sub.Subscribe(fn), true
}
