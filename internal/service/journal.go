package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moodgarden/internal/facade"
	"moodgarden/internal/models"
	"moodgarden/internal/repository"
)

var errNoEmotions = errors.New("at least one emotion is required")

// JournalService accepts entries through the input facade and persists them.
type JournalService struct {
	entries repository.EntryRepo
	router  *facade.Router
}

func NewJournalService(entries repository.EntryRepo, router *facade.Router) *JournalService {
	return &JournalService{entries: entries, router: router}
}

// Submit builds an entry through the input feature's time source and stores
// it. Labels are normalized to lower case; unknown labels are kept (they just
// never match a derivation table).
func (s *JournalService) Submit(ctx context.Context, userID int, emotions []models.EmotionWithStrength, memo string) (models.EmotionEntry, error) {
	if len(emotions) == 0 {
		return models.EmotionEntry{}, errNoEmotions
	}
	normalized := make([]models.EmotionWithStrength, len(emotions))
	for i, e := range emotions {
		e.Type = strings.ToLower(strings.TrimSpace(e.Type))
		normalized[i] = e
	}

	entry := s.router.Input.BuildEntry(userID, normalized, memo)
	if err := s.entries.Append(ctx, entry); err != nil {
		return models.EmotionEntry{}, fmt.Errorf("submit entry: %w", err)
	}
	return entry, nil
}

// History lists a user's entries within [from, to]; zero bounds are open.
func (s *JournalService) History(ctx context.Context, userID int, from, to time.Time) ([]models.EmotionEntry, error) {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errors.New("invalid time range: from must be <= to")
	}
	return s.entries.List(ctx, userID, from, to)
}
