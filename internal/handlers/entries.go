package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"moodgarden/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// Request DTO for a journal submission.
type entryRequest struct {
	Emotions []models.EmotionWithStrength `json:"emotions" binding:"required"`
	Memo     string                       `json:"memo,omitempty"`
}

// SubmitEntryRequest is an exported model for Swagger docs of the entry payload.
type SubmitEntryRequest struct {
	// Reported emotions; type is one of joy, sadness, anger, anxiety, calm
	Emotions []models.EmotionWithStrength `json:"emotions"`
	// Free-form note attached to the entry
	Memo string `json:"memo,omitempty" example:"slept well, long walk"`
}

// @Summary      Submit journal entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body   SubmitEntryRequest  true  "Entry payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/entries [post]
// @Security     BearerAuth
func (h *Handler) postEntry(c *gin.Context) {
	var req entryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	entry, err := h.services.Submit(c.Request.Context(), currentUserID(c), req.Emotions, req.Memo)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("entry_submit_failed", "err", err, "user", currentUserID(c))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "submitted", "entry": entry})
}

// @Summary      List journal entries
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). A date-only 'to' is treated as end of day inclusive.
// @Tags         entries
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2026-08-01)
// @Param        to    query   string  false  "End of range"    example(2026-08-31)
// @Success      200   {object}  map[string]interface{}  "count, entries"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/entries [get]
// @Security     BearerAuth
func (h *Handler) getEntries(c *gin.Context) {
	var (
		from time.Time
		to   time.Time
		err  error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		// A date-only "to" means the whole day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Millisecond)
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}

	entries, err := h.services.History(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("entries_list_failed", "err", err, "from", from, "to", to)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// isDateOnly reports whether the query string has no time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	// Date-bearing layouts are interpreted in server-local time to line up
	// with the local-calendar period boundaries.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2026-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
