package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const errRefInvalid = "invalid 'ref' time; use RFC3339 or YYYY-MM-DD"

// parseOptionalRef reads the optional ?ref= reference instant. Zero time
// means "use the reporting feature's clock".
func (h *Handler) parseOptionalRef(c *gin.Context) (time.Time, bool) {
	qs := c.Query("ref")
	if qs == "" {
		return time.Time{}, true
	}
	ref, err := parseQueryTime(qs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errRefInvalid})
		return time.Time{}, false
	}
	return ref, true
}

// @Summary      Weekly report
// @Description  Aggregate over the most recently completed Sunday-to-Saturday week.
// @Tags         reports
// @Produce      json
// @Param        ref  query  string  false  "Reference instant (defaults to the reporting clock)"
// @Success      200  {object}  models.EmotionReport
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/weekly [get]
// @Security     BearerAuth
func (h *Handler) getWeeklyReport(c *gin.Context) {
	ref, ok := h.parseOptionalRef(c)
	if !ok {
		return
	}
	rep, err := h.services.Weekly(c.Request.Context(), currentUserID(c), ref)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("weekly_report_failed", "err", err, "user", currentUserID(c))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build weekly report"})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// @Summary      Monthly report
// @Description  Aggregate over the most recently completed calendar month.
// @Tags         reports
// @Produce      json
// @Param        ref  query  string  false  "Reference instant (defaults to the reporting clock)"
// @Success      200  {object}  models.EmotionReport
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/monthly [get]
// @Security     BearerAuth
func (h *Handler) getMonthlyReport(c *gin.Context) {
	ref, ok := h.parseOptionalRef(c)
	if !ok {
		return
	}
	rep, err := h.services.Monthly(c.Request.Context(), currentUserID(c), ref)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("monthly_report_failed", "err", err, "user", currentUserID(c))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build monthly report"})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// @Summary      Weekly period boundaries
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "current, completed"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/periods/weekly [get]
// @Security     BearerAuth
func (h *Handler) getWeeklyPeriods(c *gin.Context) {
	current, completed := h.services.WeeklyPeriods()
	c.JSON(http.StatusOK, gin.H{"current": current, "completed": completed})
}

// @Summary      Monthly period boundaries
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "current, completed"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/periods/monthly [get]
// @Security     BearerAuth
func (h *Handler) getMonthlyPeriods(c *gin.Context) {
	current, completed := h.services.MonthlyPeriods()
	c.JSON(http.StatusOK, gin.H{"current": current, "completed": completed})
}
