package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Get flower state
// @Description  Derives the visual/climate descriptor from today's reported emotions.
// @Tags         flower
// @Produce      json
// @Success      200  {object}  models.FlowerState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/flower/state [get]
// @Security     BearerAuth
func (h *Handler) getFlowerState(c *gin.Context) {
	state, err := h.services.State(c.Request.Context(), currentUserID(c))
	if err != nil {
		if h.log != nil {
			h.log.Errorw("flower_state_failed", "err", err, "user", currentUserID(c))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive flower state"})
		return
	}
	c.JSON(http.StatusOK, state)
}
