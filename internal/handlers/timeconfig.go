package handlers

import (
	"net/http"

	"moodgarden/internal/registry"

	"github.com/gin-gonic/gin"
)

// TimeConfigPatch is an exported model for Swagger docs of the time-config
// payload. freeze_to accepts an RFC3339 string, an epoch-millisecond number,
// or "" to clear the freeze.
type TimeConfigPatch struct {
	Default    map[string]any            `json:"default,omitempty"`
	PerFeature map[string]map[string]any `json:"per_feature,omitempty"`
}

// @Summary      Get time configuration
// @Description  Effective per-feature time policy (override-or-default).
// @Tags         time-config
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/time-config [get]
// @Security     BearerAuth
func (h *Handler) getTimeConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Resolved())
}

// @Summary      Update time configuration
// @Description  Field-wise merge of a partial time policy; unmentioned features keep their config but all adapters are rebuilt.
// @Tags         time-config
// @Accept       json
// @Produce      json
// @Param        body  body  TimeConfigPatch  true  "Partial time policy"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/time-config [put]
// @Security     BearerAuth
func (h *Handler) putTimeConfig(c *gin.Context) {
	var patch registry.Patch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}

	h.services.Configure(patch)
	if h.log != nil {
		h.log.Infow("time_config_updated")
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "configured",
		"resolved": h.services.Resolved(),
	})
}
