package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scopeworks/pkg/outbox"
)

type AdminHandler struct {
	replayer *outbox.Replayer
}

func NewAdminHandler(replayer *outbox.Replayer) *AdminHandler {
	return &AdminHandler{
		replayer: replayer,
	}
}

// ReplayOutboxEvent handles POST /admin/outbox/replay/:id
func (h *AdminHandler) ReplayOutboxEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.replayer.Replay(c.Request.Context(), eventID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "replayed", "event_id": eventID})
}

// ReplayFailedOutboxEvents handles POST /admin/outbox/replay
func (h *AdminHandler) ReplayFailedOutboxEvents(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	replayed, err := h.replayer.ReplayAllFailed(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to replay events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "replayed", "count": replayed})
}
