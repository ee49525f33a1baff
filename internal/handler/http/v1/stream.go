package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Alert event stream
// @Description Server-sent events: a `status` event on connect, then an `alert` event per published alert.
// @Tags Alerts
// @Produce text/event-stream
// @Security SessionAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Alert feed unavailable"
// @Router /api/alerts/stream [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "streamAlerts")

	if h.alerts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Alert feed unavailable"})
		return
	}

	events, cancel, err := h.alerts.SubscribeAlerts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to alert feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Статусное событие отправляется один раз при подключении
	c.SSEvent("status", gin.H{"message": "Connected to alert service"})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("alert", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	log.Info("Alert stream client disconnected")
}
