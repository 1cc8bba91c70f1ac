package handlers

import (
	"io"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/store"
	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 25 * time.Second

// events streams store changes as server-sent events. Clients re-read the
// store snapshot named in each event.
func events(stores *store.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		changes, unsubscribe := stores.Subscribe()
		defer unsubscribe()

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()
		done := c.Request.Context().Done()

		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Stream(func(w io.Writer) bool {
			select {
			case change, ok := <-changes:
				if !ok {
					return false
				}
				c.SSEvent("change", change)
				return true
			case <-ticker.C:
				c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
				return true
			case <-done:
				return false
			}
		})
	}
}
