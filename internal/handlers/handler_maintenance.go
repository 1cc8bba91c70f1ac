package handlers

import (
	"net/http"

	"github.com/SscSPs/donation_tracker/internal/backup"
	"github.com/SscSPs/donation_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type maintenanceHandler struct {
	backups *backup.Manager
}

// registerMaintenanceRoutes is a no-op when backups are disabled.
func registerMaintenanceRoutes(rg *gin.RouterGroup, backups *backup.Manager) {
	if backups == nil {
		return
	}
	h := &maintenanceHandler{backups: backups}

	m := rg.Group("/maintenance")
	{
		m.POST("/backup", h.createBackup)
		m.GET("/backups", h.listBackups)
	}
}

func (h *maintenanceHandler) createBackup(c *gin.Context) {
	info, err := h.backups.Backup(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "back up database")
		return
	}
	c.JSON(http.StatusCreated, info)
}

func (h *maintenanceHandler) listBackups(c *gin.Context) {
	list, err := h.backups.List(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "list backups")
		return
	}
	if list == nil {
		list = []backup.Info{}
	}
	c.JSON(http.StatusOK, list)
}
