package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/donation_tracker/internal/backup"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/core/store"
	"github.com/SscSPs/donation_tracker/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Dependencies are the collaborators the routes need. Backups and Metrics may be nil.
type Dependencies struct {
	Stores  *store.Container
	Backups *backup.Manager
	Metrics http.Handler
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	setupAPIV1Routes(r, deps)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity route registrations
func setupAPIV1Routes(r *gin.Engine, deps Dependencies) {
	v1 := r.Group("/api/v1")

	registerDonationRoutes(v1, deps.Stores)
	registerEntityRoutes[domain.Campaign, dto.CampaignRequest](v1, "/campaigns", deps.Stores.Campaigns, func() domain.Campaign {
		return domain.NewCampaign("", "")
	})
	registerEntityRoutes[domain.DonationIncentive, dto.DonationIncentiveRequest](v1, "/incentives", deps.Stores.Incentives, func() domain.DonationIncentive {
		return domain.NewDonationIncentive("", decimal.Zero)
	})
	registerEntityRoutes[domain.Pledge, dto.PledgeRequest](v1, "/pledges", deps.Stores.Pledges, func() domain.Pledge {
		return domain.NewPledge(nil, decimal.Zero, time.Time{})
	})
	registerMaintenanceRoutes(v1, deps.Backups)

	v1.GET("/events", events(deps.Stores))
}
