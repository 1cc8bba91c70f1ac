package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/core/store"
	"github.com/SscSPs/donation_tracker/internal/dto"
	"github.com/SscSPs/donation_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// donationHandler serves the receipt and giving-total routes.
type donationHandler struct {
	donations *store.DonationStore
	pledges   *store.PledgeStore
}

func newDonation() domain.Donation {
	return domain.NewDonation(decimal.Zero, "", false)
}

func registerDonationRoutes(rg *gin.RouterGroup, stores *store.Container) {
	h := &donationHandler{donations: stores.Donations, pledges: stores.Pledges}

	donations := registerEntityRoutes[domain.Donation, dto.DonationRequest](rg, "/donations", stores.Donations, newDonation)
	{
		donations.GET("/pending-receipts", h.pendingReceipts)
		donations.GET("/report", h.report)
		donations.PUT("/:id/receipt-status", h.updateReceiptStatus)
	}

	donors := registerEntityRoutes[domain.Donor, dto.DonorRequest](rg, "/donors", stores.Donors, domain.NewDonor)
	{
		donors.GET("/:id/total", h.donorTotal)
		donors.GET("/:id/donations", h.donorDonations)
		donors.GET("/:id/pledges", h.donorPledges)
	}
}

// pendingReceipts counts printed receipts that are requested or queued.
func (h *donationHandler) pendingReceipts(c *gin.Context) {
	n, err := h.donations.CountPendingReceipts(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "count pending receipts")
		return
	}
	c.JSON(http.StatusOK, dto.PendingReceiptsResponse{Count: n})
}

// report lists filtered donations with donor and campaign names and totals.
func (h *donationHandler) report(c *gin.Context) {
	var q dto.DonationReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	report, err := h.donations.Report(c.Request.Context(), filter)
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "build donation report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *donationHandler) updateReceiptStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ReceiptStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.donations.UpdateReceiptStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, logger, err, "update receipt status")
		return
	}
	logger.Info("Receipt status updated", slog.Int64("donation_id", id), slog.String("status", string(req.Status)))
	c.JSON(http.StatusOK, updated)
}

func (h *donationHandler) donorTotal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	total, err := h.donations.TotalForDonor(c.Request.Context(), id)
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "total donations")
		return
	}
	c.JSON(http.StatusOK, dto.DonorTotalResponse{DonorID: id, Total: total})
}

func (h *donationHandler) donorDonations(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.donations.ForDonor(c.Request.Context(), id)
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "list donations")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *donationHandler) donorPledges(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.pledges.ForDonor(c.Request.Context(), id)
	if err != nil {
		respondError(c, middleware.GetLoggerFromContext(c), err, "list pledges")
		return
	}
	c.JSON(http.StatusOK, list)
}
