package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeFrame bounds a donation report to a trailing window ending now.
type TimeFrame string

const (
	TimeFrameLast7Days  TimeFrame = "last_7_days"
	TimeFrameLast30Days TimeFrame = "last_30_days"
	TimeFrameLast90Days TimeFrame = "last_90_days"
	TimeFrameAllTime    TimeFrame = "all_time"
)

// Days returns the window length, or 0 for all time and unknown frames.
func (t TimeFrame) Days() int {
	switch t {
	case TimeFrameLast7Days:
		return 7
	case TimeFrameLast30Days:
		return 30
	case TimeFrameLast90Days:
		return 90
	}
	return 0
}

// Valid reports whether t is a known time frame. Empty means all time.
func (t TimeFrame) Valid() bool {
	return t == "" || t == TimeFrameAllTime || t.Days() > 0
}

// DonationReportFilter narrows a donation report. Nil fields do not filter.
type DonationReportFilter struct {
	TimeFrame  TimeFrame
	CampaignID *int64
	DonorID    *int64
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// DonationReportItem is one donation with its donor and campaign resolved to names.
type DonationReportItem struct {
	DonationID   int64           `json:"donationId"`
	DonorName    string          `json:"donorName"`
	CampaignName string          `json:"campaignName"`
	Amount       decimal.Decimal `json:"amount"`
	DonationDate time.Time       `json:"donationDate"`
}

// DonationReport lists matching donations newest first with their totals.
type DonationReport struct {
	Items   []DonationReportItem `json:"items"`
	Total   decimal.Decimal      `json:"total"`
	Count   int                  `json:"count"`
	Average decimal.Decimal      `json:"average"`
}
