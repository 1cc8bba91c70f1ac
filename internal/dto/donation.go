package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DonationRequest carries the editable donation fields. ReceiptStatus
// defaults from RequestPrintedReceipt for new donations.
type DonationRequest struct {
	DonorID               *int64               `json:"donorId"`
	CampaignID            *int64               `json:"campaignId"`
	DonationIncentiveID   *int64               `json:"donationIncentiveId"`
	Amount                decimal.Decimal      `json:"amount"`
	DonationType          domain.DonationType  `json:"donationType" binding:"required,oneof=CC CHECK CASH OTHER"`
	PaymentStatus         domain.PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=PENDING COMPLETED FAILED"`
	TransactionNumber     string               `json:"transactionNumber" binding:"max=100"`
	ReceiptNumber         string               `json:"receiptNumber" binding:"max=100"`
	PaymentProcessorInfo  string               `json:"paymentProcessorInfo"`
	RequestEmailReceipt   bool                 `json:"requestEmailReceipt"`
	RequestPrintedReceipt bool                 `json:"requestPrintedReceipt"`
	ReceiptStatus         domain.ReceiptStatus `json:"receiptStatus" binding:"omitempty,oneof=NOT_REQUESTED REQUESTED QUEUED PRINTED FAILED"`
	Notes                 string               `json:"notes"`
	IsAnonymous           bool                 `json:"isAnonymous"`
	DonationDate          *time.Time           `json:"donationDate"`
}

func (r DonationRequest) ApplyTo(d domain.Donation) domain.Donation {
	d.DonorID = r.DonorID
	d.CampaignID = r.CampaignID
	d.DonationIncentiveID = r.DonationIncentiveID
	d.Amount = r.Amount
	d.DonationType = r.DonationType
	if r.PaymentStatus != "" {
		d.PaymentStatus = r.PaymentStatus
	}
	d.TransactionNumber = r.TransactionNumber
	d.ReceiptNumber = r.ReceiptNumber
	d.PaymentProcessorInfo = r.PaymentProcessorInfo
	d.RequestEmailReceipt = r.RequestEmailReceipt
	d.RequestPrintedReceipt = r.RequestPrintedReceipt
	switch {
	case r.ReceiptStatus != "":
		d.ReceiptStatus = r.ReceiptStatus
	case !d.IsPersisted():
		d.ReceiptStatus = domain.DefaultReceiptStatus(r.RequestPrintedReceipt)
	}
	d.Notes = r.Notes
	d.IsAnonymous = r.IsAnonymous
	if r.DonationDate != nil {
		d.DonationDate = r.DonationDate.UTC()
	}
	return d
}

// ReceiptStatusRequest moves a donation's receipt through the print queue.
type ReceiptStatusRequest struct {
	Status domain.ReceiptStatus `json:"status" binding:"required,oneof=NOT_REQUESTED REQUESTED QUEUED PRINTED FAILED"`
}

// DonorTotalResponse is the lifetime giving of one donor.
type DonorTotalResponse struct {
	DonorID int64           `json:"donorId"`
	Total   decimal.Decimal `json:"total"`
}

// PendingReceiptsResponse counts printed receipts waiting to be printed.
type PendingReceiptsResponse struct {
	Count int `json:"count"`
}

// DonationReportQuery holds the report filters from the query string.
// Amounts are decimal strings.
type DonationReportQuery struct {
	TimeFrame  domain.TimeFrame `form:"timeFrame" binding:"omitempty,oneof=last_7_days last_30_days last_90_days all_time"`
	CampaignID *int64           `form:"campaignId"`
	DonorID    *int64           `form:"donorId"`
	MinAmount  string           `form:"minAmount"`
	MaxAmount  string           `form:"maxAmount"`
}

// ToFilter parses the amounts and builds the store filter.
func (q DonationReportQuery) ToFilter() (domain.DonationReportFilter, error) {
	f := domain.DonationReportFilter{TimeFrame: q.TimeFrame, CampaignID: q.CampaignID, DonorID: q.DonorID}
	var err error
	if f.MinAmount, err = parseAmount("minAmount", q.MinAmount); err != nil {
		return f, err
	}
	if f.MaxAmount, err = parseAmount("maxAmount", q.MaxAmount); err != nil {
		return f, err
	}
	return f, nil
}

func parseAmount(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	return &v, nil
}
