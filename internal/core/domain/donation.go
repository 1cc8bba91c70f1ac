package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationType is how the money was given.
type DonationType string

const (
	DonationCreditCard DonationType = "CC"
	DonationCheck      DonationType = "CHECK"
	DonationCash       DonationType = "CASH"
	DonationOther      DonationType = "OTHER"
)

// PaymentStatus tracks settlement of a donation.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// ReceiptStatus tracks the printed receipt workflow.
type ReceiptStatus string

const (
	ReceiptNotRequested ReceiptStatus = "NOT_REQUESTED"
	ReceiptRequested    ReceiptStatus = "REQUESTED"
	ReceiptQueued       ReceiptStatus = "QUEUED"
	ReceiptPrinted      ReceiptStatus = "PRINTED"
	ReceiptFailed       ReceiptStatus = "FAILED"
)

// Valid reports whether s is a known receipt status.
func (s ReceiptStatus) Valid() bool {
	switch s {
	case ReceiptNotRequested, ReceiptRequested, ReceiptQueued, ReceiptPrinted, ReceiptFailed:
		return true
	}
	return false
}

// Donation is a single gift. All three references are optional ids of
// previously persisted entities.
type Donation struct {
	Identity
	DonorID               *int64          `json:"donorId,omitempty"`
	CampaignID            *int64          `json:"campaignId,omitempty"`
	DonationIncentiveID   *int64          `json:"donationIncentiveId,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	DonationType          DonationType    `json:"donationType"`
	PaymentStatus         PaymentStatus   `json:"paymentStatus"`
	TransactionNumber     string          `json:"transactionNumber"`
	ReceiptNumber         string          `json:"receiptNumber"`
	PaymentProcessorInfo  string          `json:"paymentProcessorInfo"`
	RequestEmailReceipt   bool            `json:"requestEmailReceipt"`
	RequestPrintedReceipt bool            `json:"requestPrintedReceipt"`
	ReceiptStatus         ReceiptStatus   `json:"receiptStatus"`
	Notes                 string          `json:"notes"`
	IsAnonymous           bool            `json:"isAnonymous"`
	DonationDate          time.Time       `json:"donationDate"`
	AuditFields
}

// NewDonation creates an unsaved pending donation dated now.
func NewDonation(amount decimal.Decimal, donationType DonationType, requestPrintedReceipt bool) Donation {
	now := time.Now().UTC()
	return Donation{
		Identity:              NewIdentity(),
		Amount:                amount,
		DonationType:          donationType,
		PaymentStatus:         PaymentPending,
		RequestPrintedReceipt: requestPrintedReceipt,
		ReceiptStatus:         DefaultReceiptStatus(requestPrintedReceipt),
		DonationDate:          now,
		AuditFields:           NewAuditFields(now),
	}
}

// DefaultReceiptStatus is REQUESTED when a printed receipt was asked for.
func DefaultReceiptStatus(requestPrintedReceipt bool) ReceiptStatus {
	if requestPrintedReceipt {
		return ReceiptRequested
	}
	return ReceiptNotRequested
}

// WithAudit returns a copy carrying the given audit fields.
func (d Donation) WithAudit(a AuditFields) Donation {
	d.AuditFields = a
	return d
}

// WithIdentity returns a copy carrying the given id and uuid.
func (d Donation) WithIdentity(id Identity) Donation {
	d.Identity = id
	return d
}
