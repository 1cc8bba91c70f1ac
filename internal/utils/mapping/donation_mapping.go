package mapping

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/models"
)

// ToModelDonation converts a domain Donation to a model Donation
func ToModelDonation(d domain.Donation) models.Donation {
	receiptStatus := d.ReceiptStatus
	if receiptStatus == "" {
		receiptStatus = domain.DefaultReceiptStatus(d.RequestPrintedReceipt)
	}
	paymentStatus := d.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPending
	}
	return models.Donation{
		ID:                    d.ID,
		UUID:                  d.UUID,
		DonorID:               toNullInt64(d.DonorID),
		CampaignID:            toNullInt64(d.CampaignID),
		DonationIncentiveID:   toNullInt64(d.DonationIncentiveID),
		Amount:                d.Amount,
		DonationType:          string(d.DonationType),
		PaymentStatus:         string(paymentStatus),
		TransactionNumber:     toNullString(d.TransactionNumber),
		ReceiptNumber:         toNullString(d.ReceiptNumber),
		PaymentProcessorInfo:  toNullString(d.PaymentProcessorInfo),
		RequestEmailReceipt:   d.RequestEmailReceipt,
		RequestPrintedReceipt: d.RequestPrintedReceipt,
		ReceiptStatus:         string(receiptStatus),
		Notes:                 toNullString(d.Notes),
		IsAnonymous:           d.IsAnonymous,
		DonationDate:          d.DonationDate.UTC(),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonation converts a model Donation to a domain Donation
func ToDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		Identity:              domain.Identity{ID: m.ID, UUID: m.UUID},
		DonorID:               fromNullInt64(m.DonorID),
		CampaignID:            fromNullInt64(m.CampaignID),
		DonationIncentiveID:   fromNullInt64(m.DonationIncentiveID),
		Amount:                m.Amount,
		DonationType:          domain.DonationType(m.DonationType),
		PaymentStatus:         domain.PaymentStatus(m.PaymentStatus),
		TransactionNumber:     m.TransactionNumber.String,
		ReceiptNumber:         m.ReceiptNumber.String,
		PaymentProcessorInfo:  m.PaymentProcessorInfo.String,
		RequestEmailReceipt:   m.RequestEmailReceipt,
		RequestPrintedReceipt: m.RequestPrintedReceipt,
		ReceiptStatus:         domain.ReceiptStatus(m.ReceiptStatus),
		Notes:                 m.Notes.String,
		IsAnonymous:           m.IsAnonymous,
		DonationDate:          m.DonationDate.UTC(),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
