package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Donation mirrors a row of the donation table. Reference columns are nullable
// and carry no storage-level foreign key.
type Donation struct {
	ID                    int64           `db:"id"`
	UUID                  string          `db:"uuid"`
	DonorID               sql.NullInt64   `db:"donor_id"`
	CampaignID            sql.NullInt64   `db:"campaign_id"`
	DonationIncentiveID   sql.NullInt64   `db:"donation_incentive_id"`
	Amount                decimal.Decimal `db:"amount"`
	DonationType          string          `db:"donation_type"`
	PaymentStatus         string          `db:"payment_status"`
	TransactionNumber     sql.NullString  `db:"transaction_number"`
	ReceiptNumber         sql.NullString  `db:"receipt_number"`
	PaymentProcessorInfo  sql.NullString  `db:"payment_processor_info"`
	RequestEmailReceipt   bool            `db:"request_email_receipt"`
	RequestPrintedReceipt bool            `db:"request_printed_receipt"`
	ReceiptStatus         string          `db:"receipt_status"`
	Notes                 sql.NullString  `db:"notes"`
	IsAnonymous           bool            `db:"is_anonymous"`
	DonationDate          time.Time       `db:"donation_date"`
	AuditFields
}
