package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/models"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/internal/utils/mapping"
	"github.com/SscSPs/donation_tracker/pkg/database"
	"github.com/shopspring/decimal"
)

type SQLDonationRepository struct {
	crudRepository[domain.Donation]
}

// newSQLDonationRepository creates a new repository for donation data.
func newSQLDonationRepository(db DBTX, driver database.Driver, rec metrics.Recorder) *SQLDonationRepository {
	return &SQLDonationRepository{crudRepository[domain.Donation]{
		BaseRepository: newBaseRepository(db, driver, rec, "donation"),
		spec: tableSpec[domain.Donation]{
			name: "donation",
			columns: []string{
				"donor_id", "campaign_id", "donation_incentive_id", "amount",
				"donation_type", "payment_status", "transaction_number", "receipt_number",
				"payment_processor_info", "request_email_receipt", "request_printed_receipt",
				"receipt_status", "notes", "is_anonymous", "donation_date",
			},
			values:  donationValues,
			scan:    scanDonation,
			orderBy: "donation_date DESC, id DESC",
		},
	}}
}

// Ensure implementation matches interface
var _ portsrepo.DonationRepositoryFacade = (*SQLDonationRepository)(nil)

func donationValues(d domain.Donation) []any {
	m := mapping.ToModelDonation(d)
	return []any{
		m.DonorID, m.CampaignID, m.DonationIncentiveID, m.Amount,
		m.DonationType, m.PaymentStatus, m.TransactionNumber, m.ReceiptNumber,
		m.PaymentProcessorInfo, m.RequestEmailReceipt, m.RequestPrintedReceipt,
		m.ReceiptStatus, m.Notes, m.IsAnonymous, m.DonationDate,
	}
}

func scanDonation(row rowScanner) (domain.Donation, error) {
	var m models.Donation
	err := row.Scan(
		&m.ID, &m.UUID,
		&m.DonorID, &m.CampaignID, &m.DonationIncentiveID, &m.Amount,
		&m.DonationType, &m.PaymentStatus, &m.TransactionNumber, &m.ReceiptNumber,
		&m.PaymentProcessorInfo, &m.RequestEmailReceipt, &m.RequestPrintedReceipt,
		&m.ReceiptStatus, &m.Notes, &m.IsAnonymous, &m.DonationDate,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return mapping.ToDomainDonation(m), err
}

func (r *SQLDonationRepository) GetDonationsForDonor(ctx context.Context, donorID int64) (_ []domain.Donation, err error) {
	defer r.track(ctx, "get_for_donor", time.Now(), &err)
	return r.list(ctx, "donor_id = ?", "", donorID)
}

func (r *SQLDonationRepository) GetDonationsForCampaign(ctx context.Context, campaignID int64) (_ []domain.Donation, err error) {
	defer r.track(ctx, "get_for_campaign", time.Now(), &err)
	return r.list(ctx, "campaign_id = ?", "", campaignID)
}

func (r *SQLDonationRepository) GetDonationsForIncentive(ctx context.Context, incentiveID int64) (_ []domain.Donation, err error) {
	defer r.track(ctx, "get_for_incentive", time.Now(), &err)
	return r.list(ctx, "donation_incentive_id = ?", "", incentiveID)
}

// GetTotalDonationsAmount sums a donor's donations.
func (r *SQLDonationRepository) GetTotalDonationsAmount(ctx context.Context, donorID int64) (_ decimal.Decimal, err error) {
	defer r.track(ctx, "total_for_donor", time.Now(), &err)
	var total decimal.NullDecimal
	query := r.rebind(`SELECT SUM(amount) FROM donation WHERE donor_id = ?`)
	if err := r.DB.QueryRowContext(ctx, query, donorID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum donations for donor %d: %w", donorID, err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// CountPendingReceipts counts printed receipts still waiting to be printed.
func (r *SQLDonationRepository) CountPendingReceipts(ctx context.Context) (_ int, err error) {
	defer r.track(ctx, "count_pending_receipts", time.Now(), &err)
	var n int
	query := r.rebind(`SELECT COUNT(*) FROM donation WHERE request_printed_receipt = ? AND receipt_status IN (?, ?)`)
	if err := r.DB.QueryRowContext(ctx, query, true, string(domain.ReceiptRequested), string(domain.ReceiptQueued)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending receipts: %w", err)
	}
	return n, nil
}

func (r *SQLDonationRepository) GetReceiptRequests(ctx context.Context, status domain.ReceiptStatus) (_ []domain.Donation, err error) {
	defer r.track(ctx, "get_receipt_requests", time.Now(), &err)
	return r.list(ctx, "request_printed_receipt = ? AND receipt_status = ?", "donation_date ASC, id ASC", true, string(status))
}

// UpdateReceiptStatus changes the receipt status of one donation.
func (r *SQLDonationRepository) UpdateReceiptStatus(ctx context.Context, id int64, status domain.ReceiptStatus) (err error) {
	defer r.track(ctx, "update_receipt_status", time.Now(), &err)
	if !status.Valid() {
		return apperrors.NewValidationError("receipt_status_unknown", fmt.Sprintf("Unknown receipt status %q", status))
	}
	return r.execOne(ctx, `UPDATE donation SET receipt_status = ?, updated_at = ? WHERE id = ?`, id,
		string(status), time.Now().UTC(), id)
}
