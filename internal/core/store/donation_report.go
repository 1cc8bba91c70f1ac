package store

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Rules for report filters that cannot match anything.
const (
	RuleReportTimeFrameUnknown = "report_time_frame_unknown"
	RuleReportAmountRange      = "report_amount_range"
)

// Names used when a donation's donor or campaign cannot be resolved.
const (
	AnonymousDonorName = "Anonymous"
	UnknownDonorName   = "Unknown Donor"
	UnnamedDonorName   = "Unknown"
	GeneralSupportName = "General Support"
)

type reportSources struct {
	donors    portsrepo.EntityReader[domain.Donor]
	campaigns portsrepo.EntityReader[domain.Campaign]
}

func (s *DonationStore) setReportSources(donors portsrepo.EntityReader[domain.Donor], campaigns portsrepo.EntityReader[domain.Campaign]) {
	s.report = reportSources{donors: donors, campaigns: campaigns}
}

// Report reads the donations matching f from storage and resolves donor
// and campaign names. Items are newest first.
func (s *DonationStore) Report(ctx context.Context, f domain.DonationReportFilter) (domain.DonationReport, error) {
	if !f.TimeFrame.Valid() {
		return domain.DonationReport{}, apperrors.NewValidationError(RuleReportTimeFrameUnknown, "Unknown report time frame: "+string(f.TimeFrame))
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		return domain.DonationReport{}, apperrors.NewValidationError(RuleReportAmountRange, "Minimum amount is greater than maximum amount")
	}

	donations, err := s.reportRows(ctx, f)
	if err != nil {
		return domain.DonationReport{}, err
	}
	donations = slices.DeleteFunc(donations, func(d domain.Donation) bool { return !s.matches(f, d) })

	donorNames, campaignNames, err := s.reportNames(ctx, donations)
	if err != nil {
		return domain.DonationReport{}, err
	}

	slices.SortStableFunc(donations, func(a, b domain.Donation) int {
		if c := b.DonationDate.Compare(a.DonationDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	report := domain.DonationReport{
		Items:   make([]domain.DonationReportItem, 0, len(donations)),
		Total:   decimal.Zero,
		Average: decimal.Zero,
	}
	for _, d := range donations {
		report.Items = append(report.Items, domain.DonationReportItem{
			DonationID:   d.ID,
			DonorName:    donorName(d, donorNames),
			CampaignName: campaignName(d, campaignNames),
			Amount:       d.Amount,
			DonationDate: d.DonationDate,
		})
		report.Total = report.Total.Add(d.Amount)
	}
	report.Count = len(report.Items)
	if report.Count > 0 {
		report.Average = report.Total.Div(decimal.NewFromInt(int64(report.Count))).Round(2)
	}

	s.LogDebug(ctx, "Built donation report",
		slog.String("time_frame", string(f.TimeFrame)),
		slog.Int("count", report.Count),
		slog.String("total", report.Total.String()))
	return report, nil
}

// reportRows narrows the read by donor, then campaign, before filtering in memory.
func (s *DonationStore) reportRows(ctx context.Context, f domain.DonationReportFilter) ([]domain.Donation, error) {
	switch {
	case f.DonorID != nil:
		return s.repo.GetDonationsForDonor(ctx, *f.DonorID)
	case f.CampaignID != nil:
		return s.repo.GetDonationsForCampaign(ctx, *f.CampaignID)
	default:
		return s.repo.GetAll(ctx)
	}
}

func (s *DonationStore) matches(f domain.DonationReportFilter, d domain.Donation) bool {
	if days := f.TimeFrame.Days(); days > 0 {
		now := s.opts.now()
		if d.DonationDate.Before(now.AddDate(0, 0, -days)) || d.DonationDate.After(now) {
			return false
		}
	}
	if f.DonorID != nil && (d.DonorID == nil || *d.DonorID != *f.DonorID) {
		return false
	}
	if f.CampaignID != nil && (d.CampaignID == nil || *d.CampaignID != *f.CampaignID) {
		return false
	}
	if f.MinAmount != nil && d.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && d.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	return true
}

func (s *DonationStore) reportNames(ctx context.Context, donations []domain.Donation) (map[int64]string, map[int64]string, error) {
	var needDonors, needCampaigns bool
	for _, d := range donations {
		needDonors = needDonors || d.DonorID != nil
		needCampaigns = needCampaigns || d.CampaignID != nil
	}

	donors := map[int64]string{}
	if needDonors && s.report.donors != nil {
		all, err := s.report.donors.GetAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		for _, d := range all {
			name := d.DisplayName()
			if name == "" {
				name = UnnamedDonorName
			}
			donors[d.ID] = name
		}
	}

	campaigns := map[int64]string{}
	if needCampaigns && s.report.campaigns != nil {
		all, err := s.report.campaigns.GetAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		for _, c := range all {
			campaigns[c.ID] = c.Name
		}
	}
	return donors, campaigns, nil
}

func donorName(d domain.Donation, names map[int64]string) string {
	if d.DonorID != nil {
		if name, ok := names[*d.DonorID]; ok {
			return name
		}
	}
	if d.IsAnonymous {
		return AnonymousDonorName
	}
	return UnknownDonorName
}

func campaignName(d domain.Donation, names map[int64]string) string {
	if d.CampaignID != nil {
		if name, ok := names[*d.CampaignID]; ok {
			return name
		}
	}
	return GeneralSupportName
}
