package sqldb_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/repositories/database/sqldb"
	"github.com/SscSPs/donation_tracker/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositorySuite struct {
	suite.Suite
	ctx    context.Context
	handle *database.Handle
	repos  portsrepo.RepositoryProvider
}

func (s *SQLiteRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	opts := database.Options{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(s.T().TempDir(), "donations.sqlite"),
	}
	s.Require().NoError(database.Migrate(opts, slog.New(slog.NewTextHandler(io.Discard, nil))))

	h, err := database.Open(s.ctx, opts)
	s.Require().NoError(err)
	s.handle = h
	s.repos = sqldb.NewRepositoryProvider(h.DB, h.Driver, nil)
}

func (s *SQLiteRepositorySuite) TearDownTest() {
	if s.handle != nil {
		_ = s.handle.Close()
	}
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositorySuite))
}

func (s *SQLiteRepositorySuite) insertDonor(first, last, company string) domain.Donor {
	d := domain.NewDonor()
	d.FirstName, d.LastName, d.Company = first, last, company
	stored, err := s.repos.DonorRepo.Insert(s.ctx, d)
	s.Require().NoError(err)
	return stored
}

func (s *SQLiteRepositorySuite) TestDonor_InsertAssignsIDAndKeepsUUID() {
	d := domain.NewDonor()
	d.FirstName, d.LastName, d.Email = "Miriam", "Adler", "miriam@example.org"

	stored, err := s.repos.DonorRepo.Insert(s.ctx, d)

	s.Require().NoError(err)
	s.NotZero(stored.ID)
	s.Equal(d.UUID, stored.UUID)
	s.Equal("miriam@example.org", stored.Email)
	s.True(d.CreatedAt.Equal(stored.CreatedAt))

	second := s.insertDonor("Noam", "Baron", "")
	s.NotEqual(stored.ID, second.ID)

	n, err := s.repos.DonorRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *SQLiteRepositorySuite) TestDonor_InsertRejectsAssignedID() {
	d := s.insertDonor("A", "B", "")

	_, err := s.repos.DonorRepo.Insert(s.ctx, d)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SQLiteRepositorySuite) TestDonor_GetOneAbsentIsNil() {
	d, err := s.repos.DonorRepo.GetOne(s.ctx, 999)

	s.NoError(err)
	s.Nil(d)
}

func (s *SQLiteRepositorySuite) TestDonor_UpdateKeepsCreatedAtAndUUID() {
	d := s.insertDonor("Ruth", "Gold", "")
	originalCreated := d.CreatedAt

	d.City = "Baltimore"
	d.UUID = "must-not-change"
	d.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	d.UpdatedAt = time.Now().UTC().Add(time.Minute)
	s.Require().NoError(s.repos.DonorRepo.Update(s.ctx, d))

	got, err := s.repos.DonorRepo.GetOne(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Baltimore", got.City)
	s.NotEqual("must-not-change", got.UUID)
	s.True(originalCreated.Equal(got.CreatedAt))
	s.True(d.UpdatedAt.Equal(got.UpdatedAt))
}

func (s *SQLiteRepositorySuite) TestDonor_UpdateMissingIsNotFound() {
	d := domain.NewDonor()
	d.ID = 4242
	d.LastName = "Ghost"

	err := s.repos.DonorRepo.Update(s.ctx, d)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.NotErrorIs(err, apperrors.ErrStorage)
}

func (s *SQLiteRepositorySuite) TestDonor_DeleteThenDeleteAgain() {
	d := s.insertDonor("Eli", "Stern", "")

	s.Require().NoError(s.repos.DonorRepo.Delete(s.ctx, d))
	s.ErrorIs(s.repos.DonorRepo.Delete(s.ctx, d), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.DonorRepo.DeleteOne(s.ctx, d.ID), apperrors.ErrNotFound)

	all, err := s.repos.DonorRepo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *SQLiteRepositorySuite) TestDonor_FindByNameIsCaseInsensitiveAndOrdered() {
	s.insertDonor("Zev", "Cohen", "")
	s.insertDonor("Avi", "Cohen", "")
	s.insertDonor("Dina", "Abrams", "Cohen & Sons")
	s.insertDonor("Mark", "Twain", "")

	found, err := s.repos.DonorRepo.FindByName(s.ctx, "COHEN")
	s.Require().NoError(err)
	s.Require().Len(found, 3)
	s.Equal("Abrams", found[0].LastName)
	s.Equal("Avi", found[1].FirstName)
	s.Equal("Zev", found[2].FirstName)

	none, err := s.repos.DonorRepo.FindByName(s.ctx, "%")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *SQLiteRepositorySuite) TestDonor_DuplicateUUIDIsStorageError() {
	d := s.insertDonor("Lea", "Roth", "")
	dup := domain.NewDonor()
	dup.UUID = d.UUID
	dup.LastName = "Copy"

	_, err := s.repos.DonorRepo.Insert(s.ctx, dup)

	s.ErrorIs(err, apperrors.ErrStorage)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *SQLiteRepositorySuite) TestCampaign_SearchAndUniqueCode() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	goal := decimal.RequireFromString("25000.50")
	c := domain.NewCampaign("BLD2025", "Building Fund")
	c.Description = "New roof for the shul"
	c.StartDate = &start
	c.Goal = &goal
	stored, err := s.repos.CampaignRepo.Insert(s.ctx, c)
	s.Require().NoError(err)
	s.Require().NotNil(stored.Goal)
	s.True(goal.Equal(*stored.Goal))
	s.Require().NotNil(stored.StartDate)
	s.True(start.Equal(*stored.StartDate))
	s.Nil(stored.EndDate)
	s.Equal(domain.CampaignDraft, stored.Status)

	_, err = s.repos.CampaignRepo.Insert(s.ctx, domain.NewCampaign("SCH2025", "Scholarships"))
	s.Require().NoError(err)

	byCode, err := s.repos.CampaignRepo.SearchByText(s.ctx, "bld")
	s.Require().NoError(err)
	s.Require().Len(byCode, 1)
	s.Equal(stored.ID, byCode[0].ID)

	byDescription, err := s.repos.CampaignRepo.SearchByText(s.ctx, "ROOF")
	s.Require().NoError(err)
	s.Len(byDescription, 1)

	_, err = s.repos.CampaignRepo.Insert(s.ctx, domain.NewCampaign("BLD2025", "Other"))
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *SQLiteRepositorySuite) TestIncentive_FindByNameAndInUse() {
	mug, err := s.repos.IncentiveRepo.Insert(s.ctx, domain.NewDonationIncentive("Coffee Mug", decimal.NewFromInt(36)))
	s.Require().NoError(err)
	bag, err := s.repos.IncentiveRepo.Insert(s.ctx, domain.NewDonationIncentive("Tote Bag", decimal.NewFromInt(54)))
	s.Require().NoError(err)

	found, err := s.repos.IncentiveRepo.FindByName(s.ctx, "mug")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.True(decimal.NewFromInt(36).Equal(found[0].DollarAmount))

	donation := domain.NewDonation(decimal.NewFromInt(40), domain.DonationCash, false)
	donation.IsAnonymous = true
	donation.DonationIncentiveID = domain.Int64Ptr(mug.ID)
	_, err = s.repos.DonationRepo.Insert(s.ctx, donation)
	s.Require().NoError(err)

	inUse, err := s.repos.IncentiveRepo.IsIncentiveInUse(s.ctx, mug.ID)
	s.Require().NoError(err)
	s.True(inUse)

	inUse, err = s.repos.IncentiveRepo.IsIncentiveInUse(s.ctx, bag.ID)
	s.Require().NoError(err)
	s.False(inUse)
}

func (s *SQLiteRepositorySuite) TestDonation_QueriesAndReceipts() {
	donor := s.insertDonor("Sam", "Levy", "")
	campaign, err := s.repos.CampaignRepo.Insert(s.ctx, domain.NewCampaign("GALA", "Annual Gala"))
	s.Require().NoError(err)

	older := domain.NewDonation(decimal.RequireFromString("100.25"), domain.DonationCheck, true)
	older.DonorID = domain.Int64Ptr(donor.ID)
	older.CampaignID = domain.Int64Ptr(campaign.ID)
	older.DonationDate = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	older, err = s.repos.DonationRepo.Insert(s.ctx, older)
	s.Require().NoError(err)

	newer := domain.NewDonation(decimal.NewFromInt(50), domain.DonationCreditCard, false)
	newer.DonorID = domain.Int64Ptr(donor.ID)
	newer.DonationDate = time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	newer, err = s.repos.DonationRepo.Insert(s.ctx, newer)
	s.Require().NoError(err)

	anon := domain.NewDonation(decimal.NewFromInt(5), domain.DonationCash, true)
	anon.IsAnonymous = true
	anon.DonationDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.repos.DonationRepo.Insert(s.ctx, anon)
	s.Require().NoError(err)

	all, err := s.repos.DonationRepo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.True(all[0].IsAnonymous)
	s.Nil(all[0].DonorID)
	s.Equal(newer.ID, all[1].ID)

	forDonor, err := s.repos.DonationRepo.GetDonationsForDonor(s.ctx, donor.ID)
	s.Require().NoError(err)
	s.Len(forDonor, 2)

	forCampaign, err := s.repos.DonationRepo.GetDonationsForCampaign(s.ctx, campaign.ID)
	s.Require().NoError(err)
	s.Require().Len(forCampaign, 1)
	s.Equal(older.ID, forCampaign[0].ID)

	total, err := s.repos.DonationRepo.GetTotalDonationsAmount(s.ctx, donor.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("150.25").Equal(total), total.String())

	none, err := s.repos.DonationRepo.GetTotalDonationsAmount(s.ctx, 999)
	s.Require().NoError(err)
	s.True(none.IsZero())

	pending, err := s.repos.DonationRepo.CountPendingReceipts(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, pending)

	s.Require().NoError(s.repos.DonationRepo.UpdateReceiptStatus(s.ctx, older.ID, domain.ReceiptPrinted))
	requested, err := s.repos.DonationRepo.GetReceiptRequests(s.ctx, domain.ReceiptRequested)
	s.Require().NoError(err)
	s.Len(requested, 1)

	s.ErrorIs(s.repos.DonationRepo.UpdateReceiptStatus(s.ctx, 999, domain.ReceiptQueued), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.DonationRepo.UpdateReceiptStatus(s.ctx, older.ID, "LOST"), apperrors.ErrValidation)
}

func (s *SQLiteRepositorySuite) TestPledge_Queries() {
	donor := s.insertDonor("Hannah", "Klein", "")
	early := domain.NewPledge(domain.Int64Ptr(donor.ID), decimal.NewFromInt(500), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	late := domain.NewPledge(domain.Int64Ptr(donor.ID), decimal.NewFromInt(900), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	late.Status = domain.PledgeFulfilled
	late.PrayerNote = "For a refuah shleima"

	_, err := s.repos.PledgeRepo.Insert(s.ctx, early)
	s.Require().NoError(err)
	storedLate, err := s.repos.PledgeRepo.Insert(s.ctx, late)
	s.Require().NoError(err)
	s.Equal("For a refuah shleima", storedLate.PrayerNote)

	forDonor, err := s.repos.PledgeRepo.GetPledgesForDonor(s.ctx, donor.ID)
	s.Require().NoError(err)
	s.Require().Len(forDonor, 2)
	s.Equal(storedLate.ID, forDonor[0].ID)

	fulfilled, err := s.repos.PledgeRepo.GetPledgesByStatus(s.ctx, domain.PledgeFulfilled)
	s.Require().NoError(err)
	s.Len(fulfilled, 1)

	forCampaign, err := s.repos.PledgeRepo.GetPledgesForCampaign(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(forCampaign)
}

func (s *SQLiteRepositorySuite) TestClosedDatabaseIsStorageError() {
	s.Require().NoError(s.handle.DB.Close())

	_, err := s.repos.DonorRepo.GetAll(s.ctx)

	s.ErrorIs(err, apperrors.ErrStorage)
	var sErr *apperrors.StorageError
	s.Require().ErrorAs(err, &sErr)
	s.Equal("donor", sErr.Entity)
	s.Equal("get_all", sErr.Op)
}
