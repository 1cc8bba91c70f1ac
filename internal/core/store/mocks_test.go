package store_test

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// mockEntityRepository implements the methods shared by every repository.
type mockEntityRepository[E any] struct {
	mock.Mock
}

func (m *mockEntityRepository[E]) GetOne(ctx context.Context, id int64) (*E, error) {
	args := m.MethodCalled("GetOne", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *mockEntityRepository[E]) GetAll(ctx context.Context) ([]E, error) {
	args := m.MethodCalled("GetAll", ctx)
	return list[E](args), args.Error(1)
}

func (m *mockEntityRepository[E]) Count(ctx context.Context) (int, error) {
	args := m.MethodCalled("Count", ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockEntityRepository[E]) Insert(ctx context.Context, e E) (E, error) {
	args := m.MethodCalled("Insert", ctx, e)
	if args.Get(0) == nil {
		var zero E
		return zero, args.Error(1)
	}
	return args.Get(0).(E), args.Error(1)
}

func (m *mockEntityRepository[E]) Update(ctx context.Context, e E) error {
	return m.MethodCalled("Update", ctx, e).Error(0)
}

func (m *mockEntityRepository[E]) Delete(ctx context.Context, e E) error {
	return m.MethodCalled("Delete", ctx, e).Error(0)
}

func (m *mockEntityRepository[E]) DeleteOne(ctx context.Context, id int64) error {
	return m.MethodCalled("DeleteOne", ctx, id).Error(0)
}

func list[E any](args mock.Arguments) []E {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]E)
}

type MockDonorRepository struct {
	mockEntityRepository[domain.Donor]
}

func (m *MockDonorRepository) FindByName(ctx context.Context, text string) ([]domain.Donor, error) {
	args := m.MethodCalled("FindByName", ctx, text)
	return list[domain.Donor](args), args.Error(1)
}

type MockCampaignRepository struct {
	mockEntityRepository[domain.Campaign]
}

func (m *MockCampaignRepository) SearchByText(ctx context.Context, text string) ([]domain.Campaign, error) {
	args := m.MethodCalled("SearchByText", ctx, text)
	return list[domain.Campaign](args), args.Error(1)
}

type MockIncentiveRepository struct {
	mockEntityRepository[domain.DonationIncentive]
}

func (m *MockIncentiveRepository) FindByName(ctx context.Context, text string) ([]domain.DonationIncentive, error) {
	args := m.MethodCalled("FindByName", ctx, text)
	return list[domain.DonationIncentive](args), args.Error(1)
}

func (m *MockIncentiveRepository) IsIncentiveInUse(ctx context.Context, id int64) (bool, error) {
	args := m.MethodCalled("IsIncentiveInUse", ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDonationRepository struct {
	mockEntityRepository[domain.Donation]
}

func (m *MockDonationRepository) GetDonationsForDonor(ctx context.Context, donorID int64) ([]domain.Donation, error) {
	args := m.MethodCalled("GetDonationsForDonor", ctx, donorID)
	return list[domain.Donation](args), args.Error(1)
}

func (m *MockDonationRepository) GetDonationsForCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	args := m.MethodCalled("GetDonationsForCampaign", ctx, campaignID)
	return list[domain.Donation](args), args.Error(1)
}

func (m *MockDonationRepository) GetDonationsForIncentive(ctx context.Context, incentiveID int64) ([]domain.Donation, error) {
	args := m.MethodCalled("GetDonationsForIncentive", ctx, incentiveID)
	return list[domain.Donation](args), args.Error(1)
}

func (m *MockDonationRepository) GetTotalDonationsAmount(ctx context.Context, donorID int64) (decimal.Decimal, error) {
	args := m.MethodCalled("GetTotalDonationsAmount", ctx, donorID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDonationRepository) CountPendingReceipts(ctx context.Context) (int, error) {
	args := m.MethodCalled("CountPendingReceipts", ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDonationRepository) GetReceiptRequests(ctx context.Context, status domain.ReceiptStatus) ([]domain.Donation, error) {
	args := m.MethodCalled("GetReceiptRequests", ctx, status)
	return list[domain.Donation](args), args.Error(1)
}

func (m *MockDonationRepository) UpdateReceiptStatus(ctx context.Context, id int64, status domain.ReceiptStatus) error {
	return m.MethodCalled("UpdateReceiptStatus", ctx, id, status).Error(0)
}

type MockPledgeRepository struct {
	mockEntityRepository[domain.Pledge]
}

func (m *MockPledgeRepository) GetPledgesForDonor(ctx context.Context, donorID int64) ([]domain.Pledge, error) {
	args := m.MethodCalled("GetPledgesForDonor", ctx, donorID)
	return list[domain.Pledge](args), args.Error(1)
}

func (m *MockPledgeRepository) GetPledgesForCampaign(ctx context.Context, campaignID int64) ([]domain.Pledge, error) {
	args := m.MethodCalled("GetPledgesForCampaign", ctx, campaignID)
	return list[domain.Pledge](args), args.Error(1)
}

func (m *MockPledgeRepository) GetPledgesByStatus(ctx context.Context, status domain.PledgeStatus) ([]domain.Pledge, error) {
	args := m.MethodCalled("GetPledgesByStatus", ctx, status)
	return list[domain.Pledge](args), args.Error(1)
}
