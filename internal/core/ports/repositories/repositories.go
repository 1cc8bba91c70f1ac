package repositories

// RepositoryProvider holds all repository interfaces needed by the stores.
// This makes passing dependencies to the store container constructor cleaner.
type RepositoryProvider struct {
	DonorRepo     DonorRepositoryFacade
	DonationRepo  DonationRepositoryFacade
	CampaignRepo  CampaignRepositoryFacade
	IncentiveRepo DonationIncentiveRepositoryFacade
	PledgeRepo    PledgeRepositoryFacade
}
