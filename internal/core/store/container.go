package store

import (
	"sync"

	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
)

// Container holds the one store per entity type shared by the whole process.
type Container struct {
	Donors     *DonorStore
	Campaigns  *CampaignStore
	Incentives *DonationIncentiveStore
	Donations  *DonationStore
	Pledges    *PledgeStore
}

// NewContainer creates every store. Donations and pledges check their
// references against the donor, campaign and incentive stores built here.
func NewContainer(repos portsrepo.RepositoryProvider, opts ...Option) *Container {
	c := &Container{
		Donors:     NewDonorStore(repos.DonorRepo, opts...),
		Campaigns:  NewCampaignStore(repos.CampaignRepo, opts...),
		Incentives: NewDonationIncentiveStore(repos.IncentiveRepo, opts...),
	}
	c.Donations = NewDonationStore(repos.DonationRepo, c.Donors, c.Campaigns, c.Incentives, opts...)
	c.Donations.setReportSources(repos.DonorRepo, repos.CampaignRepo)
	c.Pledges = NewPledgeStore(repos.PledgeRepo, c.Donors, c.Campaigns, opts...)
	return c
}

type subscriber interface {
	Subscribe() (<-chan Change, func())
}

// Subscribe merges the change streams of every store. The returned function
// stops all forwarding and closes the channel.
func (c *Container) Subscribe() (<-chan Change, func()) {
	sources := []subscriber{c.Donors, c.Campaigns, c.Incentives, c.Donations, c.Pledges}
	out := make(chan Change, len(sources))
	done := make(chan struct{})

	var wg sync.WaitGroup
	cancels := make([]func(), 0, len(sources))
	for _, src := range sources {
		ch, cancel := src.Subscribe()
		cancels = append(cancels, cancel)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case change, ok := <-ch:
					if !ok {
						return
					}
					select {
					case out <- change:
					case <-done:
						return
					}
				case <-done:
					return
				}
			}
		}()
	}

	var once sync.Once
	return out, func() {
		once.Do(func() {
			close(done)
			for _, cancel := range cancels {
				cancel()
			}
			wg.Wait()
			close(out)
		})
	}
}
