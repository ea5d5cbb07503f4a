package usecase

import (
	"context"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a repository.
// Its only business logic is running client-visible validation before any
// write; everything else is delegated to the repository.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// List returns campaigns matching the filter. Filter values are passed
// through verbatim; an unknown status or category simply matches nothing.
func (u *CampaignUseCase) List(ctx context.Context, filter port.ListFilter) ([]domain.Campaign, error) {
	return u.repo.List(ctx, filter)
}

// Get returns a single campaign by id.
func (u *CampaignUseCase) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// Create validates the input and inserts a new campaign. Validation
// failures are returned as domain.FieldErrors and no repository call is
// made.
func (u *CampaignUseCase) Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	if errs := in.Validate(); errs != nil {
		return domain.Campaign{}, errs
	}
	return u.repo.Create(ctx, in)
}

// Update validates the input and overwrites the campaign with the given
// id. The full field set is always written; there are no partial updates.
func (u *CampaignUseCase) Update(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error) {
	if errs := in.Validate(); errs != nil {
		return domain.Campaign{}, errs
	}
	return u.repo.Update(ctx, id, in)
}

// Delete removes a campaign permanently.
func (u *CampaignUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
