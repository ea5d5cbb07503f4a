package port

import (
	"context"

	"campaign-tracker/internal/core/domain"
)

// CampaignUseCase is the primary port for campaign operations. Create and
// Update validate the input first and return domain.FieldErrors without
// touching the repository when an invariant is violated.
type CampaignUseCase interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Campaign, error)
	Get(ctx context.Context, id int64) (domain.Campaign, error)
	Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)
	Update(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error)
	Delete(ctx context.Context, id int64) error
}

// DashboardUseCase exposes the four aggregate projections rendered by the
// dashboard. Each call is independent; callers fan them out as they wish.
type DashboardUseCase interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
	StatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error)
	CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error)
}
