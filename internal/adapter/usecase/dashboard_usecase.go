package usecase

import (
	"context"
	"math"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// DashboardUseCase implements port.DashboardUseCase. The aggregates are
// computed by the repository in SQL; the only derivation done here is the
// average budget for the summary.
type DashboardUseCase struct {
	repo port.CampaignRepository
}

// NewDashboardUseCase creates a new usecase with the provided repository.
func NewDashboardUseCase(repo port.CampaignRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary returns the headline aggregates. The average budget is
// total/count rounded to two decimals, and zero when no campaigns exist.
func (u *DashboardUseCase) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	totals, err := u.repo.SummaryTotals(ctx)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	var average float64
	if totals.TotalCampaigns > 0 {
		average = math.Round(totals.TotalBudget/float64(totals.TotalCampaigns)*100) / 100
	}
	return domain.DashboardSummary{
		TotalCampaigns:  totals.TotalCampaigns,
		TotalBudget:     totals.TotalBudget,
		ActiveCampaigns: totals.ActiveCampaigns,
		AverageBudget:   average,
	}, nil
}

// StatusDistribution returns the campaign count per status.
func (u *DashboardUseCase) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	return u.repo.StatusDistribution(ctx)
}

// BudgetByCategory returns the summed budget per category.
func (u *DashboardUseCase) BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error) {
	return u.repo.BudgetByCategory(ctx)
}

// CampaignsOverTime returns per-day creation counts in ascending order.
func (u *DashboardUseCase) CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	return u.repo.CampaignsOverTime(ctx)
}
