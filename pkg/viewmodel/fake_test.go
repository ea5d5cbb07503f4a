package viewmodel_test

import (
	"context"
	"sync"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/pkg/client"
)

// fakeAPI is a scriptable CampaignAPI and DashboardAPI for view-model
// tests. Each operation records its calls and delegates to an optional
// function; unset functions succeed with zero values.
type fakeAPI struct {
	mu sync.Mutex

	listCalls   []client.ListParams
	createCalls []domain.CampaignInput
	updateCalls []domain.CampaignInput
	deleteCalls []int64

	listFn   func(params client.ListParams) ([]domain.Campaign, error)
	createFn func(in domain.CampaignInput) (domain.Campaign, error)
	updateFn func(id int64, in domain.CampaignInput) (domain.Campaign, error)
	deleteFn func(id int64) (string, error)

	summaryFn  func() (domain.DashboardSummary, error)
	statusFn   func() ([]domain.StatusCount, error)
	budgetFn   func() ([]domain.CategoryBudget, error)
	timelineFn func() ([]domain.TimeSeriesPoint, error)
}

func (f *fakeAPI) ListCampaigns(_ context.Context, params client.ListParams) ([]domain.Campaign, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, params)
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(params)
}

func (f *fakeAPI) CreateCampaign(_ context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	f.mu.Lock()
	f.createCalls = append(f.createCalls, in)
	fn := f.createFn
	f.mu.Unlock()
	if fn == nil {
		return domain.Campaign{}, nil
	}
	return fn(in)
}

func (f *fakeAPI) UpdateCampaign(_ context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error) {
	f.mu.Lock()
	f.updateCalls = append(f.updateCalls, in)
	fn := f.updateFn
	f.mu.Unlock()
	if fn == nil {
		return domain.Campaign{}, nil
	}
	return fn(id, in)
}

func (f *fakeAPI) DeleteCampaign(_ context.Context, id int64) (string, error) {
	f.mu.Lock()
	f.deleteCalls = append(f.deleteCalls, id)
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return "Campaign deleted", nil
	}
	return fn(id)
}

func (f *fakeAPI) DashboardSummary(context.Context) (domain.DashboardSummary, error) {
	if f.summaryFn == nil {
		return domain.DashboardSummary{}, nil
	}
	return f.summaryFn()
}

func (f *fakeAPI) StatusDistribution(context.Context) ([]domain.StatusCount, error) {
	if f.statusFn == nil {
		return nil, nil
	}
	return f.statusFn()
}

func (f *fakeAPI) BudgetByCategory(context.Context) ([]domain.CategoryBudget, error) {
	if f.budgetFn == nil {
		return nil, nil
	}
	return f.budgetFn()
}

func (f *fakeAPI) CampaignsOverTime(context.Context) ([]domain.TimeSeriesPoint, error) {
	if f.timelineFn == nil {
		return nil, nil
	}
	return f.timelineFn()
}
