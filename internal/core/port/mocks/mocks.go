// Package mocks provides testify mocks for the core ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// CampaignRepository is a mock implementation of port.CampaignRepository.
type CampaignRepository struct {
	mock.Mock
}

func (m *CampaignRepository) List(ctx context.Context, filter port.ListFilter) ([]domain.Campaign, error) {
	args := m.Called(ctx, filter)
	campaigns, _ := args.Get(0).([]domain.Campaign)
	return campaigns, args.Error(1)
}

func (m *CampaignRepository) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	args := m.Called(ctx, id)
	campaign, _ := args.Get(0).(domain.Campaign)
	return campaign, args.Error(1)
}

func (m *CampaignRepository) Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	args := m.Called(ctx, in)
	campaign, _ := args.Get(0).(domain.Campaign)
	return campaign, args.Error(1)
}

func (m *CampaignRepository) Update(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error) {
	args := m.Called(ctx, id, in)
	campaign, _ := args.Get(0).(domain.Campaign)
	return campaign, args.Error(1)
}

func (m *CampaignRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CampaignRepository) SummaryTotals(ctx context.Context) (port.SummaryTotals, error) {
	args := m.Called(ctx)
	totals, _ := args.Get(0).(port.SummaryTotals)
	return totals, args.Error(1)
}

func (m *CampaignRepository) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]domain.StatusCount)
	return counts, args.Error(1)
}

func (m *CampaignRepository) BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error) {
	args := m.Called(ctx)
	budgets, _ := args.Get(0).([]domain.CategoryBudget)
	return budgets, args.Error(1)
}

func (m *CampaignRepository) CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	args := m.Called(ctx)
	points, _ := args.Get(0).([]domain.TimeSeriesPoint)
	return points, args.Error(1)
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignUseCase is a mock implementation of port.CampaignUseCase.
type CampaignUseCase struct {
	mock.Mock
}

func (m *CampaignUseCase) List(ctx context.Context, filter port.ListFilter) ([]domain.Campaign, error) {
	args := m.Called(ctx, filter)
	campaigns, _ := args.Get(0).([]domain.Campaign)
	return campaigns, args.Error(1)
}

func (m *CampaignUseCase) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	args := m.Called(ctx, id)
	campaign, _ := args.Get(0).(domain.Campaign)
	return campaign, args.Error(1)
}

func (m *CampaignUseCase) Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	args := m.Called(ctx, in)
	campaign, _ := args.Get(0).(domain.Campaign)
	return campaign, args.Error(1)
}

func (m *CampaignUseCase) Update(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error) {
	args := m.Called(ctx, id, in)
	campaign, _ := args.Get(0).(domain.Campaign)
	return campaign, args.Error(1)
}

func (m *CampaignUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// DashboardUseCase is a mock implementation of port.DashboardUseCase.
type DashboardUseCase struct {
	mock.Mock
}

func (m *DashboardUseCase) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(domain.DashboardSummary)
	return summary, args.Error(1)
}

func (m *DashboardUseCase) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]domain.StatusCount)
	return counts, args.Error(1)
}

func (m *DashboardUseCase) BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error) {
	args := m.Called(ctx)
	budgets, _ := args.Get(0).([]domain.CategoryBudget)
	return budgets, args.Error(1)
}

func (m *DashboardUseCase) CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	args := m.Called(ctx)
	points, _ := args.Get(0).([]domain.TimeSeriesPoint)
	return points, args.Error(1)
}

var _ port.DashboardUseCase = (*DashboardUseCase)(nil)

// NewsProvider is a mock implementation of port.NewsProvider.
type NewsProvider struct {
	mock.Mock
}

func (m *NewsProvider) Fetch(ctx context.Context, keyword string) ([]domain.NewsArticle, error) {
	args := m.Called(ctx, keyword)
	articles, _ := args.Get(0).([]domain.NewsArticle)
	return articles, args.Error(1)
}

var _ port.NewsProvider = (*NewsProvider)(nil)
