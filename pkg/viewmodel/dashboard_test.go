package viewmodel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/pkg/client"
	"campaign-tracker/pkg/viewmodel"
)

func TestDashboardRefreshJoinsAllFour(t *testing.T) {
	api := &fakeAPI{
		summaryFn: func() (domain.DashboardSummary, error) {
			return domain.DashboardSummary{TotalCampaigns: 4, TotalBudget: 2000, ActiveCampaigns: 2, AverageBudget: 500}, nil
		},
		statusFn: func() ([]domain.StatusCount, error) {
			return []domain.StatusCount{{Status: domain.StatusActive, Count: 2}}, nil
		},
		budgetFn: func() ([]domain.CategoryBudget, error) {
			return []domain.CategoryBudget{{Category: domain.CategorySales, TotalBudget: 2000}}, nil
		},
		timelineFn: func() ([]domain.TimeSeriesPoint, error) {
			return []domain.TimeSeriesPoint{{Date: "2025-03-01", Count: 4}}, nil
		},
	}
	dash := viewmodel.NewDashboard(api)

	require.NoError(t, dash.Refresh(context.Background()))

	assert.True(t, dash.Loaded())
	assert.Empty(t, dash.Err())
	assert.Equal(t, int64(4), dash.Summary().TotalCampaigns)
	assert.Len(t, dash.StatusDistribution(), 1)
	assert.Len(t, dash.BudgetByCategory(), 1)
	assert.Len(t, dash.Timeline(), 1)
}

func TestDashboardSingleFailureMeansNoPartialData(t *testing.T) {
	api := &fakeAPI{
		summaryFn: func() (domain.DashboardSummary, error) {
			return domain.DashboardSummary{TotalCampaigns: 4}, nil
		},
		budgetFn: func() ([]domain.CategoryBudget, error) {
			return nil, &client.APIError{StatusCode: 500, Detail: "Internal server error"}
		},
	}
	dash := viewmodel.NewDashboard(api)

	err := dash.Refresh(context.Background())

	require.Error(t, err)
	assert.False(t, dash.Loaded())
	assert.Equal(t, "Internal server error", dash.Err())
	// the three successful fetches are not rendered either
	assert.Zero(t, dash.Summary())
	assert.Nil(t, dash.StatusDistribution())
	assert.Nil(t, dash.BudgetByCategory())
	assert.Nil(t, dash.Timeline())
}

func TestDashboardRecoversAfterFailure(t *testing.T) {
	healthy := false
	api := &fakeAPI{
		summaryFn: func() (domain.DashboardSummary, error) {
			if !healthy {
				return domain.DashboardSummary{}, &client.APIError{StatusCode: 502, Detail: "bad gateway"}
			}
			return domain.DashboardSummary{TotalCampaigns: 1}, nil
		},
	}
	dash := viewmodel.NewDashboard(api)

	require.Error(t, dash.Refresh(context.Background()))
	assert.False(t, dash.Loaded())

	healthy = true
	require.NoError(t, dash.Refresh(context.Background()))
	assert.True(t, dash.Loaded())
	assert.Empty(t, dash.Err())
}
