package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/port"
	"campaign-tracker/internal/core/port/mocks"
)

func TestSummaryAverage(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	repo.On("SummaryTotals", mock.Anything).Return(port.SummaryTotals{
		TotalCampaigns:  3,
		TotalBudget:     1000,
		ActiveCampaigns: 2,
	}, nil)

	svc := NewDashboardUseCase(repo)
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalCampaigns)
	assert.Equal(t, int64(2), summary.ActiveCampaigns)
	assert.Equal(t, 1000.0, summary.TotalBudget)
	// 1000/3 rounded to two decimals
	assert.Equal(t, 333.33, summary.AverageBudget)
}

func TestSummaryAverageNoCampaigns(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	repo.On("SummaryTotals", mock.Anything).Return(port.SummaryTotals{}, nil)

	svc := NewDashboardUseCase(repo)
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.AverageBudget)
}

func TestSummaryPropagatesError(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	boom := errors.New("connection refused")
	repo.On("SummaryTotals", mock.Anything).Return(port.SummaryTotals{}, boom)

	svc := NewDashboardUseCase(repo)
	_, err := svc.Summary(context.Background())

	assert.ErrorIs(t, err, boom)
}
