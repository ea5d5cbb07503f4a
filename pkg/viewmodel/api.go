// Package viewmodel holds the UI-independent state behind each screen of
// the campaign tracker: the filtered collection, the create/edit form,
// the deletion flow and the dashboard. Each model owns its state, maps it
// to transport client calls and reconciles the responses; rendering is
// someone else's job.
package viewmodel

import (
	"context"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/pkg/client"
)

// CampaignAPI is the slice of the transport client used by the campaign
// view-models. *client.Client satisfies it.
type CampaignAPI interface {
	ListCampaigns(ctx context.Context, params client.ListParams) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) (string, error)
}

// DashboardAPI is the slice of the transport client used by the dashboard
// view-model. *client.Client satisfies it.
type DashboardAPI interface {
	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
	StatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error)
	CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error)
}

var (
	_ CampaignAPI  = (*client.Client)(nil)
	_ DashboardAPI = (*client.Client)(nil)
)
