package port

import (
	"context"
	"errors"

	"campaign-tracker/internal/core/domain"
)

// ErrCampaignNotFound is returned when a campaign id does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// ListFilter narrows and orders a campaign listing. Zero values mean
// "no filter" and "no ordering". SortBy may only be SortByBudget or
// SortByStartDate; repositories ignore anything else.
type ListFilter struct {
	Status   string
	Category string
	SortBy   string
	SortDesc bool
}

// Sortable list columns accepted by the API.
const (
	SortByBudget    = "budget"
	SortByStartDate = "start_date"
)

// SummaryTotals holds the raw aggregates for the dashboard summary. The
// average is derived in the usecase, not in SQL.
type SummaryTotals struct {
	TotalCampaigns  int64
	TotalBudget     float64
	ActiveCampaigns int64
}

// CampaignRepository is the outbound persistence port. Besides CRUD it
// exposes the aggregate projections consumed by the dashboard; all
// grouping and summing happens in the database.
type CampaignRepository interface {
	// List returns campaigns matching the filter, ordered per SortBy.
	List(ctx context.Context, filter ListFilter) ([]domain.Campaign, error)
	// Get returns a campaign by id, or ErrCampaignNotFound.
	Get(ctx context.Context, id int64) (domain.Campaign, error)
	// Create inserts a campaign and returns it with id and timestamps set.
	Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)
	// Update overwrites every writable field of the campaign with the
	// given id and returns the stored result, or ErrCampaignNotFound.
	Update(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error)
	// Delete removes a campaign permanently, or returns
	// ErrCampaignNotFound. There is no soft delete.
	Delete(ctx context.Context, id int64) error

	// SummaryTotals returns campaign count, budget sum and active count.
	SummaryTotals(ctx context.Context) (SummaryTotals, error)
	// StatusDistribution returns the campaign count per status.
	StatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	// BudgetByCategory returns the summed budget per category.
	BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error)
	// CampaignsOverTime returns per-day creation counts in ascending
	// date order.
	CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error)
}
