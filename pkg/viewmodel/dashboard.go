package viewmodel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"campaign-tracker/internal/core/domain"
)

// Dashboard fetches the four aggregate projections concurrently and only
// exposes them once all four have arrived. If any fetch fails the whole
// model enters a single error state; there is no partial rendering.
type Dashboard struct {
	api DashboardAPI

	mu       sync.Mutex
	loaded   bool
	errMsg   string
	summary  domain.DashboardSummary
	statuses []domain.StatusCount
	budgets  []domain.CategoryBudget
	timeline []domain.TimeSeriesPoint
}

// NewDashboard returns an empty, unloaded dashboard model.
func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api}
}

// Refresh fans out the four aggregate fetches and joins them. All four
// must succeed; the first failure wins, the model drops into its error
// state and any data already fetched is discarded.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var (
		summary  domain.DashboardSummary
		statuses []domain.StatusCount
		budgets  []domain.CategoryBudget
		timeline []domain.TimeSeriesPoint
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = d.api.DashboardSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = d.api.StatusDistribution(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = d.api.BudgetByCategory(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		timeline, err = d.api.CampaignsOverTime(ctx)
		return err
	})

	err := g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.loaded = false
		d.errMsg = err.Error()
		d.summary = domain.DashboardSummary{}
		d.statuses = nil
		d.budgets = nil
		d.timeline = nil
		return err
	}
	d.loaded = true
	d.errMsg = ""
	d.summary = summary
	d.statuses = statuses
	d.budgets = budgets
	d.timeline = timeline
	return nil
}

// Loaded reports whether all four projections are present.
func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Err returns the message of the last failed refresh, or "".
func (d *Dashboard) Err() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}

// Summary returns the headline aggregates.
func (d *Dashboard) Summary() domain.DashboardSummary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

// StatusDistribution returns the campaign count per status.
func (d *Dashboard) StatusDistribution() []domain.StatusCount {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.statuses
}

// BudgetByCategory returns the summed budget per category.
func (d *Dashboard) BudgetByCategory() []domain.CategoryBudget {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.budgets
}

// Timeline returns per-day campaign creation counts.
func (d *Dashboard) Timeline() []domain.TimeSeriesPoint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeline
}
