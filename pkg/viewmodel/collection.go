package viewmodel

import (
	"context"
	"sync"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/pkg/client"
)

// FilterAll is the filter value matching every campaign. It is never sent
// over the wire; an "all" filter is omitted from the query entirely.
const FilterAll = "all"

// Collection owns the filter and sort state of the campaign list and the
// collection fetched for it. Filters and sort survive a failed refresh;
// only the error panel replaces the results.
//
// Responses are reconciled with a monotonic sequence number: when
// refreshes overlap, a response belonging to anything but the newest
// issued request is discarded, so the displayed collection always matches
// the most recently requested filter state.
type Collection struct {
	api CampaignAPI

	mu             sync.Mutex
	statusFilter   string
	categoryFilter string
	sortBy         string
	sortDesc       bool

	issued    uint64
	campaigns []domain.Campaign
	errMsg    string
}

// NewCollection returns a collection with both filters set to FilterAll
// and no active sort.
func NewCollection(api CampaignAPI) *Collection {
	return &Collection{
		api:            api,
		statusFilter:   FilterAll,
		categoryFilter: FilterAll,
	}
}

// SetStatusFilter selects a status filter value (FilterAll or a status).
func (m *Collection) SetStatusFilter(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusFilter = value
}

// SetCategoryFilter selects a category filter value (FilterAll or a
// category).
func (m *Collection) SetCategoryFilter(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categoryFilter = value
}

// ToggleSort cycles the sort state for one column: toggling the active
// column flips the direction, while a new column becomes active sorted
// descending.
func (m *Collection) ToggleSort(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sortBy == field {
		m.sortDesc = !m.sortDesc
		return
	}
	m.sortBy = field
	m.sortDesc = true
}

// Sort returns the active sort column ("" when unsorted) and direction.
func (m *Collection) Sort() (field string, desc bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortBy, m.sortDesc
}

// Params maps the current filter and sort state to request parameters.
// FilterAll values are omitted, and sort parameters are omitted entirely
// while no sort column is active.
func (m *Collection) Params() client.ListParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paramsLocked()
}

func (m *Collection) paramsLocked() client.ListParams {
	params := client.ListParams{}
	if m.statusFilter != FilterAll {
		params.Status = m.statusFilter
	}
	if m.categoryFilter != FilterAll {
		params.Category = m.categoryFilter
	}
	if m.sortBy != "" {
		params.SortBy = m.sortBy
		params.SortOrder = "asc"
		if m.sortDesc {
			params.SortOrder = "desc"
		}
	}
	return params
}

// Refresh fetches the collection for the current filter state and
// replaces the in-memory results. A failed refresh stores the transport
// error's message and leaves the previous collection and all filter state
// untouched. Stale responses (superseded by a newer Refresh) are
// discarded without touching any state.
func (m *Collection) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.issued++
	seq := m.issued
	params := m.paramsLocked()
	m.mu.Unlock()

	campaigns, err := m.api.ListCampaigns(ctx, params)

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.issued {
		// A newer refresh owns the collection now.
		return nil
	}
	if err != nil {
		m.errMsg = err.Error()
		return err
	}
	m.campaigns = campaigns
	m.errMsg = ""
	return nil
}

// Campaigns returns the last successfully fetched collection.
func (m *Collection) Campaigns() []domain.Campaign {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.campaigns
}

// Err returns the message of the last failed refresh, or "" after a
// successful one.
func (m *Collection) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}
