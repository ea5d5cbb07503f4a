package viewmodel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/pkg/client"
	"campaign-tracker/pkg/viewmodel"
)

func TestParamsDefaultsAreEmpty(t *testing.T) {
	collection := viewmodel.NewCollection(&fakeAPI{})
	assert.Equal(t, client.ListParams{}, collection.Params())
}

func TestParamsAllFilterIsOmitted(t *testing.T) {
	collection := viewmodel.NewCollection(&fakeAPI{})
	collection.SetStatusFilter("active")
	collection.SetCategoryFilter(viewmodel.FilterAll)

	params := collection.Params()
	assert.Equal(t, "active", params.Status)
	assert.Empty(t, params.Category)

	// setting the status back to "all" is equivalent to omitting it
	collection.SetStatusFilter(viewmodel.FilterAll)
	assert.Equal(t, client.ListParams{}, collection.Params())
}

func TestParamsOmitSortWhenUnset(t *testing.T) {
	collection := viewmodel.NewCollection(&fakeAPI{})
	params := collection.Params()
	assert.Empty(t, params.SortBy)
	assert.Empty(t, params.SortOrder)
}

func TestToggleSort(t *testing.T) {
	collection := viewmodel.NewCollection(&fakeAPI{})

	// a fresh toggle adopts the field, sorted descending
	collection.ToggleSort("budget")
	field, desc := collection.Sort()
	assert.Equal(t, "budget", field)
	assert.True(t, desc)
	assert.Equal(t, "desc", collection.Params().SortOrder)

	// toggling the same field flips to ascending
	collection.ToggleSort("budget")
	field, desc = collection.Sort()
	assert.Equal(t, "budget", field)
	assert.False(t, desc)
	assert.Equal(t, "asc", collection.Params().SortOrder)

	// a different field resets to descending
	collection.ToggleSort("start_date")
	field, desc = collection.Sort()
	assert.Equal(t, "start_date", field)
	assert.True(t, desc)
}

func TestRefreshReplacesCollection(t *testing.T) {
	api := &fakeAPI{
		listFn: func(params client.ListParams) ([]domain.Campaign, error) {
			return []domain.Campaign{{ID: 1, Name: "First"}, {ID: 2, Name: "Second"}}, nil
		},
	}
	collection := viewmodel.NewCollection(api)
	collection.SetStatusFilter("active")

	require.NoError(t, collection.Refresh(context.Background()))

	// the query carried only the status filter, and the result is taken
	// verbatim with no further client-side filtering
	require.Len(t, api.listCalls, 1)
	assert.Equal(t, client.ListParams{Status: "active"}, api.listCalls[0])
	assert.Len(t, collection.Campaigns(), 2)
	assert.Empty(t, collection.Err())
}

func TestRefreshFailureKeepsStateAndFilters(t *testing.T) {
	healthy := true
	api := &fakeAPI{
		listFn: func(params client.ListParams) ([]domain.Campaign, error) {
			if !healthy {
				return nil, &client.APIError{StatusCode: 500, Detail: "Internal server error"}
			}
			return []domain.Campaign{{ID: 1}}, nil
		},
	}
	collection := viewmodel.NewCollection(api)
	collection.SetStatusFilter("paused")
	require.NoError(t, collection.Refresh(context.Background()))

	healthy = false
	err := collection.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Internal server error", collection.Err())
	// the previous collection and the filters stay put for the retry
	assert.Len(t, collection.Campaigns(), 1)
	assert.Equal(t, "paused", collection.Params().Status)

	// manual retry clears the error
	healthy = true
	require.NoError(t, collection.Refresh(context.Background()))
	assert.Empty(t, collection.Err())
}

func TestRefreshDiscardsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	api := &fakeAPI{}
	api.listFn = func(params client.ListParams) ([]domain.Campaign, error) {
		api.mu.Lock()
		calls++
		mine := calls
		api.mu.Unlock()
		if mine == 1 {
			// the first request straggles until the second has finished
			<-release
			return []domain.Campaign{{ID: 1, Name: "stale"}}, nil
		}
		return []domain.Campaign{{ID: 2, Name: "fresh"}}, nil
	}
	collection := viewmodel.NewCollection(api)

	done := make(chan error, 1)
	go func() { done <- collection.Refresh(context.Background()) }()
	// wait for the first request to be in flight
	for {
		api.mu.Lock()
		started := calls == 1
		api.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, collection.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-done)

	// the older response lost, even though it arrived last
	campaigns := collection.Campaigns()
	require.Len(t, campaigns, 1)
	assert.Equal(t, "fresh", campaigns[0].Name)
}
