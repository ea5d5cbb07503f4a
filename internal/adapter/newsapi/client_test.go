package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/config/configs"
	"campaign-tracker/internal/core/port"
)

func newsConfig(baseURL string) configs.News {
	return configs.News{APIKey: "test-key", BaseURL: baseURL, Timeout: time.Second}
}

func TestFetchKeywordUsesEverything(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"articles":[
			{"title":"A","description":"d","source":{"name":"Wired"},"url":"http://a","publishedAt":"2025-01-01T00:00:00Z"},
			{"title":"B","source":{},"url":"http://b"}
		]}`))
	}))
	defer upstream.Close()

	articles, err := NewClient(newsConfig(upstream.URL)).Fetch(context.Background(), "golang")

	require.NoError(t, err)
	assert.Equal(t, "/everything", gotPath)
	assert.Equal(t, []string{"golang"}, gotQuery["q"])
	assert.Equal(t, []string{"20"}, gotQuery["pageSize"])
	require.Len(t, articles, 2)
	assert.Equal(t, "Wired", articles[0].Source)
	// missing source name falls back to Unknown
	assert.Equal(t, "Unknown", articles[1].Source)
}

func TestFetchNoKeywordUsesTopHeadlines(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"articles":[]}`))
	}))
	defer upstream.Close()

	articles, err := NewClient(newsConfig(upstream.URL)).Fetch(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "/top-headlines", gotPath)
	assert.Equal(t, []string{"us"}, gotQuery["country"])
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestFetchMissingKeySkipsNetwork(t *testing.T) {
	called := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer upstream.Close()

	cfg := newsConfig(upstream.URL)
	cfg.APIKey = ""
	_, err := NewClient(cfg).Fetch(context.Background(), "golang")

	assert.ErrorIs(t, err, port.ErrNewsUnavailable)
	assert.False(t, called)
}

func TestFetchRateLimited(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	_, err := NewClient(newsConfig(upstream.URL)).Fetch(context.Background(), "golang")
	assert.ErrorIs(t, err, port.ErrNewsRateLimited)
}

func TestFetchUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	_, err := NewClient(newsConfig(upstream.URL)).Fetch(context.Background(), "golang")
	assert.ErrorIs(t, err, port.ErrNewsUnavailable)
}

func TestFetchUnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(nil))
	upstream.Close() // closed on purpose

	_, err := NewClient(newsConfig(upstream.URL)).Fetch(context.Background(), "golang")
	assert.ErrorIs(t, err, port.ErrNewsUnavailable)
}
