// Package newsapi implements port.NewsProvider against the NewsAPI.org
// REST service.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"campaign-tracker/internal/config/configs"
	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// pageSize caps how many articles one fetch requests upstream.
const pageSize = 20

// Client fetches articles from NewsAPI. A keyword search hits the
// /everything endpoint; without a keyword it falls back to US top
// headlines.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient builds a Client from configuration. The underlying HTTP client
// enforces the configured upstream timeout.
func NewClient(cfg configs.News) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

type articlePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type responsePayload struct {
	Articles []articlePayload `json:"articles"`
}

// Fetch returns up to pageSize articles. A missing API key, an unreachable
// upstream or any non-200 answer maps to port.ErrNewsUnavailable; upstream
// throttling maps to port.ErrNewsRateLimited.
func (c *Client) Fetch(ctx context.Context, keyword string) ([]domain.NewsArticle, error) {
	if c.apiKey == "" {
		return nil, port.ErrNewsUnavailable
	}

	var endpoint string
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", fmt.Sprint(pageSize))
	if keyword != "" {
		endpoint = c.baseURL + "/everything"
		params.Set("q", keyword)
	} else {
		endpoint = c.baseURL + "/top-headlines"
		params.Set("country", "us")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, port.ErrNewsUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, port.ErrNewsRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, port.ErrNewsUnavailable
	}

	var payload responsePayload
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, port.ErrNewsUnavailable
	}

	articles := make([]domain.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      source,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}

var _ port.NewsProvider = (*Client)(nil)
