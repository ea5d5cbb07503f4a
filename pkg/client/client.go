// Package client is the transport client for the campaign tracker API.
// It is the only module issuing requests against the backend and it
// normalizes every failure into a single *APIError carrying a
// human-readable message. Calls are one-shot: no timeout, no retry, no
// cancellation beyond the caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"campaign-tracker/internal/core/domain"
)

// APIError is the uniform error for every non-2xx response. Detail holds
// the message extracted from the backend's {"detail": ...} payload, or a
// generic fallback when the body was not parseable.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Client talks to the campaign tracker API at a configured base address.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client for the API at baseURL. The underlying
// http.Client carries no timeout; every call runs until it completes or
// the caller's context is done.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// ListParams narrows and orders a campaign listing. Empty fields are
// omitted from the query string entirely.
type ListParams struct {
	Status    string
	Category  string
	SortBy    string
	SortOrder string
}

func (p ListParams) query() string {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sort_order", p.SortOrder)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListCampaigns returns campaigns matching params.
func (c *Client) ListCampaigns(ctx context.Context, params ListParams) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := c.do(ctx, http.MethodGet, "/api/campaigns"+params.query(), nil, &campaigns)
	return campaigns, err
}

// GetCampaign returns a single campaign by id.
func (c *Client) GetCampaign(ctx context.Context, id int64) (domain.Campaign, error) {
	var campaign domain.Campaign
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/campaigns/%d", id), nil, &campaign)
	return campaign, err
}

// CreateCampaign submits a new campaign and returns the stored entity
// with server-assigned id and timestamps.
func (c *Client) CreateCampaign(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	var campaign domain.Campaign
	err := c.do(ctx, http.MethodPost, "/api/campaigns", in, &campaign)
	return campaign, err
}

// UpdateCampaign overwrites the full field set of the campaign with the
// given id.
func (c *Client) UpdateCampaign(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error) {
	var campaign domain.Campaign
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/campaigns/%d", id), in, &campaign)
	return campaign, err
}

// DeleteCampaign removes the campaign with the given id and returns the
// server's confirmation message.
func (c *Client) DeleteCampaign(ctx context.Context, id int64) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/campaigns/%d", id), nil, &resp)
	return resp.Message, err
}

// DashboardSummary fetches the headline aggregates.
func (c *Client) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, &summary)
	return summary, err
}

// StatusDistribution fetches the campaign count per status.
func (c *Client) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	var counts []domain.StatusCount
	err := c.do(ctx, http.MethodGet, "/api/dashboard/status-distribution", nil, &counts)
	return counts, err
}

// BudgetByCategory fetches the summed budget per category.
func (c *Client) BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error) {
	var budgets []domain.CategoryBudget
	err := c.do(ctx, http.MethodGet, "/api/dashboard/budget-by-category", nil, &budgets)
	return budgets, err
}

// CampaignsOverTime fetches per-day creation counts.
func (c *Client) CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	var points []domain.TimeSeriesPoint
	err := c.do(ctx, http.MethodGet, "/api/dashboard/campaigns-over-time", nil, &points)
	return points, err
}

// News fetches articles, optionally narrowed by keyword.
func (c *Client) News(ctx context.Context, keyword string) ([]domain.NewsArticle, error) {
	path := "/api/news"
	if keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}
	var articles []domain.NewsArticle
	err := c.do(ctx, http.MethodGet, path, nil, &articles)
	return articles, err
}

// do issues one request. A 2xx body is decoded into out when out is
// non-nil and returned as-is otherwise; any other status is turned into
// an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts the detail message from an error response. A string
// detail is used verbatim; a structured detail is stringified; an
// unparseable body falls back to a generic status message.
func apiError(resp *http.Response) *APIError {
	fallback := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload.Detail) == 0 {
		return &APIError{StatusCode: resp.StatusCode, Detail: fallback}
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		// Structured detail (e.g. field errors): keep the raw JSON text.
		detail = string(payload.Detail)
	}
	if detail == "" {
		detail = fallback
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
