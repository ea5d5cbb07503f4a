package domain

import (
	"strings"
	"time"
)

// Campaign represents one marketing effort with a budget, a schedule,
// a delivery platform and a marketing objective. The ID and timestamps
// are assigned by the server and never accepted from clients.
type Campaign struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Budget      float64   `json:"budget"`
	StartDate   Date      `json:"start_date"`
	EndDate     Date      `json:"end_date"`
	Platform    Platform  `json:"platform"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CampaignInput carries the writable fields of a campaign for create and
// update requests. Updates always send the full field set; partial updates
// are not supported.
type CampaignInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Budget      float64  `json:"budget"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date"`
	Platform    Platform `json:"platform"`
	Category    Category `json:"category"`
}

// FieldErrors maps a field name to a human-readable validation message.
// It implements error so a failed validation can travel through the usual
// error return path.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the invariants enforced before any write request:
// a non-empty trimmed name, a non-negative budget, an end date on or after
// the start date, and enumeration fields holding known values. It returns
// nil when the input is valid.
func (in CampaignInput) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if in.Budget < 0 {
		errs["budget"] = "Budget must be non-negative"
	}
	if in.EndDate.Before(in.StartDate) {
		errs["end_date"] = "End date must be on or after start date"
	}
	if !in.Status.Valid() {
		errs["status"] = "Unknown status"
	}
	if !in.Platform.Valid() {
		errs["platform"] = "Unknown platform"
	}
	if !in.Category.Valid() {
		errs["category"] = "Unknown category"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
