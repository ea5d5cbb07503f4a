package viewmodel

import (
	"context"
	"time"

	"campaign-tracker/internal/core/domain"
)

// Form is the state machine behind the single campaign form. The mode is
// fixed at construction: a form opened with a bound campaign edits it, a
// form opened without one creates. Submit validates locally first and
// only reaches the network when every invariant holds.
type Form struct {
	api        CampaignAPI
	campaignID int64
	editing    bool

	input     domain.CampaignInput
	fieldErrs domain.FieldErrors
	apiErr    string

	onSuccess func(domain.Campaign)
}

// NewCreateForm opens the form in create mode with the same defaults the
// UI starts from: draft status, "other" platform and category, and both
// dates set to today. onSuccess is invoked with the stored campaign after
// a successful submission.
func NewCreateForm(api CampaignAPI, onSuccess func(domain.Campaign)) *Form {
	today := domain.DateOf(time.Now())
	return &Form{
		api: api,
		input: domain.CampaignInput{
			Status:    domain.StatusDraft,
			Platform:  domain.PlatformOther,
			Category:  domain.CategoryOther,
			StartDate: today,
			EndDate:   today,
		},
		fieldErrs: domain.FieldErrors{},
		onSuccess: onSuccess,
	}
}

// NewEditForm opens the form in edit mode, seeded from the bound
// campaign's current values. The id and timestamps are never editable.
func NewEditForm(api CampaignAPI, campaign domain.Campaign, onSuccess func(domain.Campaign)) *Form {
	return &Form{
		api:        api,
		campaignID: campaign.ID,
		editing:    true,
		input: domain.CampaignInput{
			Name:        campaign.Name,
			Description: campaign.Description,
			Status:      campaign.Status,
			Budget:      campaign.Budget,
			StartDate:   campaign.StartDate,
			EndDate:     campaign.EndDate,
			Platform:    campaign.Platform,
			Category:    campaign.Category,
		},
		fieldErrs: domain.FieldErrors{},
		onSuccess: onSuccess,
	}
}

// Editing reports whether the form is bound to an existing campaign.
func (f *Form) Editing() bool {
	return f.editing
}

// Input returns the current form field values.
func (f *Form) Input() domain.CampaignInput {
	return f.input
}

// Editing any field clears that field's error immediately, without
// waiting for a re-submit.

func (f *Form) SetName(v string) {
	f.input.Name = v
	delete(f.fieldErrs, "name")
}

func (f *Form) SetDescription(v string) {
	f.input.Description = v
	delete(f.fieldErrs, "description")
}

func (f *Form) SetStatus(v domain.Status) {
	f.input.Status = v
	delete(f.fieldErrs, "status")
}

func (f *Form) SetBudget(v float64) {
	f.input.Budget = v
	delete(f.fieldErrs, "budget")
}

func (f *Form) SetStartDate(v domain.Date) {
	f.input.StartDate = v
	delete(f.fieldErrs, "start_date")
}

func (f *Form) SetEndDate(v domain.Date) {
	f.input.EndDate = v
	delete(f.fieldErrs, "end_date")
}

func (f *Form) SetPlatform(v domain.Platform) {
	f.input.Platform = v
	delete(f.fieldErrs, "platform")
}

func (f *Form) SetCategory(v domain.Category) {
	f.input.Category = v
	delete(f.fieldErrs, "category")
}

// FieldError returns the validation message attached to a field, or "".
func (f *Form) FieldError(field string) string {
	return f.fieldErrs[field]
}

// FieldErrorCount returns how many fields currently carry an error.
func (f *Form) FieldErrorCount() int {
	return len(f.fieldErrs)
}

// Err returns the inline transport error of the last failed submission,
// or "".
func (f *Form) Err() string {
	return f.apiErr
}

// Submit runs local validation and, when it passes, sends the full field
// set as a create or update request. Validation failures attach per-field
// messages and skip the network entirely. A transport failure keeps the
// form open and populated with its message stored inline. On success the
// caller-supplied callback fires with the stored campaign.
func (f *Form) Submit(ctx context.Context) error {
	if errs := f.input.Validate(); errs != nil {
		f.fieldErrs = errs
		return errs
	}
	f.fieldErrs = domain.FieldErrors{}
	f.apiErr = ""

	var (
		campaign domain.Campaign
		err      error
	)
	if f.editing {
		campaign, err = f.api.UpdateCampaign(ctx, f.campaignID, f.input)
	} else {
		campaign, err = f.api.CreateCampaign(ctx, f.input)
	}
	if err != nil {
		f.apiErr = err.Error()
		return err
	}
	if f.onSuccess != nil {
		f.onSuccess(campaign)
	}
	return nil
}
