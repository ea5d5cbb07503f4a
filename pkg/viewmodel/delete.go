package viewmodel

import "context"

// DeleteFlow is the guarded two-step deletion of one campaign: Request
// arms the confirmation, Confirm performs the delete. A failed delete
// keeps the confirmation open with the error message attached instead of
// dismissing silently, so the user sees why the campaign is still there.
type DeleteFlow struct {
	api        CampaignAPI
	campaignID int64

	confirming bool
	errMsg     string

	onDeleted func()
}

// NewDeleteFlow binds a deletion flow to one campaign id. onDeleted fires
// after a successful delete, typically navigating back to the collection.
func NewDeleteFlow(api CampaignAPI, campaignID int64, onDeleted func()) *DeleteFlow {
	return &DeleteFlow{api: api, campaignID: campaignID, onDeleted: onDeleted}
}

// Request arms the confirmation step.
func (f *DeleteFlow) Request() {
	f.confirming = true
	f.errMsg = ""
}

// Cancel disarms the confirmation without touching the campaign.
func (f *DeleteFlow) Cancel() {
	f.confirming = false
	f.errMsg = ""
}

// Confirming reports whether the confirmation step is armed.
func (f *DeleteFlow) Confirming() bool {
	return f.confirming
}

// Err returns the message of the last failed delete, or "".
func (f *DeleteFlow) Err() string {
	return f.errMsg
}

// Confirm issues the delete request. It is a no-op unless the flow is
// armed. On success the confirmation resets and onDeleted fires; on
// failure the confirmation stays armed with the error message surfaced.
func (f *DeleteFlow) Confirm(ctx context.Context) error {
	if !f.confirming {
		return nil
	}
	if _, err := f.api.DeleteCampaign(ctx, f.campaignID); err != nil {
		f.errMsg = err.Error()
		return err
	}
	f.confirming = false
	f.errMsg = ""
	if f.onDeleted != nil {
		f.onDeleted()
	}
	return nil
}
