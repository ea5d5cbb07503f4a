package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
	"campaign-tracker/internal/core/port/mocks"
)

func validInput() domain.CampaignInput {
	return domain.CampaignInput{
		Name:      "Spring Sale",
		Status:    domain.StatusDraft,
		Budget:    500,
		StartDate: domain.NewDate(2025, time.March, 1),
		EndDate:   domain.NewDate(2025, time.March, 31),
		Platform:  domain.PlatformEmail,
		Category:  domain.CategorySales,
	}
}

func TestCreateValidatesBeforeRepository(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	svc := NewCampaignUseCase(repo)

	in := validInput()
	in.EndDate = domain.NewDate(2025, time.February, 1)

	_, err := svc.Create(context.Background(), in)

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "end_date")
	// the repository must not have been touched
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePassesValidInput(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	in := validInput()
	stored := domain.Campaign{ID: 7, Name: in.Name}
	repo.On("Create", mock.Anything, in).Return(stored, nil)

	svc := NewCampaignUseCase(repo)
	campaign, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(7), campaign.ID)
	repo.AssertExpectations(t)
}

func TestUpdateValidatesBeforeRepository(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	svc := NewCampaignUseCase(repo)

	in := validInput()
	in.Name = "   "

	_, err := svc.Update(context.Background(), 3, in)

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPassesFilterVerbatim(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	filter := port.ListFilter{Status: "active", SortBy: port.SortByBudget, SortDesc: true}
	repo.On("List", mock.Anything, filter).Return([]domain.Campaign{{ID: 1}}, nil)

	svc := NewCampaignUseCase(repo)
	campaigns, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
	repo.AssertExpectations(t)
}

func TestDeleteDelegates(t *testing.T) {
	repo := &mocks.CampaignRepository{}
	repo.On("Delete", mock.Anything, int64(9)).Return(port.ErrCampaignNotFound)

	svc := NewCampaignUseCase(repo)
	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	repo.AssertExpectations(t)
}
