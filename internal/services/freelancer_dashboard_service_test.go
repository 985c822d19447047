package services

import (
	"context"
	"testing"

	"talentlink/internal/models"
	"talentlink/internal/services/dto"
	"talentlink/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreelancerLoad_NarrowsToOwnData(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	fake.profiles = []models.Profile{{ID: 5, UserName: "fred", IsFreelancer: true}}
	fake.projects = []models.Project{
		{ID: 1, Title: "Site", Owner: 4},
		{ID: 2, Title: "App", Owner: 9},
	}
	fake.proposals = []models.Proposal{
		{ID: 10, Project: 1, Freelancer: 5, Status: models.ProposalStatusPending},
		{ID: 11, Project: 2, Freelancer: 6, Status: models.ProposalStatusPending},
	}
	fake.contracts = []models.Contract{
		{ID: 20, Freelancer: 5, ClientName: "cara"},
		{ID: 21, FreelancerName: "FRED", ClientName: "cara"},
		{ID: 22, Freelancer: 6, FreelancerName: "gus", ClientName: "cara"},
	}
	fake.reviews = []models.Review{
		{ID: 30, RevieweeName: "fred", Rating: 5},
		{ID: 31, RevieweeName: "gus", Rating: 2},
	}

	svc := NewFreelancerDashboardService(client, testValidator())
	dash, err := svc.Load(context.Background(), freelancerSession(5, "fred"))
	require.NoError(t, err)
	assert.Empty(t, dash.Failed)

	assert.Len(t, dash.Projects, 2, "freelancers browse every project")

	require.Len(t, dash.Proposals, 1)
	assert.Equal(t, 10, dash.Proposals[0].ID)

	require.Len(t, dash.Contracts, 2, "matched by id or by name fallback")

	require.Len(t, dash.Reviews, 1)
	assert.Equal(t, 30, dash.Reviews[0].ID)
}

func TestFilterProjects_BudgetIsLessOrEqual(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	fake.projects = []models.Project{
		{ID: 1, Title: "Cheap", Budget: "1000"},
		{ID: 2, Title: "Pricey", Budget: "3000"},
		{ID: 3, Title: "Odd", Budget: "negotiable"},
	}

	svc := NewFreelancerDashboardService(client, testValidator())
	sess := freelancerSession(5, "fred")
	_, err := svc.Load(context.Background(), sess)
	require.NoError(t, err)

	results := svc.FilterProjects(sess, &dto.ProjectFilter{MaxBudget: "1500"})
	require.Len(t, results, 2)
	assert.Equal(t, "Cheap", results[0].Title)
	assert.Equal(t, "Odd", results[1].Title, "unparsable budget counts as 0 and passes")
}

func TestFilterProjects_SkillAndDurationSubstrings(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	fake.projects = []models.Project{
		{ID: 1, Title: "Backend", Duration: "3 Weeks", SkillsRequired: []models.Skill{{Name: "Golang"}}},
		{ID: 2, Title: "Frontend", Duration: "2 months", SkillsRequired: []models.Skill{{Name: "React"}}},
	}

	svc := NewFreelancerDashboardService(client, testValidator())
	sess := freelancerSession(5, "fred")
	_, err := svc.Load(context.Background(), sess)
	require.NoError(t, err)

	bySkill := svc.FilterProjects(sess, &dto.ProjectFilter{Skill: "go"})
	require.Len(t, bySkill, 1)
	assert.Equal(t, "Backend", bySkill[0].Title)

	byDuration := svc.FilterProjects(sess, &dto.ProjectFilter{Duration: "week"})
	require.Len(t, byDuration, 1)
	assert.Equal(t, "Backend", byDuration[0].Title)

	none := svc.FilterProjects(sess, &dto.ProjectFilter{Skill: "react", Duration: "week"})
	assert.Empty(t, none, "criteria combine conjunctively")
}

func TestResetFilter_RestoresFullList(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	fake.projects = []models.Project{
		{ID: 1, Title: "A", Budget: "100"},
		{ID: 2, Title: "B", Budget: "200"},
	}

	svc := NewFreelancerDashboardService(client, testValidator())
	sess := freelancerSession(5, "fred")
	_, err := svc.Load(context.Background(), sess)
	require.NoError(t, err)

	filtered := svc.FilterProjects(sess, &dto.ProjectFilter{MaxBudget: "150"})
	require.Len(t, filtered, 1)

	restored := svc.ResetFilter(sess)
	assert.Len(t, restored, 2)
}

func TestSubmitProposal_UsesSessionIdentity(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	fake.projects = []models.Project{{ID: 7, Title: "Build a site", Owner: 4}}

	svc := NewFreelancerDashboardService(client, testValidator())
	sess := freelancerSession(5, "fred")

	proposal, err := svc.SubmitProposal(context.Background(), sess, &dto.ProposalDraft{
		Project:     7,
		Description: "I can do this",
		Price:       "1500",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, proposal.Freelancer, "freelancer id comes from the session, not the caller")
	assert.Equal(t, 7, proposal.Project)
	assert.Equal(t, "1500", proposal.Price)
	assert.Equal(t, models.ProposalStatusPending, proposal.Status)
	assert.Len(t, fake.proposals, 1)
}

func TestSubmitProposal_RequiresDescriptionAndPrice(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	svc := NewFreelancerDashboardService(client, testValidator())

	_, err := svc.SubmitProposal(context.Background(), freelancerSession(5, "fred"), &dto.ProposalDraft{
		Project:     7,
		Description: "no price attached",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Empty(t, fake.proposals)
}

func TestFreelancerUpdateProfile_AppliesDefaults(t *testing.T) {
	t.Parallel()

	fake, client := newFakeMarketplace(t)
	fake.profiles = []models.Profile{{
		ID: 5, UserName: "fred", IsFreelancer: true,
		Skills: []models.Skill{{ID: 1, Name: "go"}},
	}}

	svc := NewFreelancerDashboardService(client, testValidator())
	sess := freelancerSession(5, "fred")

	fresh, err := svc.UpdateProfile(context.Background(), sess, &dto.ProfileDraft{
		Bio: strPtr("Experienced backend dev"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Experienced backend dev", fresh.Bio)
	assert.Equal(t, "500", fresh.HourlyRate)
	assert.Equal(t, models.AvailabilityAvailable, fresh.Availability)
	assert.True(t, fresh.IsFreelancer)
	assert.False(t, fresh.IsClient)

	require.Len(t, fresh.Skills, 1, "existing skills are re-sent, not dropped")
	assert.Equal(t, "go", fresh.Skills[0].Name)
}

func TestFreelancerUpdateProfile_RejectsUnknownAvailability(t *testing.T) {
	t.Parallel()

	_, client := newFakeMarketplace(t)
	svc := NewFreelancerDashboardService(client, testValidator())

	_, err := svc.UpdateProfile(context.Background(), freelancerSession(5, "fred"), &dto.ProfileDraft{
		Availability: strPtr("weekends-only"),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
