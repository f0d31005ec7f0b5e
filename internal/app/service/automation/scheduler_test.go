package automation

import (
	"context"
	"testing"
	"time"

	"github.com/lumenshop/beacon/internal/app/service/billing"
	models "github.com/lumenshop/beacon/internal/models"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/stretchr/testify/require"
)

func TestCreateScheduledCampaign_CreatesJobPerRecipient(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.audience.customers = []string{"c1", "c2", "c3"}

	created, err := env.svc.CreateScheduledCampaign(ctx, &CreateCampaignRequest{
		MerchantID: "m1",
		Title:      "Flash sale",
		Body:       "Everything 20% off until midnight",
		DueAt:      time.Now().Add(2 * time.Hour),
		Audience:   types.AudienceLoggedIn,
	})
	require.NoError(t, err)
	require.Equal(t, 3, created)

	var rule models.AutomationRule
	require.NoError(t, env.db.Where("merchant_id = ? AND type = ?", "m1", types.RuleTypeScheduledPush).First(&rule).Error)
	cfg := rule.CampaignConfig()
	require.NotNil(t, cfg)
	require.Equal(t, "Flash sale", cfg.Title)
	require.Equal(t, types.AudienceLoggedIn, cfg.Audience)

	var jobs []*models.AutomationJob
	require.NoError(t, env.db.Where("rule_id = ?", rule.ID).Find(&jobs).Error)
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		require.Equal(t, types.JobStatusQueued, job.Status)
		require.NotNil(t, job.CustomerID)
	}

	// One usage entry for the whole campaign, not one per recipient.
	var usage int64
	require.NoError(t, env.db.Model(&models.UsageLog{}).
		Where("merchant_id = ? AND feature = ?", "m1", types.FeatureScheduledPush).
		Count(&usage).Error)
	require.EqualValues(t, 1, usage)
}

func TestCreateScheduledCampaign_EmptyAudienceStillCharges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.audience.customers = nil

	created, err := env.svc.CreateScheduledCampaign(ctx, &CreateCampaignRequest{
		MerchantID: "m1",
		Title:      "Hello",
		Body:       "World",
		DueAt:      time.Now().Add(time.Hour),
		Audience:   types.AudienceAll,
	})
	require.NoError(t, err)
	require.Equal(t, 0, created)

	var usage int64
	require.NoError(t, env.db.Model(&models.UsageLog{}).
		Where("merchant_id = ? AND feature = ?", "m1", types.FeatureScheduledPush).
		Count(&usage).Error)
	require.EqualValues(t, 1, usage)
}

func TestCreateScheduledCampaign_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	base := CreateCampaignRequest{
		MerchantID: "m1",
		Title:      "Title",
		Body:       "Body",
		DueAt:      time.Now().Add(time.Hour),
		Audience:   types.AudienceAll,
	}

	missingTitle := base
	missingTitle.Title = ""
	_, err := env.svc.CreateScheduledCampaign(ctx, &missingTitle)
	require.ErrorIs(t, err, ErrValidation)

	missingDue := base
	missingDue.DueAt = time.Time{}
	_, err = env.svc.CreateScheduledCampaign(ctx, &missingDue)
	require.ErrorIs(t, err, ErrValidation)

	badAudience := base
	badAudience.Audience = "everyone"
	_, err = env.svc.CreateScheduledCampaign(ctx, &badAudience)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.CreateScheduledCampaign(ctx, nil)
	require.ErrorIs(t, err, ErrValidation)

	// Nothing persisted and nothing charged by the failed attempts.
	var rules, usage int64
	require.NoError(t, env.db.Model(&models.AutomationRule{}).Count(&rules).Error)
	require.NoError(t, env.db.Model(&models.UsageLog{}).Count(&usage).Error)
	require.EqualValues(t, 0, rules)
	require.EqualValues(t, 0, usage)
}

func TestCreateScheduledCampaign_SchedulingDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.billing.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&models.PlanLimits{}).
		Where("merchant_id = ?", "m1").
		Update("scheduling_enabled", false).Error)

	_, err = env.svc.CreateScheduledCampaign(ctx, &CreateCampaignRequest{
		MerchantID: "m1",
		Title:      "Title",
		Body:       "Body",
		DueAt:      time.Now().Add(time.Hour),
		Audience:   types.AudienceAll,
	})
	require.ErrorIs(t, err, ErrFeatureDisabled)
}

func TestCreateScheduledCampaign_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Free tier allows 2 scheduled pushes per month.
	seedUsageAt(t, env, "m1", types.FeatureScheduledPush, time.Now(), 2)

	_, err := env.svc.CreateScheduledCampaign(ctx, &CreateCampaignRequest{
		MerchantID: "m1",
		Title:      "Title",
		Body:       "Body",
		DueAt:      time.Now().Add(time.Hour),
		Audience:   types.AudienceAll,
	})
	require.ErrorIs(t, err, billing.ErrQuotaExceeded)
}

func TestCancelJob_QueuedBecomesCancelled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	rule := seedRecoveryRule(t, env, "m1")

	job, err := env.svc.CreateJob(ctx, "m1", rule.ID, time.Now().Add(time.Hour), strptr("c1"), nil)
	require.NoError(t, err)

	require.NoError(t, env.svc.CancelJob(ctx, job.ID))
	got := loadJob(t, env, job.ID)
	require.Equal(t, types.JobStatusCancelled, got.Status)
	require.Equal(t, "cancelled", got.Result["reason"])
}

func TestCancelJob_TerminalIsNoOp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	rule := seedRecoveryRule(t, env, "m1")

	job, err := env.svc.CreateJob(ctx, "m1", rule.ID, time.Now(), strptr("c1"), nil)
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&models.AutomationJob{}).
		Where("id = ?", job.ID).
		Update("status", types.JobStatusCompleted).Error)

	require.NoError(t, env.svc.CancelJob(ctx, job.ID))
	require.Equal(t, types.JobStatusCompleted, loadJob(t, env, job.ID).Status)
}

func TestCancelJob_MissingJob(t *testing.T) {
	env := newTestEnv(t)
	err := env.svc.CancelJob(context.Background(), "no-such-job")
	require.ErrorIs(t, err, ErrNotFound)
}
