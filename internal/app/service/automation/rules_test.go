package automation

import (
	"context"
	"testing"

	models "github.com/lumenshop/beacon/internal/models"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/stretchr/testify/require"
)

func TestCreateDefaultRules_Idempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.svc.CreateDefaultRules(ctx, "m1"))
	require.NoError(t, env.svc.CreateDefaultRules(ctx, "m1"))

	var count int64
	require.NoError(t, env.db.Model(&models.AutomationRule{}).
		Where("merchant_id = ?", "m1").
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateDefaultRules_SeedsRecoveryConfig(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.svc.CreateDefaultRules(ctx, "m1"))

	rules, err := env.svc.ListRules(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, rules, 1)

	rule := rules[0]
	require.Equal(t, types.RuleTypeCartRecovery, rule.Type)
	require.Equal(t, types.RuleStatusActive, rule.Status)

	cfg := rule.RecoveryConfig()
	require.NotNil(t, cfg)
	require.Equal(t, 30, cfg.DelayMinutes)
	require.NotEmpty(t, cfg.Title)
	require.NotEmpty(t, cfg.Body)
}

func TestSetRuleStatus_TogglesAndScopesByMerchant(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	rule := seedRecoveryRule(t, env, "m1")

	require.NoError(t, env.svc.SetRuleStatus(ctx, "m1", rule.ID, types.RuleStatusPaused))
	rules, err := env.svc.ListRules(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, types.RuleStatusPaused, rules[0].Status)

	// Same status again is a no-op, not an error.
	require.NoError(t, env.svc.SetRuleStatus(ctx, "m1", rule.ID, types.RuleStatusPaused))

	// Another merchant cannot touch the rule.
	err = env.svc.SetRuleStatus(ctx, "m2", rule.ID, types.RuleStatusActive)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestScanJobs_FiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	rule := seedRecoveryRule(t, env, "m1")

	for i := 0; i < 5; i++ {
		_, err := env.svc.CreateJob(ctx, "m1", rule.ID, jobDue(i), strptr("c1"), nil)
		require.NoError(t, err)
	}

	res, err := env.svc.ScanJobs(ctx, &ScanJobsRequest{
		Filters: []*types.CommonFilter{
			{Field: "merchant_id", Operator: types.CommonFilterOperatorEq, Values: []any{"m1"}},
			{Field: "status", Operator: types.CommonFilterOperatorEq, Values: []any{string(types.JobStatusQueued)}},
		},
		From:      0,
		Size:      3,
		SortBy:    "due_at",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, res.Total)
	require.Len(t, res.Items, 3)
	require.True(t, res.Items[0].DueAt.Before(res.Items[1].DueAt))
}
