package billing

import (
	"context"
	"testing"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/internal/testdb"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testdb.New(t), zap.NewNop().Sugar())
}

func TestGetPlanLimits_SelfHealsFreeDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	limits, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, types.PlanTierFree, limits.Plan)
	require.Equal(t, 20, limits.MaxPushPerMonth)
	require.Equal(t, 2, limits.MaxScheduledPerMonth)
	require.Equal(t, 5, limits.MaxRecoveriesPerDay)
	require.True(t, limits.SchedulingEnabled)
	require.True(t, limits.CartRecoveryEnabled)
	require.False(t, limits.PriorityJobs)

	// Second call returns the same row instead of creating another.
	again, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, limits.ID, again.ID)

	var count int64
	require.NoError(t, svc.db.Model(&models.PlanLimits{}).Where("merchant_id = ?", "m1").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSyncPlanLimits_OverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.SyncPlanLimits(ctx, "m1", types.PlanTierFree))
	before, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)

	require.NoError(t, svc.SyncPlanLimits(ctx, "m1", types.PlanTierPro))
	after, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)

	require.Equal(t, before.ID, after.ID)
	require.Equal(t, types.PlanTierPro, after.Plan)
	require.Equal(t, 200, after.MaxPushPerMonth)
	require.Equal(t, 20, after.MaxScheduledPerMonth)
	require.Equal(t, 50, after.MaxRecoveriesPerDay)
	require.True(t, after.PriorityJobs)
}

func TestSyncPlanLimits_UnknownTierFallsBackToFree(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.SyncPlanLimits(ctx, "m1", types.PlanTier("platinum")))
	limits, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, 20, limits.MaxPushPerMonth)
	require.False(t, limits.PriorityJobs)
}

func TestUpdateSubscription_ActiveAppliesPlan(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.UpdateSubscription(ctx, "m1", "sub-1", types.SubscriptionStatusActive, types.PlanTierPro))

	var sub models.Subscription
	require.NoError(t, svc.db.Where("merchant_id = ?", "m1").First(&sub).Error)
	require.Equal(t, "sub-1", sub.ProviderSubscriptionID)
	require.Equal(t, types.PlanTierPro, sub.Plan)

	limits, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, types.PlanTierPro, limits.Plan)
}

func TestUpdateSubscription_NonActiveDowngradesToFree(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.UpdateSubscription(ctx, "m1", "sub-1", types.SubscriptionStatusActive, types.PlanTierPro))
	require.NoError(t, svc.UpdateSubscription(ctx, "m1", "sub-1", types.SubscriptionStatusCancelled, types.PlanTierPro))

	limits, err := svc.GetPlanLimits(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, types.PlanTierFree, limits.Plan)
	require.Equal(t, 20, limits.MaxPushPerMonth)
	require.False(t, limits.PriorityJobs)

	// The subscription record keeps the nominal plan; only limits downgrade.
	var sub models.Subscription
	require.NoError(t, svc.db.Where("merchant_id = ?", "m1").First(&sub).Error)
	require.Equal(t, types.PlanTierPro, sub.Plan)
	require.Equal(t, types.SubscriptionStatusCancelled, sub.Status)
}
