package automation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lumenshop/beacon/internal/app/service/billing"
	models "github.com/lumenshop/beacon/internal/models"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/stretchr/testify/require"
)

func countUsage(t *testing.T, env *testEnv, merchantID string, feature types.Feature) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(&models.UsageLog{}).
		Where("merchant_id = ? AND feature = ?", merchantID, feature).
		Count(&n).Error)
	return n
}

func TestSendImmediatePush_BroadcastsToAll(t *testing.T) {
	env := newTestEnv(t)
	env.dispatch.summary = DeliverySummary{Attempted: 7, Delivered: 5}

	summary, err := env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "Flash sale",
		Body:       "Everything 20% off until midnight",
		Audience:   types.AudienceAll,
	})
	require.NoError(t, err)
	require.Equal(t, 7, summary.Attempted)
	require.Equal(t, 5, summary.Delivered)

	calls := env.dispatch.Calls()
	require.Len(t, calls, 1)
	require.True(t, calls[0].Broadcast)
	require.Equal(t, "m1", calls[0].MerchantID)
	require.Equal(t, "Flash sale", calls[0].Notification.Title)

	require.EqualValues(t, 1, countUsage(t, env, "m1", types.FeaturePush))
}

func TestSendImmediatePush_DefaultsAudienceToAll(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "Hello",
		Body:       "World",
	})
	require.NoError(t, err)

	calls := env.dispatch.Calls()
	require.Len(t, calls, 1)
	require.True(t, calls[0].Broadcast)
}

func TestSendImmediatePush_TargetedDeliversPerCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.audience.customers = []string{"c1", "c2", "c3"}

	summary, err := env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "Your cart misses you",
		Body:       "Come back and finish checkout",
		Audience:   types.AudienceCartOwners,
	})
	require.NoError(t, err)
	require.Equal(t, 3, summary.Attempted)
	require.Equal(t, 3, summary.Delivered)

	calls := env.dispatch.Calls()
	require.Len(t, calls, 3)
	for i, c := range calls {
		require.False(t, c.Broadcast)
		require.Equal(t, fmt.Sprintf("c%d", i+1), c.CustomerID)
	}

	// One quota entry for the whole send, not one per customer.
	require.EqualValues(t, 1, countUsage(t, env, "m1", types.FeaturePush))
}

func TestSendImmediatePush_SkipsFailedCustomers(t *testing.T) {
	env := newTestEnv(t)
	env.audience.customers = []string{"c1", "c2"}
	env.dispatch.err = errors.New("device unreachable")

	summary, err := env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "Hi",
		Body:       "There",
		Audience:   types.AudienceLoggedIn,
	})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Attempted)
	require.Equal(t, 0, summary.Delivered)
	require.Len(t, env.dispatch.Calls(), 2)

	// Still charged: the send was attempted.
	require.EqualValues(t, 1, countUsage(t, env, "m1", types.FeaturePush))
}

func TestSendImmediatePush_EmptyAudience(t *testing.T) {
	env := newTestEnv(t)
	env.audience.customers = nil

	summary, err := env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "Hi",
		Body:       "There",
		Audience:   types.AudienceLoggedIn,
	})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Attempted)
	require.Equal(t, "no recipients in audience", summary.Note)
	require.Empty(t, env.dispatch.Calls())
	require.EqualValues(t, 1, countUsage(t, env, "m1", types.FeaturePush))
}

func TestSendImmediatePush_QuotaExceeded(t *testing.T) {
	env := newTestEnv(t)
	// Free plan allows 20 pushes per month.
	seedUsageAt(t, env, "m1", types.FeaturePush, time.Now(), 20)

	_, err := env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "One too many",
		Body:       "Nope",
		Audience:   types.AudienceAll,
	})
	require.ErrorIs(t, err, billing.ErrQuotaExceeded)
	require.Empty(t, env.dispatch.Calls())
	require.EqualValues(t, 20, countUsage(t, env, "m1", types.FeaturePush))
}

func TestSendImmediatePush_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.SendImmediatePush(context.Background(), nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Body:       "missing title",
		Audience:   types.AudienceAll,
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.SendImmediatePush(context.Background(), &SendPushRequest{
		MerchantID: "m1",
		Title:      "bad audience",
		Body:       "x",
		Audience:   types.Audience("everyone"),
	})
	require.ErrorIs(t, err, ErrValidation)

	require.Empty(t, env.dispatch.Calls())
	require.EqualValues(t, 0, countUsage(t, env, "m1", types.FeaturePush))
}
