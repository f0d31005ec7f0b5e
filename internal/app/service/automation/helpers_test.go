package automation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lumenshop/beacon/internal/app/service/billing"
	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/internal/testdb"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type dispatchCall struct {
	MerchantID   string
	CustomerID   string
	Broadcast    bool
	Notification Notification
}

// stubDispatcher records calls and returns a canned summary or error. Safe
// for concurrent use; the processor dispatches in parallel.
type stubDispatcher struct {
	mu      sync.Mutex
	calls   []dispatchCall
	err     error
	summary DeliverySummary
}

func (d *stubDispatcher) SendToCustomer(_ context.Context, merchantID, customerID string, n Notification) (*DeliverySummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dispatchCall{MerchantID: merchantID, CustomerID: customerID, Notification: n})
	if d.err != nil {
		return nil, d.err
	}
	s := d.summary
	return &s, nil
}

func (d *stubDispatcher) Broadcast(_ context.Context, merchantID string, n Notification) (*DeliverySummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dispatchCall{MerchantID: merchantID, Broadcast: true, Notification: n})
	if d.err != nil {
		return nil, d.err
	}
	s := d.summary
	return &s, nil
}

func (d *stubDispatcher) Calls() []dispatchCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]dispatchCall, len(d.calls))
	copy(out, d.calls)
	return out
}

type stubAudience struct {
	customers []string
	err       error
}

func (a *stubAudience) Resolve(_ context.Context, _ string, _ types.Audience) ([]string, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.customers, nil
}

type testEnv struct {
	svc      *Service
	db       *gorm.DB
	billing  *billing.Service
	dispatch *stubDispatcher
	audience *stubAudience
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.New(t)
	log := zap.NewNop().Sugar()
	bill := billing.NewService(db, log)
	dispatch := &stubDispatcher{summary: DeliverySummary{Attempted: 1, Delivered: 1}}
	aud := &stubAudience{}
	return &testEnv{
		svc:      NewService(db, log, bill, aud, dispatch),
		db:       db,
		billing:  bill,
		dispatch: dispatch,
		audience: aud,
	}
}

// seedRecoveryRule creates the merchant's default cart-recovery rule and
// returns it.
func seedRecoveryRule(t *testing.T, env *testEnv, merchantID string) *models.AutomationRule {
	t.Helper()
	require.NoError(t, env.svc.CreateDefaultRules(context.Background(), merchantID))
	var rule models.AutomationRule
	require.NoError(t, env.db.Where("merchant_id = ? AND type = ?", merchantID, types.RuleTypeCartRecovery).First(&rule).Error)
	return &rule
}

func seedUsageAt(t *testing.T, env *testEnv, merchantID string, feature types.Feature, at time.Time, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, env.db.Create(&models.UsageLog{
			ID:         tool.GenerateUUIDV7(),
			MerchantID: merchantID,
			Feature:    feature,
			CreatedAt:  at,
		}).Error)
	}
}

func loadJob(t *testing.T, env *testEnv, jobID string) *models.AutomationJob {
	t.Helper()
	var job models.AutomationJob
	require.NoError(t, env.db.Where("id = ?", jobID).First(&job).Error)
	return &job
}

func strptr(s string) *string { return &s }

// jobDue spreads job due times one minute apart for ordering assertions.
func jobDue(i int) time.Time {
	return time.Now().Add(time.Duration(i+1) * time.Minute)
}
