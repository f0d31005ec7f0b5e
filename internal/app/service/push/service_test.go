package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/internal/platform/expo"
	"github.com/lumenshop/beacon/internal/testdb"
	cfgpkg "github.com/lumenshop/beacon/pkg/config"
	"github.com/lumenshop/beacon/pkg/tool"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// expoStub records message batches and answers every message with an ok
// ticket.
type expoStub struct {
	mu      sync.Mutex
	batches [][]expo.Message
	status  int
}

func (e *expoStub) handler(w http.ResponseWriter, r *http.Request) {
	var msgs []expo.Message
	_ = json.NewDecoder(r.Body).Decode(&msgs)

	e.mu.Lock()
	e.batches = append(e.batches, msgs)
	e.mu.Unlock()

	if e.status != 0 {
		http.Error(w, "nope", e.status)
		return
	}
	tickets := make([]map[string]string, len(msgs))
	for i := range msgs {
		tickets[i] = map[string]string{"status": "ok", "id": "t"}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"data": tickets})
}

func (e *expoStub) Batches() [][]expo.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([][]expo.Message, len(e.batches))
	copy(out, e.batches)
	return out
}

func newTestPush(t *testing.T) (*Service, *gorm.DB, *expoStub) {
	t.Helper()
	stub := &expoStub{}
	srv := httptest.NewServer(http.HandlerFunc(stub.handler))
	t.Cleanup(srv.Close)

	cfg := &cfgpkg.Config{}
	cfg.Expo.APIURL = srv.URL

	db := testdb.New(t)
	return New(db, zap.NewNop().Sugar(), expo.NewClient(cfg)), db, stub
}

func seedToken(t *testing.T, db *gorm.DB, merchantID, token string, customerID *string) {
	t.Helper()
	require.NoError(t, db.Create(&models.PushToken{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: merchantID,
		CustomerID: customerID,
		Token:      token,
	}).Error)
}

func TestSendToCustomer_DeliversToLinkedDevices(t *testing.T) {
	ctx := context.Background()
	svc, db, stub := newTestPush(t)

	cid := "c1"
	seedToken(t, db, "m1", "ExponentPushToken[dev1]", &cid)
	seedToken(t, db, "m1", "ExponentPushToken[dev2]", &cid)
	other := "c2"
	seedToken(t, db, "m1", "ExponentPushToken[dev3]", &other)

	summary, err := svc.SendToCustomer(ctx, "m1", "c1", automation.Notification{
		Title: "Hi", Body: "There", Data: map[string]string{"cart_id": "cart-1"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Attempted)
	require.Equal(t, 2, summary.Delivered)

	batches := stub.Batches()
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 2)
	require.Equal(t, "Hi", batches[0][0].Title)
	require.Equal(t, "default", batches[0][0].Sound)
	require.Equal(t, "cart-1", batches[0][0].Data["cart_id"])
}

func TestSendToCustomer_NoDevicesIsNotAnError(t *testing.T) {
	ctx := context.Background()
	svc, _, stub := newTestPush(t)

	summary, err := svc.SendToCustomer(ctx, "m1", "c1", automation.Notification{Title: "Hi"})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Attempted)
	require.NotEmpty(t, summary.Note)
	require.Empty(t, stub.Batches())
}

func TestBroadcast_SkipsMalformedTokens(t *testing.T) {
	ctx := context.Background()
	svc, db, stub := newTestPush(t)

	seedToken(t, db, "m1", "ExponentPushToken[good]", nil)
	seedToken(t, db, "m1", "not-an-expo-token", nil)
	seedToken(t, db, "m2", "ExponentPushToken[other]", nil)

	summary, err := svc.Broadcast(ctx, "m1", automation.Notification{Title: "Sale"})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Attempted)
	require.Equal(t, 1, summary.Delivered)

	batches := stub.Batches()
	require.Len(t, batches, 1)
	require.Equal(t, "ExponentPushToken[good]", batches[0][0].To)
}

func TestBroadcast_TotalTransportFailure(t *testing.T) {
	ctx := context.Background()
	svc, db, stub := newTestPush(t)
	stub.status = http.StatusInternalServerError

	seedToken(t, db, "m1", "ExponentPushToken[dev1]", nil)

	_, err := svc.Broadcast(ctx, "m1", automation.Notification{Title: "Sale"})
	require.Error(t, err)
}

func TestRegisterToken_UpsertsAndLinksCustomer(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newTestPush(t)

	pt, err := svc.RegisterToken(ctx, "m1", "ExponentPushToken[dev1]", nil)
	require.NoError(t, err)
	require.Nil(t, pt.CustomerID)

	// Login on the same device links the customer instead of duplicating.
	cid := "c1"
	again, err := svc.RegisterToken(ctx, "m1", "ExponentPushToken[dev1]", &cid)
	require.NoError(t, err)
	require.Equal(t, pt.ID, again.ID)
	require.Equal(t, "c1", *again.CustomerID)

	var count int64
	require.NoError(t, db.Model(&models.PushToken{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRegisterToken_RejectsMalformedToken(t *testing.T) {
	svc, _, _ := newTestPush(t)
	_, err := svc.RegisterToken(context.Background(), "m1", "fcm-style-token", nil)
	require.ErrorIs(t, err, ErrInvalidToken)
}
