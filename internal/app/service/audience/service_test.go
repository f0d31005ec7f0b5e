package audience

import (
	"context"
	"testing"
	"time"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/internal/testdb"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProfile(t *testing.T, db *gorm.DB, merchantID, customerID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.CustomerProfile{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: merchantID,
		CustomerID: customerID,
	}).Error)
}

func seedSession(t *testing.T, db *gorm.DB, merchantID, customerID string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.CustomerSession{
		ID:          tool.GenerateUUIDV7(),
		MerchantID:  merchantID,
		CustomerID:  customerID,
		AccessToken: "token-" + customerID,
		ExpiresAt:   expiresAt,
	}).Error)
}

func TestResolve_AllReturnsKnownCustomers(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := New(db)

	seedProfile(t, db, "m1", "c1")
	seedProfile(t, db, "m1", "c2")
	seedProfile(t, db, "m2", "c3")

	ids, err := svc.Resolve(ctx, "m1", types.AudienceAll)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"c1", "c2"}, ids)
}

func TestResolve_CartOwnersExcludesExpiredSessions(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := New(db)

	seedSession(t, db, "m1", "active", time.Now().Add(time.Hour))
	seedSession(t, db, "m1", "expired", time.Now().Add(-time.Hour))
	seedSession(t, db, "m2", "other-merchant", time.Now().Add(time.Hour))

	ids, err := svc.Resolve(ctx, "m1", types.AudienceCartOwners)
	require.NoError(t, err)
	require.Equal(t, []string{"active"}, ids)
}

func TestResolve_CartOwnersDeduplicatesSessions(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := New(db)

	// Two devices, one customer.
	seedSession(t, db, "m1", "c1", time.Now().Add(time.Hour))
	seedSession(t, db, "m1", "c1", time.Now().Add(2*time.Hour))

	ids, err := svc.Resolve(ctx, "m1", types.AudienceCartOwners)
	require.NoError(t, err)
	require.Equal(t, []string{"c1"}, ids)
}

func TestResolve_UnknownAudience(t *testing.T) {
	db := testdb.New(t)
	svc := New(db)

	_, err := svc.Resolve(context.Background(), "m1", types.Audience("vip"))
	require.Error(t, err)
}
