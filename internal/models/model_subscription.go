package models

import (
	"github.com/lumenshop/beacon/pkg/types"
	"time"
)

// Subscription mirrors the billing provider's app subscription for a merchant.
// Plan limits are derived from it; use Active() before trusting the nominal plan.
type Subscription struct {
	ID         string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MerchantID string `gorm:"column:merchant_id;type:uuid;not null;uniqueIndex" json:"merchant_id"`
	// ProviderSubscriptionID is the billing provider's identifier, e.g.
	// "gid://shopify/AppSubscription/12345".
	ProviderSubscriptionID string                   `gorm:"column:provider_subscription_id;type:varchar(255);not null" json:"provider_subscription_id"`
	Plan                   types.PlanTier           `gorm:"column:plan;type:varchar(32);not null" json:"plan"`
	Status                 types.SubscriptionStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscription"
}

func (s *Subscription) Active() bool {
	return s != nil && s.Status == types.SubscriptionStatusActive
}
