package types

type PlanTier string

const (
	PlanTierFree       PlanTier = "free"
	PlanTierPro        PlanTier = "pro"
	PlanTierEnterprise PlanTier = "enterprise"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusFrozen    SubscriptionStatus = "frozen"
)

// Feature is a quota-metered capability. Push and scheduled push are counted
// per calendar month, cart recovery per calendar day.
type Feature string

const (
	FeaturePush          Feature = "push"
	FeatureScheduledPush Feature = "scheduled_push"
	FeatureCartRecovery  Feature = "cart_recovery"
)
