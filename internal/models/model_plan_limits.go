package models

import (
	"github.com/lumenshop/beacon/pkg/types"
	"time"
)

// PlanLimits is the resolved quota configuration for a merchant. Exactly one
// row per merchant; it is overwritten on plan change, never versioned.
type PlanLimits struct {
	ID         string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MerchantID string         `gorm:"column:merchant_id;type:uuid;not null;uniqueIndex" json:"merchant_id"`
	Plan       types.PlanTier `gorm:"column:plan;type:varchar(32);not null" json:"plan"`

	MaxPushPerMonth      int `gorm:"column:max_push_per_month;not null" json:"max_push_per_month"`
	MaxScheduledPerMonth int `gorm:"column:max_scheduled_per_month;not null" json:"max_scheduled_per_month"`
	MaxRecoveriesPerDay  int `gorm:"column:max_recoveries_per_day;not null" json:"max_recoveries_per_day"`

	SchedulingEnabled   bool `gorm:"column:scheduling_enabled;not null" json:"scheduling_enabled"`
	CartRecoveryEnabled bool `gorm:"column:cart_recovery_enabled;not null" json:"cart_recovery_enabled"`
	// PriorityJobs marks the merchant's due jobs for the priority lane.
	PriorityJobs bool `gorm:"column:priority_jobs;not null" json:"priority_jobs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PlanLimits) TableName() string {
	return "plan_limits"
}

// LimitFor returns the numeric ceiling for a metered feature.
func (l *PlanLimits) LimitFor(feature types.Feature) int {
	switch feature {
	case types.FeaturePush:
		return l.MaxPushPerMonth
	case types.FeatureScheduledPush:
		return l.MaxScheduledPerMonth
	case types.FeatureCartRecovery:
		return l.MaxRecoveriesPerDay
	}
	return 0
}
