package models

import (
	"github.com/lumenshop/beacon/pkg/types"
	"time"

	"gorm.io/datatypes"
)

// CartRecoveryConfig configures a cart-recovery rule.
type CartRecoveryConfig struct {
	// DelayMinutes between the abandonment event and the recovery push.
	DelayMinutes int    `json:"delay_minutes"`
	Title        string `json:"title"`
	Body         string `json:"body"`
}

// ScheduledPushConfig configures a scheduled campaign rule.
type ScheduledPushConfig struct {
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Audience types.Audience `json:"audience"`
}

// RuleConfig is a tagged variant: exactly the member matching the rule's type
// is set. Adding an automation kind means adding a member here and a case in
// the evaluator and processor dispatch.
type RuleConfig struct {
	CartRecovery  *CartRecoveryConfig  `json:"cart_recovery,omitempty"`
	ScheduledPush *ScheduledPushConfig `json:"scheduled_push,omitempty"`
}

// AutomationRule is a merchant-owned automation definition. Created at
// onboarding (the default cart-recovery rule) or as the ephemeral owner of a
// scheduled campaign; mutated only by status toggles.
type AutomationRule struct {
	ID         string           `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID string           `gorm:"column:merchant_id;type:uuid;not null;index" json:"merchant_id"`
	Type       types.RuleType   `gorm:"column:type;type:varchar(64);not null" json:"type"`
	Status     types.RuleStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`

	Config datatypes.JSONType[*RuleConfig] `gorm:"column:config;type:jsonb;default:'{}'" json:"config"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AutomationRule) TableName() string {
	return "automation_rule"
}

func (r *AutomationRule) RecoveryConfig() *CartRecoveryConfig {
	if r == nil || r.Config.Data() == nil {
		return nil
	}
	return r.Config.Data().CartRecovery
}

func (r *AutomationRule) CampaignConfig() *ScheduledPushConfig {
	if r == nil || r.Config.Data() == nil {
		return nil
	}
	return r.Config.Data().ScheduledPush
}
