package billing

import (
	"github.com/lumenshop/beacon/pkg/types"
)

// PlanFeatures is the quota/capability bundle a plan grants.
type PlanFeatures struct {
	MaxPushPerMonth      int
	MaxScheduledPerMonth int
	MaxRecoveriesPerDay  int
	SchedulingEnabled    bool
	CartRecoveryEnabled  bool
	PriorityJobs         bool
}

type PlanConfig struct {
	Name     string
	Amount   int
	Features PlanFeatures
}

// unlimited is the effective no-cap value for enterprise plans.
const unlimited = 999999

var PlanConfigs = map[types.PlanTier]PlanConfig{
	types.PlanTierFree: {
		Name:   "Free",
		Amount: 0,
		Features: PlanFeatures{
			MaxPushPerMonth:      20,
			MaxScheduledPerMonth: 2,
			MaxRecoveriesPerDay:  5,
			SchedulingEnabled:    true,
			CartRecoveryEnabled:  true,
			PriorityJobs:         false,
		},
	},
	types.PlanTierPro: {
		Name:   "Pro",
		Amount: 29,
		Features: PlanFeatures{
			MaxPushPerMonth:      200,
			MaxScheduledPerMonth: 20,
			MaxRecoveriesPerDay:  50,
			SchedulingEnabled:    true,
			CartRecoveryEnabled:  true,
			PriorityJobs:         true,
		},
	},
	types.PlanTierEnterprise: {
		Name:   "Enterprise",
		Amount: 199,
		Features: PlanFeatures{
			MaxPushPerMonth:      unlimited,
			MaxScheduledPerMonth: unlimited,
			MaxRecoveriesPerDay:  unlimited,
			SchedulingEnabled:    true,
			CartRecoveryEnabled:  true,
			PriorityJobs:         true,
		},
	},
}

// planConfigFor resolves a tier to its config, falling back to Free for
// unknown tiers.
func planConfigFor(plan types.PlanTier) PlanConfig {
	if cfg, ok := PlanConfigs[plan]; ok {
		return cfg
	}
	return PlanConfigs[types.PlanTierFree]
}
