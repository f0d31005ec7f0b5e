package billing

import (
	"context"
	"errors"
	"fmt"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// SyncPlanLimits overwrites the merchant's PlanLimits row with the resolved
// configuration for plan. There is exactly one row per merchant; the row is
// replaced in place, never versioned.
func (s *Service) SyncPlanLimits(ctx context.Context, merchantID string, plan types.PlanTier) error {
	cfg := planConfigFor(plan)

	var original models.PlanLimits
	err := s.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&original).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load plan limits: %w", err)
	}

	limits := &models.PlanLimits{
		ID:                   original.ID,
		MerchantID:           merchantID,
		Plan:                 plan,
		MaxPushPerMonth:      cfg.Features.MaxPushPerMonth,
		MaxScheduledPerMonth: cfg.Features.MaxScheduledPerMonth,
		MaxRecoveriesPerDay:  cfg.Features.MaxRecoveriesPerDay,
		SchedulingEnabled:    cfg.Features.SchedulingEnabled,
		CartRecoveryEnabled:  cfg.Features.CartRecoveryEnabled,
		PriorityJobs:         cfg.Features.PriorityJobs,
		CreatedAt:            original.CreatedAt,
	}
	if limits.ID == "" {
		limits.ID = tool.GenerateUUIDV7()
	}

	if err := s.db.WithContext(ctx).Save(limits).Error; err != nil {
		return fmt.Errorf("failed to save plan limits: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("plan limits synced", "merchant_id", merchantID, "plan", plan)
	return nil
}

// UpdateSubscription upserts the merchant's subscription record and re-syncs
// plan limits. A non-active subscription resolves to Free limits regardless
// of the nominal plan.
func (s *Service) UpdateSubscription(ctx context.Context, merchantID, providerSubscriptionID string, status types.SubscriptionStatus, plan types.PlanTier) error {
	var original models.Subscription
	err := s.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&original).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load subscription: %w", err)
	}

	sub := &models.Subscription{
		ID:                     original.ID,
		MerchantID:             merchantID,
		ProviderSubscriptionID: providerSubscriptionID,
		Plan:                   plan,
		Status:                 status,
		CreatedAt:              original.CreatedAt,
	}
	if sub.ID == "" {
		sub.ID = tool.GenerateUUIDV7()
	}

	if err := s.db.WithContext(ctx).Save(sub).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	effective := plan
	if status != types.SubscriptionStatusActive {
		effective = types.PlanTierFree
	}
	return s.SyncPlanLimits(ctx, merchantID, effective)
}

// GetPlanLimits loads the merchant's limits, initializing Free-tier defaults
// as a side effect when no row exists yet.
func (s *Service) GetPlanLimits(ctx context.Context, merchantID string) (*models.PlanLimits, error) {
	var limits models.PlanLimits
	err := s.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&limits).Error
	if err == nil {
		return &limits, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load plan limits: %w", err)
	}

	if err := s.SyncPlanLimits(ctx, merchantID, types.PlanTierFree); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&limits).Error; err != nil {
		return nil, fmt.Errorf("failed to reload plan limits: %w", err)
	}
	return &limits, nil
}
