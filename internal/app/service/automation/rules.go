package automation

import (
	"context"
	"errors"
	"fmt"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Legacy default copy for the onboarding cart-recovery rule.
const (
	defaultRecoveryDelayMinutes = 30
	defaultRecoveryTitle        = "You forgot something! 🛒"
	defaultRecoveryBody         = "Your cart is waiting. Complete your purchase now!"
)

// CreateDefaultRules seeds the cart-recovery rule for a new merchant. It is
// idempotent; an existing cart-recovery rule is left alone.
func (s *Service) CreateDefaultRules(ctx context.Context, merchantID string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AutomationRule{}).
		Where("merchant_id = ? AND type = ?", merchantID, types.RuleTypeCartRecovery).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	rule := &models.AutomationRule{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: merchantID,
		Type:       types.RuleTypeCartRecovery,
		Status:     types.RuleStatusActive,
		Config: datatypes.NewJSONType(&models.RuleConfig{
			CartRecovery: &models.CartRecoveryConfig{
				DelayMinutes: defaultRecoveryDelayMinutes,
				Title:        defaultRecoveryTitle,
				Body:         defaultRecoveryBody,
			},
		}),
	}
	if err := s.db.WithContext(ctx).Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create default rule: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("default automation rules created", "merchant_id", merchantID)
	return nil
}

func (s *Service) ListRules(ctx context.Context, merchantID string) ([]*models.AutomationRule, error) {
	var rules []*models.AutomationRule
	if err := s.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at asc").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// SetRuleStatus flips a rule between active and paused. Rules are mutated
// only through this toggle.
func (s *Service) SetRuleStatus(ctx context.Context, merchantID, ruleID string, status types.RuleStatus) error {
	var rule models.AutomationRule
	err := s.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", ruleID, merchantID).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: rule %s", ErrNotFound, ruleID)
		}
		return fmt.Errorf("failed to load rule: %w", err)
	}

	if rule.Status == status {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(&rule).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update rule status: %w", err)
	}
	return nil
}

func (s *Service) getRule(ctx context.Context, merchantID, ruleID string) (*models.AutomationRule, error) {
	var rule models.AutomationRule
	err := s.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", ruleID, merchantID).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rule %s", ErrNotFound, ruleID)
		}
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	return &rule, nil
}
