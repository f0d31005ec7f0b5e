package automation

import (
	"context"
	"fmt"
	"time"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	types "github.com/lumenshop/beacon/pkg/types"

	"gorm.io/datatypes"
)

// Evaluate matches one recorded event against the merchant's active rules and
// schedules or cancels jobs accordingly. Failures of individual rules are
// logged and skipped; callers treat the whole evaluation as best-effort and
// must invoke it at most once per recorded event.
func (s *Service) Evaluate(ctx context.Context, merchantID string, kind types.EventKind, payload map[string]any, customerID *string) error {
	log := logctx.FromCtx(ctx, s.log)

	var rules []*models.AutomationRule
	if err := s.db.WithContext(ctx).
		Where("merchant_id = ? AND status = ?", merchantID, types.RuleStatusActive).
		Order("created_at asc").
		Find(&rules).Error; err != nil {
		return fmt.Errorf("failed to load active rules: %w", err)
	}

	for _, rule := range rules {
		if rule.Type == types.RuleTypeCartRecovery && kind == types.EventCartAbandoned {
			if err := s.triggerCartRecovery(ctx, merchantID, rule, payload, customerID); err != nil {
				log.Errorw("cart recovery trigger failed", "merchant_id", merchantID, "rule_id", rule.ID, "err", err)
			}
		}
	}

	// Order completion cancels pending recoveries. This is keyed on the
	// event, not on any rule, so it runs once per event.
	if kind == types.EventOrderCreated {
		cancelled, err := s.cancelCartRecoveryJobs(ctx, merchantID, customerID, payloadCartID(payload))
		if err != nil {
			log.Errorw("cart recovery cancellation failed", "merchant_id", merchantID, "err", err)
		} else if cancelled > 0 {
			log.Infow("cart recovery jobs cancelled", "merchant_id", merchantID, "count", cancelled)
		}
	}

	return nil
}

func payloadCartID(payload map[string]any) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload["cart_id"].(string); ok {
		return v
	}
	return ""
}

// triggerCartRecovery schedules one recovery job for an abandoned cart.
// Anonymous carts are not recoverable; the merchant's cart-recovery flag must
// be on.
func (s *Service) triggerCartRecovery(ctx context.Context, merchantID string, rule *models.AutomationRule, payload map[string]any, customerID *string) error {
	log := logctx.FromCtx(ctx, s.log)

	limits, err := s.billing.GetPlanLimits(ctx, merchantID)
	if err != nil {
		return err
	}
	if !limits.CartRecoveryEnabled {
		log.Infow("cart recovery disabled", "merchant_id", merchantID)
		return nil
	}

	if customerID == nil || *customerID == "" {
		log.Infow("cart recovery skipped, anonymous cart", "merchant_id", merchantID)
		return nil
	}

	delay := defaultRecoveryDelayMinutes
	if cfg := rule.RecoveryConfig(); cfg != nil && cfg.DelayMinutes > 0 {
		delay = cfg.DelayMinutes
	}
	dueAt := time.Now().Add(time.Duration(delay) * time.Minute)

	var cartID *string
	if id := payloadCartID(payload); id != "" {
		cartID = &id
	}

	job, err := s.CreateJob(ctx, merchantID, rule.ID, dueAt, customerID, cartID)
	if err != nil {
		return err
	}
	log.Infow("cart recovery scheduled", "merchant_id", merchantID, "job_id", job.ID, "due_at", dueAt)
	return nil
}

// cancelCartRecoveryJobs moves queued recovery jobs matching the customer
// and/or cart correlation key to cancelled. When both keys are present both
// must match; jobs of other merchants or customers are untouched.
func (s *Service) cancelCartRecoveryJobs(ctx context.Context, merchantID string, customerID *string, cartID string) (int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.AutomationJob{}).
		Where("merchant_id = ? AND status = ?", merchantID, types.JobStatusQueued).
		Where("rule_id IN (?)", s.db.Model(&models.AutomationRule{}).
			Select("id").
			Where("merchant_id = ? AND type = ?", merchantID, types.RuleTypeCartRecovery))

	if customerID != nil && *customerID != "" {
		tx = tx.Where("customer_id = ?", *customerID)
	}
	if cartID != "" {
		tx = tx.Where("cart_id = ?", cartID)
	}

	res := tx.Updates(map[string]any{
		"status": types.JobStatusCancelled,
		"result": datatypes.JSONMap{"reason": "order completed"},
	})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to cancel recovery jobs: %w", res.Error)
	}
	return res.RowsAffected, nil
}
