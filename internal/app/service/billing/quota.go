package billing

import (
	"context"
	"fmt"
	"time"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"
)

// windowStart returns the beginning of the quota window containing now.
// Push and scheduled push count since the 1st of the calendar month; cart
// recovery counts since local midnight.
func windowStart(feature types.Feature, now time.Time) time.Time {
	switch feature {
	case types.FeatureCartRecovery:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// CheckLimit fails with ErrQuotaExceeded when the usage count inside the
// feature's current window has reached the merchant's limit. The check and a
// later RecordUsage are deliberately not atomic; concurrent callers may both
// pass and overshoot by a small bounded amount.
func (s *Service) CheckLimit(ctx context.Context, merchantID string, feature types.Feature) error {
	limits, err := s.GetPlanLimits(ctx, merchantID)
	if err != nil {
		return err
	}

	limit := limits.LimitFor(feature)
	since := windowStart(feature, time.Now())

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.UsageLog{}).
		Where("merchant_id = ? AND feature = ? AND created_at >= ?", merchantID, feature, since).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count usage: %w", err)
	}

	if count >= int64(limit) {
		return fmt.Errorf("%w: %s used %d of %d", ErrQuotaExceeded, feature, count, limit)
	}
	return nil
}

// RecordUsage appends one usage row unconditionally. Callers run CheckLimit
// first when the action is gated.
func (s *Service) RecordUsage(ctx context.Context, merchantID string, feature types.Feature) error {
	entry := &models.UsageLog{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: merchantID,
		Feature:    feature,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}
