package automation

import (
	"context"
	"errors"
	"fmt"
	"time"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateJob inserts one queued job owned by rule, due at dueAt. No quota
// check happens here; rule-triggered jobs are charged at execution time.
func (s *Service) CreateJob(ctx context.Context, merchantID, ruleID string, dueAt time.Time, customerID, cartID *string) (*models.AutomationJob, error) {
	job := &models.AutomationJob{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: merchantID,
		RuleID:     ruleID,
		CustomerID: customerID,
		CartID:     cartID,
		Status:     types.JobStatusQueued,
		DueAt:      dueAt,
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// CancelJob moves a queued job to cancelled. Cancelling a job that is already
// terminal is a silent no-op; only a missing job is an error.
func (s *Service) CancelJob(ctx context.Context, jobID string) error {
	var job models.AutomationJob
	err := s.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job.Status.Terminal() {
		return nil
	}

	// Conditional update: a concurrent sweep may have claimed the job in
	// the meantime, in which case this does nothing.
	res := s.db.WithContext(ctx).Model(&models.AutomationJob{}).
		Where("id = ? AND status = ?", jobID, types.JobStatusQueued).
		Updates(map[string]any{
			"status": types.JobStatusCancelled,
			"result": datatypes.JSONMap{"reason": "cancelled"},
		})
	if res.Error != nil {
		return fmt.Errorf("failed to cancel job: %w", res.Error)
	}
	return nil
}

type CreateCampaignRequest struct {
	MerchantID string         `json:"merchant_id"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	DueAt      time.Time      `json:"scheduled_for"`
	Audience   types.Audience `json:"audience"`
}

// CreateScheduledCampaign creates an ephemeral scheduled-push rule and one
// job per resolved audience member, all due at the same time. The campaign
// consumes exactly one scheduled-push usage entry, not one per recipient.
// Returns the number of jobs created.
func (s *Service) CreateScheduledCampaign(ctx context.Context, req *CreateCampaignRequest) (int, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: nil request", ErrValidation)
	}
	if req.Title == "" || req.Body == "" {
		return 0, fmt.Errorf("%w: title and body are required", ErrValidation)
	}
	if req.DueAt.IsZero() {
		return 0, fmt.Errorf("%w: scheduled_for is required", ErrValidation)
	}
	if !req.Audience.Valid() {
		return 0, fmt.Errorf("%w: unknown audience %q", ErrValidation, req.Audience)
	}

	limits, err := s.billing.GetPlanLimits(ctx, req.MerchantID)
	if err != nil {
		return 0, err
	}
	if !limits.SchedulingEnabled {
		return 0, fmt.Errorf("%w: scheduled campaigns", ErrFeatureDisabled)
	}

	if err := s.billing.CheckLimit(ctx, req.MerchantID, types.FeatureScheduledPush); err != nil {
		return 0, err
	}

	rule := &models.AutomationRule{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: req.MerchantID,
		Type:       types.RuleTypeScheduledPush,
		Status:     types.RuleStatusActive,
		Config: datatypes.NewJSONType(&models.RuleConfig{
			ScheduledPush: &models.ScheduledPushConfig{
				Title:    req.Title,
				Body:     req.Body,
				Audience: req.Audience,
			},
		}),
	}
	if err := s.db.WithContext(ctx).Create(rule).Error; err != nil {
		return 0, fmt.Errorf("failed to create campaign rule: %w", err)
	}

	customers, err := s.audience.Resolve(ctx, req.MerchantID, req.Audience)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve audience: %w", err)
	}

	jobs := lo.Map(customers, func(customerID string, _ int) *models.AutomationJob {
		id := customerID
		return &models.AutomationJob{
			ID:         tool.GenerateUUIDV7(),
			MerchantID: req.MerchantID,
			RuleID:     rule.ID,
			CustomerID: &id,
			Status:     types.JobStatusQueued,
			DueAt:      req.DueAt,
		}
	})
	if len(jobs) > 0 {
		if err := s.db.WithContext(ctx).CreateInBatches(jobs, 200).Error; err != nil {
			return 0, fmt.Errorf("failed to create campaign jobs: %w", err)
		}
	}

	if err := s.billing.RecordUsage(ctx, req.MerchantID, types.FeatureScheduledPush); err != nil {
		return 0, err
	}

	logctx.FromCtx(ctx, s.log).Infow("campaign scheduled",
		"merchant_id", req.MerchantID,
		"rule_id", rule.ID,
		"audience", req.Audience,
		"jobs", len(jobs),
		"due_at", req.DueAt,
	)
	return len(jobs), nil
}
