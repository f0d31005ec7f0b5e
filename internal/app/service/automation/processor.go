package automation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	types "github.com/lumenshop/beacon/pkg/types"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

const (
	// batchSize bounds how many due jobs one sweep picks up.
	batchSize = 50
	// maxConcurrentDispatch bounds in-flight transport calls per sweep so a
	// slow dispatcher delays jobs, not the whole process.
	maxConcurrentDispatch = 8
)

// ProcessDueJobs runs one sweep: select due queued jobs with priority-lane
// merchants first, claim each with a conditional update, execute, and record
// the terminal state on the job itself. Per-job failures never surface here;
// the return value is only the number of jobs this sweep claimed.
//
// Sweeps may run concurrently across instances. The queued -> running
// transition is the claim; a sweep that loses that race skips the job.
func (s *Service) ProcessDueJobs(ctx context.Context) (int, error) {
	log := logctx.FromCtx(ctx, s.log)
	now := time.Now()

	// Single selection ordered by (priority class, due time). Merchants
	// without a plan_limits row sort with the standard lane.
	var jobs []*models.AutomationJob
	err := s.db.WithContext(ctx).Model(&models.AutomationJob{}).
		Select("automation_job.*").
		Joins("LEFT JOIN plan_limits ON plan_limits.merchant_id = automation_job.merchant_id").
		Where("automation_job.status = ? AND automation_job.due_at <= ?", types.JobStatusQueued, now).
		Order("CASE WHEN COALESCE(plan_limits.priority_jobs, FALSE) THEN 0 ELSE 1 END").
		Order("automation_job.due_at ASC").
		Limit(batchSize).
		Find(&jobs).Error
	if err != nil {
		return 0, fmt.Errorf("failed to select due jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	var processed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDispatch)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			claimed, err := s.claimJob(gctx, job, now)
			if err != nil {
				log.Errorw("job claim failed", "job_id", job.ID, "err", err)
				return nil
			}
			if !claimed {
				// Another sweep got there first.
				return nil
			}
			processed.Add(1)
			s.runJob(gctx, job)
			return nil
		})
	}
	_ = g.Wait()

	count := int(processed.Load())
	log.Infow("sweep finished", "selected", len(jobs), "processed", count)
	return count, nil
}

// claimJob performs the conditional queued -> running transition and stamps
// the execution attempt.
func (s *Service) claimJob(ctx context.Context, job *models.AutomationJob, now time.Time) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.AutomationJob{}).
		Where("id = ? AND status = ?", job.ID, types.JobStatusQueued).
		Updates(map[string]any{
			"status":      types.JobStatusRunning,
			"executed_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// runJob executes one claimed job and records its terminal state. All errors
// end in failed with the message stored; there is no retry.
func (s *Service) runJob(ctx context.Context, job *models.AutomationJob) {
	log := logctx.FromCtx(ctx, s.log)

	summary, err := s.dispatchJob(ctx, job)
	if err != nil {
		log.Warnw("job failed", "job_id", job.ID, "merchant_id", job.MerchantID, "err", err)
		s.finishJob(ctx, job.ID, types.JobStatusFailed, datatypes.JSONMap{"error": err.Error()})
		return
	}

	result := datatypes.JSONMap{
		"attempted": summary.Attempted,
		"delivered": summary.Delivered,
	}
	if summary.Note != "" {
		result["note"] = summary.Note
	}
	s.finishJob(ctx, job.ID, types.JobStatusCompleted, result)
}

// dispatchJob routes a job through the dispatch table for its rule type.
func (s *Service) dispatchJob(ctx context.Context, job *models.AutomationJob) (*DeliverySummary, error) {
	rule, err := s.getRule(ctx, job.MerchantID, job.RuleID)
	if err != nil {
		// Weak reference: the rule may have been deleted since the job
		// was queued. The job fails with the lookup error recorded.
		return nil, err
	}

	switch rule.Type {
	case types.RuleTypeCartRecovery:
		return s.executeCartRecovery(ctx, job, rule)
	case types.RuleTypeScheduledPush:
		return s.executeScheduledPush(ctx, job, rule)
	default:
		return nil, fmt.Errorf("unknown rule type: %s", rule.Type)
	}
}

// executeCartRecovery re-checks the daily recovery quota at execution time
// (fail closed, no retry) and charges one recovery usage entry on success.
func (s *Service) executeCartRecovery(ctx context.Context, job *models.AutomationJob, rule *models.AutomationRule) (*DeliverySummary, error) {
	if err := s.billing.CheckLimit(ctx, job.MerchantID, types.FeatureCartRecovery); err != nil {
		return nil, err
	}
	if job.CustomerID == nil || *job.CustomerID == "" {
		return nil, errors.New("recovery job has no customer")
	}

	title := defaultRecoveryTitle
	body := defaultRecoveryBody
	if cfg := rule.RecoveryConfig(); cfg != nil {
		if cfg.Title != "" {
			title = cfg.Title
		}
		if cfg.Body != "" {
			body = cfg.Body
		}
	}

	n := Notification{Title: title, Body: body}
	if job.CartID != nil && *job.CartID != "" {
		n.Data = map[string]string{"cart_id": *job.CartID}
	}

	summary, err := s.dispatcher.SendToCustomer(ctx, job.MerchantID, *job.CustomerID, n)
	if err != nil {
		return nil, err
	}

	if err := s.billing.RecordUsage(ctx, job.MerchantID, types.FeatureCartRecovery); err != nil {
		return nil, err
	}
	return summary, nil
}

// executeScheduledPush delivers a campaign job. The campaign was charged at
// creation; no quota check here.
func (s *Service) executeScheduledPush(ctx context.Context, job *models.AutomationJob, rule *models.AutomationRule) (*DeliverySummary, error) {
	cfg := rule.CampaignConfig()
	if cfg == nil {
		return nil, errors.New("campaign rule has no config")
	}

	n := Notification{Title: cfg.Title, Body: cfg.Body}
	if job.CustomerID != nil && *job.CustomerID != "" {
		return s.dispatcher.SendToCustomer(ctx, job.MerchantID, *job.CustomerID, n)
	}
	return s.dispatcher.Broadcast(ctx, job.MerchantID, n)
}

func (s *Service) finishJob(ctx context.Context, jobID string, status types.JobStatus, result datatypes.JSONMap) {
	err := s.db.WithContext(ctx).Model(&models.AutomationJob{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status": status,
			"result": result,
		}).Error
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("failed to record job result", "job_id", jobID, "status", status, "err", err)
	}
}
