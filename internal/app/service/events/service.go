package events

import (
	"context"
	"fmt"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/tool"
	types "github.com/lumenshop/beacon/pkg/types"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Evaluator matches a recorded event against automation rules. Implemented by
// the automation service; stubbed in tests.
type Evaluator interface {
	Evaluate(ctx context.Context, merchantID string, kind types.EventKind, payload map[string]any, customerID *string) error
}

// Service is the append-only event recorder. Recording succeeds as long as
// the append does; rule evaluation runs afterwards on the task runner and its
// failures are only logged.
type Service struct {
	db    *gorm.DB
	log   *zap.SugaredLogger
	eval  Evaluator
	tasks *taskRunner
}

func New(db *gorm.DB, log *zap.SugaredLogger, eval Evaluator) *Service {
	return &Service{
		db:    db,
		log:   log,
		eval:  eval,
		tasks: newTaskRunner(4, 64),
	}
}

// Record appends one event and hands evaluation to the task runner. Each call
// evaluates exactly once; deduplicating repeated deliveries of the same
// upstream event is the caller's job.
func (s *Service) Record(ctx context.Context, merchantID string, kind types.EventKind, payload map[string]any, customerID *string) (*models.EventLog, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid event kind: %s", kind)
	}

	event := &models.EventLog{
		ID:         tool.GenerateUUIDV7(),
		MerchantID: merchantID,
		Type:       kind,
		CustomerID: customerID,
		Payload:    datatypes.JSONMap(payload),
	}
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	// Detach from the request's cancellation; keep its log enrichment.
	taskCtx := context.WithoutCancel(ctx)
	s.tasks.Submit(func() {
		if err := s.eval.Evaluate(taskCtx, merchantID, kind, payload, customerID); err != nil {
			logctx.FromCtx(taskCtx, s.log).Errorw("event evaluation failed",
				"merchant_id", merchantID, "event_id", event.ID, "kind", kind, "err", err)
		}
	})

	return event, nil
}

// Close drains the task runner. Called on shutdown so in-flight evaluations
// finish before the DB goes away.
func (s *Service) Close() {
	s.tasks.Shutdown()
}
