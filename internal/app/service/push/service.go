package push

import (
	"context"
	"fmt"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/internal/platform/expo"
	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service delivers notifications through Expo to a merchant's registered
// device tokens. It satisfies the automation engine's Dispatcher interface.
type Service struct {
	db     *gorm.DB
	log    *zap.SugaredLogger
	client *expo.Client
}

func New(db *gorm.DB, log *zap.SugaredLogger, client *expo.Client) *Service {
	return &Service{db: db, log: log, client: client}
}

// SendToCustomer pushes to the devices linked to one customer. Zero linked
// devices is not an error; the summary notes it and nothing is sent.
func (s *Service) SendToCustomer(ctx context.Context, merchantID, customerID string, n automation.Notification) (*automation.DeliverySummary, error) {
	var tokens []*models.PushToken
	err := s.db.WithContext(ctx).
		Where("merchant_id = ? AND customer_id = ?", merchantID, customerID).
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load customer tokens: %w", err)
	}
	if len(tokens) == 0 {
		return &automation.DeliverySummary{Note: "no registered devices for customer"}, nil
	}
	return s.send(ctx, merchantID, tokens, n)
}

// Broadcast pushes to every registered device of the merchant.
func (s *Service) Broadcast(ctx context.Context, merchantID string, n automation.Notification) (*automation.DeliverySummary, error) {
	var tokens []*models.PushToken
	err := s.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Find(&tokens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant tokens: %w", err)
	}
	if len(tokens) == 0 {
		return &automation.DeliverySummary{Note: "no registered devices"}, nil
	}
	return s.send(ctx, merchantID, tokens, n)
}

func (s *Service) send(ctx context.Context, merchantID string, tokens []*models.PushToken, n automation.Notification) (*automation.DeliverySummary, error) {
	log := logctx.FromCtx(ctx, s.log)

	valid := lo.Filter(tokens, func(t *models.PushToken, _ int) bool {
		if !expo.IsPushToken(t.Token) {
			log.Warnw("skipping invalid push token", "merchant_id", merchantID, "token_id", t.ID)
			return false
		}
		return true
	})

	messages := lo.Map(valid, func(t *models.PushToken, _ int) expo.Message {
		return expo.Message{
			To:    t.Token,
			Title: n.Title,
			Body:  n.Body,
			Sound: "default",
			Data:  n.Data,
		}
	})

	summary := &automation.DeliverySummary{Attempted: len(messages)}
	if len(messages) == 0 {
		summary.Note = "no valid push tokens"
		return summary, nil
	}

	var lastErr error
	for _, chunk := range lo.Chunk(messages, expo.MaxBatchSize) {
		tickets, err := s.client.Send(ctx, chunk)
		if err != nil {
			log.Errorw("expo chunk failed", "merchant_id", merchantID, "size", len(chunk), "err", err)
			lastErr = err
			continue
		}
		for _, t := range tickets {
			if t.OK() {
				summary.Delivered++
			}
		}
	}

	// Total failure only: every chunk errored and nothing went out.
	if summary.Delivered == 0 && lastErr != nil {
		return nil, fmt.Errorf("push delivery failed: %w", lastErr)
	}
	return summary, nil
}
