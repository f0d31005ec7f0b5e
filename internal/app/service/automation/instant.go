package automation

import (
	"context"
	"fmt"

	"github.com/lumenshop/beacon/pkg/logctx"
	types "github.com/lumenshop/beacon/pkg/types"
)

type SendPushRequest struct {
	MerchantID string         `json:"merchant_id"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Audience   types.Audience `json:"audience"`
}

// SendImmediatePush delivers a one-off push to the audience right now,
// bypassing the job queue. The merchant's monthly push quota is checked up
// front and charged exactly once per send, regardless of audience size.
// "all" broadcasts to every registered device; the targeted audiences resolve
// to customers and deliver per customer, skipping individual failures.
func (s *Service) SendImmediatePush(ctx context.Context, req *SendPushRequest) (*DeliverySummary, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrValidation)
	}
	if req.Title == "" || req.Body == "" {
		return nil, fmt.Errorf("%w: title and body are required", ErrValidation)
	}
	if req.Audience == "" {
		req.Audience = types.AudienceAll
	}
	if !req.Audience.Valid() {
		return nil, fmt.Errorf("%w: unknown audience %q", ErrValidation, req.Audience)
	}

	if err := s.billing.CheckLimit(ctx, req.MerchantID, types.FeaturePush); err != nil {
		return nil, err
	}

	log := logctx.FromCtx(ctx, s.log)
	n := Notification{Title: req.Title, Body: req.Body}

	var summary *DeliverySummary
	if req.Audience == types.AudienceAll {
		sum, err := s.dispatcher.Broadcast(ctx, req.MerchantID, n)
		if err != nil {
			return nil, err
		}
		summary = sum
	} else {
		customers, err := s.audience.Resolve(ctx, req.MerchantID, req.Audience)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve audience: %w", err)
		}

		summary = &DeliverySummary{}
		for _, customerID := range customers {
			sum, err := s.dispatcher.SendToCustomer(ctx, req.MerchantID, customerID, n)
			if err != nil {
				log.Warnw("immediate push to customer failed",
					"merchant_id", req.MerchantID, "customer_id", customerID, "err", err)
				continue
			}
			summary.Attempted += sum.Attempted
			summary.Delivered += sum.Delivered
		}
		if len(customers) == 0 {
			summary.Note = "no recipients in audience"
		}
	}

	if err := s.billing.RecordUsage(ctx, req.MerchantID, types.FeaturePush); err != nil {
		return nil, err
	}

	log.Infow("immediate push sent",
		"merchant_id", req.MerchantID,
		"audience", req.Audience,
		"attempted", summary.Attempted,
		"delivered", summary.Delivered,
	)
	return summary, nil
}
