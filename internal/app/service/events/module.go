package events

import (
	"context"

	"github.com/lumenshop/beacon/internal/app/service/automation"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module exposes the event recorder via Fx, wired to the automation engine
// as its evaluator.
var Module = fx.Options(
	fx.Provide(func(db *gorm.DB, log *zap.SugaredLogger, auto *automation.Service) *Service {
		return New(db, log, auto)
	}),
	fx.Invoke(func(lc fx.Lifecycle, s *Service) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				s.Close()
				return nil
			},
		})
	}),
)
