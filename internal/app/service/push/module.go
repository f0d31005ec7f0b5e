package push

import (
	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/internal/platform/expo"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module exposes the push service, and the same instance as the automation
// engine's dispatcher.
var Module = fx.Options(
	fx.Provide(expo.NewClient),
	fx.Provide(func(db *gorm.DB, log *zap.SugaredLogger, client *expo.Client) *Service {
		return New(db, log, client)
	}),
	fx.Provide(func(s *Service) automation.Dispatcher { return s }),
)
