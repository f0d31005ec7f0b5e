package audience

import (
	"github.com/lumenshop/beacon/internal/app/service/automation"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module exposes the resolver as the automation engine's AudienceResolver.
var Module = fx.Options(
	fx.Provide(func(db *gorm.DB) automation.AudienceResolver {
		return New(db)
	}),
)
