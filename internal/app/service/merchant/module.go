package merchant

import "go.uber.org/fx"

// Module exposes the merchant service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
