package automation

import "go.uber.org/fx"

// Module exposes the automation engine via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
	fx.Invoke(runSweeper),
)
