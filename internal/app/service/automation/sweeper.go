package automation

import (
	"context"
	"time"

	cfgpkg "github.com/lumenshop/beacon/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// runSweeper drives periodic sweeps while the process is up. The interval
// comes from config; operators can also trigger sweeps on demand through the
// admin endpoint, and multiple instances may sweep concurrently.
func runSweeper(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, svc *Service) {
	interval := cfg.Automation.SweepInterval
	if interval <= 0 {
		log.Infow("job sweeper disabled")
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("job sweeper started", "interval", interval)
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if _, err := svc.ProcessDueJobs(context.Background()); err != nil {
							log.Errorw("sweep failed", "err", err)
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			log.Infow("job sweeper stopped")
			return nil
		},
	})
}
