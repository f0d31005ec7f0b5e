package app

import (
	"time"

	"github.com/lumenshop/beacon/internal/app/api/server"
	"github.com/lumenshop/beacon/internal/app/service/audience"
	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/internal/app/service/billing"
	"github.com/lumenshop/beacon/internal/app/service/events"
	"github.com/lumenshop/beacon/internal/app/service/merchant"
	"github.com/lumenshop/beacon/internal/app/service/push"
	"github.com/lumenshop/beacon/internal/platform/db"
	"github.com/lumenshop/beacon/pkg/config"
	"github.com/lumenshop/beacon/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	billing.Module,
	audience.Module,
	push.Module,
	automation.Module,
	events.Module,
	merchant.Module,
)
