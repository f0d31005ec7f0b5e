package merchant

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/internal/app/service/billing"
	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/tool"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrMerchantNotFound marks an unknown shop domain or merchant ID.
var ErrMerchantNotFound = errors.New("merchant not found")

type Service struct {
	db      *gorm.DB
	log     *zap.SugaredLogger
	auto    *automation.Service
	billing *billing.Service
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, auto *automation.Service, bill *billing.Service) *Service {
	return &Service{db: db, log: log, auto: auto, billing: bill}
}

// Setup upserts the merchant for a shop and seeds its default automation rule
// and Free-tier limits. Safe to call repeatedly; onboarding runs it on every
// install callback.
func (s *Service) Setup(ctx context.Context, shop, name string) (*models.Merchant, error) {
	if shop == "" {
		return nil, fmt.Errorf("shop is required")
	}

	var m models.Merchant
	err := s.db.WithContext(ctx).Where("shop = ?", shop).First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load merchant: %w", err)
	}

	if m.ID == "" {
		m = models.Merchant{ID: tool.GenerateUUIDV7(), Shop: shop}
	}
	if name != "" {
		m.Name = name
	}
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to save merchant: %w", err)
	}

	if err := s.auto.CreateDefaultRules(ctx, m.ID); err != nil {
		return nil, err
	}
	if _, err := s.billing.GetPlanLimits(ctx, m.ID); err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("merchant setup complete", "merchant_id", m.ID, "shop", shop)
	return &m, nil
}

// GetByShop resolves a shop domain to its merchant.
func (s *Service) GetByShop(ctx context.Context, shop string) (*models.Merchant, error) {
	var m models.Merchant
	err := s.db.WithContext(ctx).Where("shop = ?", shop).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: shop %s", ErrMerchantNotFound, shop)
		}
		return nil, fmt.Errorf("failed to load merchant: %w", err)
	}
	return &m, nil
}

// Get loads a merchant by ID.
func (s *Service) Get(ctx context.Context, merchantID string) (*models.Merchant, error) {
	var m models.Merchant
	err := s.db.WithContext(ctx).Where("id = ?", merchantID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMerchantNotFound, merchantID)
		}
		return nil, fmt.Errorf("failed to load merchant: %w", err)
	}
	return &m, nil
}
