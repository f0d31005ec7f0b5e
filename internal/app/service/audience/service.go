package audience

import (
	"context"
	"fmt"
	"time"

	models "github.com/lumenshop/beacon/internal/models"
	types "github.com/lumenshop/beacon/pkg/types"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Service resolves campaign audience selectors into customer IDs using the
// customer-profile and session tables.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Resolve(ctx context.Context, merchantID string, audience types.Audience) ([]string, error) {
	switch audience {
	case types.AudienceCartOwners:
		// Customers with an unexpired session are the best available
		// proxy for "currently has a cart".
		var ids []string
		err := s.db.WithContext(ctx).Model(&models.CustomerSession{}).
			Where("merchant_id = ? AND expires_at > ?", merchantID, time.Now()).
			Pluck("customer_id", &ids).Error
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cart owners: %w", err)
		}
		return lo.Uniq(ids), nil

	case types.AudienceLoggedIn, types.AudienceAll:
		var ids []string
		err := s.db.WithContext(ctx).Model(&models.CustomerProfile{}).
			Where("merchant_id = ?", merchantID).
			Pluck("customer_id", &ids).Error
		if err != nil {
			return nil, fmt.Errorf("failed to resolve customers: %w", err)
		}
		return ids, nil

	default:
		return nil, fmt.Errorf("unknown audience: %s", audience)
	}
}
