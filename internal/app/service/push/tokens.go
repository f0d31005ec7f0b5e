package push

import (
	"context"
	"errors"
	"fmt"

	models "github.com/lumenshop/beacon/internal/models"
	"github.com/lumenshop/beacon/internal/platform/expo"
	"github.com/lumenshop/beacon/pkg/tool"

	"gorm.io/gorm"
)

// ErrInvalidToken marks a token that is not in Expo push token format.
var ErrInvalidToken = errors.New("invalid expo push token")

// RegisterToken upserts a device token for the merchant. Re-registering the
// same token updates its customer link, which is how an anonymous device
// becomes addressable after login.
func (s *Service) RegisterToken(ctx context.Context, merchantID, token string, customerID *string) (*models.PushToken, error) {
	if !expo.IsPushToken(token) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	var pt models.PushToken
	err := s.db.WithContext(ctx).
		Where("merchant_id = ? AND token = ?", merchantID, token).
		First(&pt).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load push token: %w", err)
	}

	if pt.ID == "" {
		pt = models.PushToken{ID: tool.GenerateUUIDV7(), MerchantID: merchantID, Token: token}
	}
	pt.CustomerID = customerID
	if err := s.db.WithContext(ctx).Save(&pt).Error; err != nil {
		return nil, fmt.Errorf("failed to save push token: %w", err)
	}
	return &pt, nil
}
