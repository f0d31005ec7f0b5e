package models

import (
	"github.com/lumenshop/beacon/pkg/types"
	"time"
)

// UsageLog records one quota-consuming action. Rows are immutable; limits are
// enforced by counting rows inside the feature's window, never by a stored
// running counter.
type UsageLog struct {
	ID         string        `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID string        `gorm:"column:merchant_id;type:uuid;not null;index:idx_usage_merchant_feature_created,priority:1" json:"merchant_id"`
	Feature    types.Feature `gorm:"column:feature;type:varchar(64);not null;index:idx_usage_merchant_feature_created,priority:2" json:"feature"`

	CreatedAt time.Time `gorm:"index:idx_usage_merchant_feature_created,priority:3" json:"created_at"`
}

func (UsageLog) TableName() string {
	return "usage_log"
}
