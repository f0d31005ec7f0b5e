package models

import (
	"time"
)

// PushToken is a registered device token. CustomerID is set once the device's
// user logs in, enabling per-customer targeting.
type PushToken struct {
	ID         string  `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID string  `gorm:"column:merchant_id;type:uuid;not null;uniqueIndex:unique_merchant_token,priority:1" json:"merchant_id"`
	CustomerID *string `gorm:"column:customer_id;type:varchar(64);index" json:"customer_id"`
	Token      string  `gorm:"column:token;type:varchar(255);not null;uniqueIndex:unique_merchant_token,priority:2" json:"token"`
	Platform   string  `gorm:"column:platform;type:varchar(32)" json:"platform"`

	LastActiveAt *time.Time `gorm:"column:last_active_at;default:null" json:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (PushToken) TableName() string {
	return "push_token"
}
