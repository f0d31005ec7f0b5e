package models

import (
	"time"
)

// CustomerProfile is a storefront customer known to the merchant's app.
type CustomerProfile struct {
	ID         string `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID string `gorm:"column:merchant_id;type:uuid;not null;uniqueIndex:unique_merchant_customer,priority:1" json:"merchant_id"`
	CustomerID string `gorm:"column:customer_id;type:varchar(64);not null;uniqueIndex:unique_merchant_customer,priority:2" json:"customer_id"`
	Email      string `gorm:"column:email;type:varchar(255)" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerProfile) TableName() string {
	return "customer_profile"
}

// CustomerSession is a storefront login session. Audience resolution treats a
// customer with an unexpired session as a likely cart owner.
type CustomerSession struct {
	ID          string    `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID  string    `gorm:"column:merchant_id;type:uuid;not null;index" json:"merchant_id"`
	CustomerID  string    `gorm:"column:customer_id;type:varchar(64);not null" json:"customer_id"`
	AccessToken string    `gorm:"column:access_token;type:varchar(255);not null" json:"-"`
	ExpiresAt   time.Time `gorm:"column:expires_at;not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerSession) TableName() string {
	return "customer_session"
}

func (s *CustomerSession) Expired(now time.Time) bool {
	return s == nil || !s.ExpiresAt.After(now)
}
