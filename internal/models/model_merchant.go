package models

import (
	"time"
)

// Merchant is a tenant. Every other row in the schema hangs off a merchant ID.
type Merchant struct {
	ID   string `gorm:"column:id;primary_key;type:uuid" json:"id"`
	Shop string `gorm:"column:shop;type:varchar(255);not null;uniqueIndex" json:"shop"`
	Name string `gorm:"column:name;type:varchar(255)" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Merchant) TableName() string {
	return "merchant"
}
