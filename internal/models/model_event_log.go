package models

import (
	"github.com/lumenshop/beacon/pkg/types"
	"time"

	"gorm.io/datatypes"
)

// EventLog is the append-only record of inbound commerce events. Rows are
// never updated or deleted; it is both the audit trail and the sole input to
// rule evaluation.
type EventLog struct {
	ID         string          `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID string          `gorm:"column:merchant_id;type:uuid;not null;index:idx_event_merchant_created,priority:1" json:"merchant_id"`
	Type       types.EventKind `gorm:"column:type;type:varchar(64);not null" json:"type"`
	// CustomerID correlates the event to a storefront customer when known.
	CustomerID *string           `gorm:"column:customer_id;type:varchar(64)" json:"customer_id"`
	Payload    datatypes.JSONMap `gorm:"column:payload;type:jsonb;default:'{}'" json:"payload"`

	CreatedAt time.Time `gorm:"index:idx_event_merchant_created,priority:2,sort:desc" json:"created_at"`
}

func (EventLog) TableName() string {
	return "event_log"
}
