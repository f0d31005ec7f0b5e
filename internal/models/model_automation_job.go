package models

import (
	"github.com/lumenshop/beacon/pkg/types"
	"time"

	"gorm.io/datatypes"
)

// AutomationJob is one unit of deferred work. Lifecycle:
// queued -> running -> completed|failed, plus queued -> cancelled.
// Terminal jobs are never resurrected; re-triggering means a new job.
type AutomationJob struct {
	ID         string `gorm:"column:id;primary_key;type:uuid" json:"id"`
	MerchantID string `gorm:"column:merchant_id;type:uuid;not null;index" json:"merchant_id"`
	// RuleID is a weak reference: the owning rule disappearing does not
	// cascade here, the job just fails at rule lookup during processing.
	RuleID     string  `gorm:"column:rule_id;type:uuid;not null" json:"rule_id"`
	CustomerID *string `gorm:"column:customer_id;type:varchar(64)" json:"customer_id"`
	// CartID is the correlation key matching a recovery job to the order
	// event that should cancel it.
	CartID *string `gorm:"column:cart_id;type:varchar(64)" json:"cart_id"`

	Status types.JobStatus `gorm:"column:status;type:varchar(32);not null;index:idx_job_status_due,priority:1" json:"status"`
	DueAt  time.Time       `gorm:"column:due_at;not null;index:idx_job_status_due,priority:2" json:"due_at"`

	// ExecutedAt records the processing attempt; Result holds the dispatch
	// summary on success or the error message on failure.
	ExecutedAt *time.Time        `gorm:"column:executed_at;default:null" json:"executed_at"`
	Result     datatypes.JSONMap `gorm:"column:result;type:jsonb;default:'{}'" json:"result"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AutomationJob) TableName() string {
	return "automation_job"
}
