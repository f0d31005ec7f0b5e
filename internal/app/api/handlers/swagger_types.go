package handlers

import (
	"time"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/pkg/response"
	types "github.com/lumenshop/beacon/pkg/types"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespRecordEvent wraps RecordEventResponse in the standard envelope.
type RespRecordEvent struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    RecordEventResponse      `json:"data"`
}

// RespCreateCampaign wraps CreateCampaignResponse in the standard envelope.
type RespCreateCampaign struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    CreateCampaignResponse   `json:"data"`
}

// RespSendPush wraps the immediate-push delivery summary in the standard envelope.
type RespSendPush struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    automation.DeliverySummary `json:"data"`
}

// RespProcessJobs wraps ProcessJobsResponse in the standard envelope.
type RespProcessJobs struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    ProcessJobsResponse      `json:"data"`
}

// RespScanJobs wraps the paginated job listing in the standard envelope.
type RespScanJobs struct {
	Code    response.APIResponseCode    `json:"code"`
	Message string                      `json:"message"`
	Data    automation.ScanJobsResponse `json:"data"`
}

// RespListRules wraps a list of rules in the standard envelope.
type RespListRules struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []SwaggerRule            `json:"data"`
}

// RespMerchant wraps a merchant record in the standard envelope.
type RespMerchant struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    SwaggerMerchant          `json:"data"`
}

// SwaggerRule is a simplified view of models.AutomationRule for documentation purposes.
type SwaggerRule struct {
	ID         string           `json:"id"`
	MerchantID string           `json:"merchant_id"`
	Type       types.RuleType   `json:"type"`
	Status     types.RuleStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// SwaggerMerchant is a simplified view of models.Merchant for documentation purposes.
type SwaggerMerchant struct {
	ID        string    `json:"id"`
	Shop      string    `json:"shop"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
