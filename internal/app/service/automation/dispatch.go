package automation

import (
	"context"

	types "github.com/lumenshop/beacon/pkg/types"
)

// Notification is the message handed to the delivery transport.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// DeliverySummary reports what the transport did. Delivered is approximate;
// the transport does not confirm end-device receipt.
type DeliverySummary struct {
	Attempted int    `json:"attempted"`
	Delivered int    `json:"delivered"`
	Note      string `json:"note,omitempty"`
}

// Dispatcher delivers notifications to a merchant's registered devices. It is
// an external collaborator; the engine only consumes this interface.
type Dispatcher interface {
	// SendToCustomer targets the devices linked to one customer.
	SendToCustomer(ctx context.Context, merchantID, customerID string, n Notification) (*DeliverySummary, error)
	// Broadcast targets every registered device of the merchant.
	Broadcast(ctx context.Context, merchantID string, n Notification) (*DeliverySummary, error)
}

// AudienceResolver expands a campaign audience selector into customer IDs.
type AudienceResolver interface {
	Resolve(ctx context.Context, merchantID string, audience types.Audience) ([]string, error)
}
