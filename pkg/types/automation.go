package types

// EventKind enumerates the commerce events the automation engine reacts to.
type EventKind string

const (
	EventCartAbandoned  EventKind = "cart_abandoned"
	EventCartUpdated    EventKind = "cart_updated"
	EventOrderCreated   EventKind = "order_created"
	EventOrderFulfilled EventKind = "order_fulfilled"
	EventPushRequested  EventKind = "push_requested"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventCartAbandoned, EventCartUpdated, EventOrderCreated, EventOrderFulfilled, EventPushRequested:
		return true
	}
	return false
}

type RuleType string

const (
	RuleTypeCartRecovery  RuleType = "cart_recovery"
	RuleTypeScheduledPush RuleType = "scheduled_push"
)

type RuleStatus string

const (
	RuleStatusActive RuleStatus = "active"
	RuleStatusPaused RuleStatus = "paused"
)

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether the job can never be selected by the processor
// again. Everything except queued is terminal: running jobs belong to the
// sweep that claimed them.
func (s JobStatus) Terminal() bool {
	return s != JobStatusQueued
}

// Audience selects campaign recipients.
type Audience string

const (
	AudienceAll        Audience = "all"
	AudienceLoggedIn   Audience = "logged_in"
	AudienceCartOwners Audience = "cart_owners"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceLoggedIn, AudienceCartOwners:
		return true
	}
	return false
}
