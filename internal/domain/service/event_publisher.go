package service

import (
	"context"
	"time"
)

// RecordEvent describes a mutation applied to one of the owner's record
// collections. Events are consumed by the mirror worker to refresh the
// materialized snapshots.
type RecordEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OwnerUID   string    `json:"owner_uid"`
	Collection string    `json:"collection"`
	Key        string    `json:"key,omitempty"` // Record push key; empty for bulk refreshes
	Action     string    `json:"action"`        // created, updated or deleted
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecordEvent publishes a record mutation for async processing
	PublishRecordEvent(ctx context.Context, event *RecordEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
