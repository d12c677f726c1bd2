package pubsub

import (
	"context"

	"loja/internal/domain/service"
)

// CollectionInvalidator refreshes in-process mirrors of an owner's
// collections after a record mutation.
type CollectionInvalidator interface {
	InvalidateOwner(ownerUID string)
}

// invalidatingPublisher decorates an EventPublisher so every published record
// event also nudges the local mirrors. The Pub/Sub event still travels to the
// snapshot worker; this keeps the publishing process itself fresh without
// waiting for the next poll.
type invalidatingPublisher struct {
	inner       service.EventPublisher
	invalidator CollectionInvalidator
}

// NewInvalidatingPublisher wraps a publisher with local mirror invalidation.
func NewInvalidatingPublisher(inner service.EventPublisher, invalidator CollectionInvalidator) service.EventPublisher {
	return &invalidatingPublisher{
		inner:       inner,
		invalidator: invalidator,
	}
}

// PublishRecordEvent invalidates the owner's mirrors and forwards the event.
// Invalidation happens even when publishing fails: the local mutation has
// already been written.
func (p *invalidatingPublisher) PublishRecordEvent(ctx context.Context, event *service.RecordEvent) error {
	if event.OwnerUID != "" {
		p.invalidator.InvalidateOwner(event.OwnerUID)
	}

	return p.inner.PublishRecordEvent(ctx, event)
}

func (p *invalidatingPublisher) Close() error {
	return p.inner.Close()
}
