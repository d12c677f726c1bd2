// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "loja/internal/delivery/context"
	"loja/internal/domain/service"
)

// publishRecordEvent emits a record mutation event. Publishing is best effort:
// a failure is logged and never fails the originating request.
func publishRecordEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	fallbackLogger *slog.Logger,
	ownerUID, collection, key, action string,
) {
	event := &service.RecordEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OwnerUID:   ownerUID,
		Collection: collection,
		Key:        key,
		Action:     action,
		OccurredAt: time.Now(),
	}

	if err := publisher.PublishRecordEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, fallbackLogger)
		logger.Warn("failed to publish record event",
			slog.String("collection", collection),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}
