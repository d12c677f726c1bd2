// Package handler contains the Pub/Sub push handler of the mirror worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"loja/config"
	deliverycontext "loja/internal/delivery/context"
	"loja/internal/domain/constants"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes record mutation events and rebuilds the materialized
// collection snapshots read by the dashboard.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	storeRepo      repository.StoreRepository
	productRepo    repository.ProductRepository
	skuRepo        repository.SKURepository
	saleRepo       repository.SaleRepository
	snapshots      repository.SnapshotStore
	cfg            *config.Config
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	SKURepo     repository.SKURepository
	SaleRepo    repository.SaleRepository
	Snapshots   repository.SnapshotStore
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth only applies to real Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		storeRepo:      params.StoreRepo,
		productRepo:    params.ProductRepo,
		skuRepo:        params.SKURepo,
		saleRepo:       params.SaleRepo,
		snapshots:      params.Snapshots,
		cfg:            params.Config,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse record event
	var event service.RecordEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse record event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing record event",
		slog.String("owner_uid", event.OwnerUID),
		slog.String("collection", event.Collection),
		slog.String("action", event.Action),
	)

	if err := h.refreshSnapshot(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to refresh snapshot",
			slog.String("collection", event.Collection),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Snapshot refreshed",
		slog.String("owner_uid", event.OwnerUID),
		slog.String("collection", event.Collection),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RecordEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// refreshSnapshot reloads the mutated collection and rewrites its snapshot.
// Report log collections are acknowledged without snapshot work; the
// dashboard never reads them.
func (h *PushHandler) refreshSnapshot(ctx context.Context, event *service.RecordEvent) error {
	if event.OwnerUID == "" {
		return errors.New("record event carries no owner uid")
	}

	var (
		payload []byte
		err     error
	)

	switch event.Collection {
	case constants.CollectionStores:
		payload, err = marshalCollection(h.storeRepo.ListStores(ctx, event.OwnerUID))
	case constants.CollectionProducts:
		payload, err = marshalCollection(h.productRepo.ListProducts(ctx, event.OwnerUID))
	case constants.CollectionSKUs:
		payload, err = marshalCollection(h.skuRepo.ListSKUs(ctx, event.OwnerUID))
	case constants.CollectionSales:
		payload, err = marshalCollection(h.saleRepo.ListSales(ctx, event.OwnerUID))
	case constants.CollectionStockReports, constants.CollectionSalesReports:
		h.logger.Debug("[Worker] Skipping log-only collection",
			slog.String("collection", event.Collection),
		)

		return nil
	default:
		return errors.Errorf("unknown collection: %s", event.Collection)
	}

	if err != nil {
		return newRetryableError(err)
	}

	var ttl time.Duration
	if h.cfg.Dashboard != nil {
		ttl = h.cfg.Dashboard.SnapshotTTL
	}
	if err := h.snapshots.SaveSnapshot(ctx, event.OwnerUID, event.Collection, payload, ttl); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// marshalCollection serializes a freshly loaded collection for caching.
func marshalCollection[T any](records []T, loadErr error) ([]byte, error) {
	if loadErr != nil {
		return nil, errors.WithStack(loadErr)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal collection snapshot")
	}

	return payload, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
