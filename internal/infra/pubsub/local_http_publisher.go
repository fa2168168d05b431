package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "houses/internal/delivery/context"
	"houses/internal/domain/service"
	"houses/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/house-events"
	localPushTimeout  = 10 * time.Second
)

// PushMessage mirrors the body Google Pub/Sub sends to push subscriptions
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func newPushMessage(msg *message, publishedAt time.Time) *PushMessage {
	push := &PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = msg.id
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return push
}

// pushPublisher delivers events straight to a push endpoint, standing in for
// a Pub/Sub push subscription during local development.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocalHTTPPublisher creates a publisher that POSTs push envelopes to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *pushPublisher) PublishHouseEvent(ctx context.Context, event *service.HouseEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushMessage(msg, p.now()))
	if err != nil {
		return errors.Wrap(err, "failed to encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push endpoint unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("House event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", msg.id),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
