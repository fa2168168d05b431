package pubsub

import (
	"context"
	"log/slog"

	"houses/internal/domain/service"
	"houses/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// topicPublisher publishes house events to a Google Cloud Pub/Sub topic.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

func topicName(projectID, topicID string) string {
	return "projects/" + projectID + "/topics/" + topicID
}

// NewGooglePubSubPublisher connects to the topic, failing fast when it does not exist
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := topicName(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "house events topic unavailable")
	}

	logger.Info("Publishing house events to Pub/Sub", slog.String("topic", topic))

	return &topicPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishHouseEvent blocks until the server acknowledges the message or ctx ends.
func (p *topicPublisher) PublishHouseEvent(ctx context.Context, event *service.HouseEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish house event "+msg.id)
	}

	p.logger.Debug("House event published",
		slog.String("topic", p.topic),
		slog.String("event_id", msg.id),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
