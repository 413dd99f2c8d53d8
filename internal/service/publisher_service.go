package service

import (
	"context"
	"encoding/json"

	"swimtrack-be/pkg/events"
	pkgNats "swimtrack-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// SeasonEventsTopic is the in-process topic used when NATS is not configured.
const SeasonEventsTopic = "season_events"

const eventTypeMetadata = "event_type"

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type natsPublisherService struct {
	publisher *pkgNats.Publisher
}

// NewNatsPublisherService publishes to JetStream under events.<TYPE>.
func NewNatsPublisherService(publisher *pkgNats.Publisher) IPublisherService {
	return &natsPublisherService{publisher: publisher}
}

func (p *natsPublisherService) Publish(ctx context.Context, event events.Event) error {
	return p.publisher.Publish(ctx, event)
}

type channelPublisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

// NewChannelPublisherService publishes onto an in-process watermill channel.
func NewChannelPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &channelPublisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (p *channelPublisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(eventTypeMetadata, event.EventType())
	msg.SetContext(ctx)

	return p.pubSub.Publish(p.topicName, msg)
}
