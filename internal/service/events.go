package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// publishTimeout caps how long a request waits on the event bus.
var publishTimeout = 2 * time.Second

// publish never fails the caller: the write it describes is already durable.
func publish(ctx context.Context, publisher EventPublisher, key string, eventType string, data interface{}) {
	if publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, key, eventType, data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publish").Str("event_type", eventType).Msg("")
	}
}
