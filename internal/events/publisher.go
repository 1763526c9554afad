package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Publisher emits account events onto a Redis stream.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish appends the event to the topic stream, keyed by the account id so
// consumers can partition by account. Delivery is best-effort: the caller
// observes the error but a failed publish never undoes the write it follows.
func (p *Publisher) Publish(ctx context.Context, topic string, key int64, event AccountEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: topic,
		Values: map[string]any{
			"key":   strconv.FormatInt(key, 10),
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
