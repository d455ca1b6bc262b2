package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// Publisher appends entry change notifications to a stream in the format
// Consumer reads.
type Publisher struct {
	client *redis.Client
	stream string
}

// NewPublisher creates a new stream publisher.
func NewPublisher(client *redis.Client, stream string) *Publisher {
	return &Publisher{client: client, stream: stream}
}

// Publish appends ev and returns the stream message id.
func (p *Publisher) Publish(ctx context.Context, ev domain.EntryEvent) (string, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("stream.Publish: encode: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{EventField: string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("stream.Publish: %w", err)
	}
	return id, nil
}
