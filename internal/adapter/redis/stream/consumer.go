// Package stream consumes entry change notifications from a Redis stream
// through a consumer group.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/chaosjournal-backend/internal/config"
	"github.com/heartmarshall/chaosjournal-backend/internal/domain"
)

// SourceName labels events consumed from Redis.
const SourceName = "redis"

// EventField is the stream entry field holding the JSON-encoded event.
const EventField = "event"

const retryDelay = time.Second

type dispatcher interface {
	Dispatch(ctx context.Context, source string, ev domain.EntryEvent)
}

// Consumer reads a stream as one member of a consumer group. Every message
// is acknowledged once dispatched, malformed ones included.
type Consumer struct {
	client     *redis.Client
	dispatcher dispatcher
	log        *slog.Logger
	stream     string
	group      string
	consumer   string
	block      time.Duration
	count      int64
}

// NewConsumer creates a new stream consumer.
func NewConsumer(client *redis.Client, d dispatcher, logger *slog.Logger, cfg config.RedisConfig, batchSize int) *Consumer {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Consumer{
		client:     client,
		dispatcher: d,
		log:        logger.With("component", "stream_consumer", "stream", cfg.Stream, "group", cfg.Group),
		stream:     cfg.Stream,
		group:      cfg.Group,
		consumer:   cfg.Consumer,
		block:      cfg.Block,
		count:      int64(batchSize),
	}
}

// Run consumes until ctx is cancelled. Messages left pending by an earlier
// run of the same consumer name are handled first.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.ensureGroup(ctx); err != nil {
		return err
	}

	c.log.InfoContext(ctx, "stream consumer started", slog.String("consumer", c.consumer))

	for {
		n, err := c.Poll(ctx, "0")
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("stream.Run: replay pending: %w", err)
		}
		if n == 0 {
			break
		}
	}

	for {
		if _, err := c.Poll(ctx, ">"); err != nil {
			if ctx.Err() != nil {
				break
			}
			c.log.ErrorContext(ctx, "stream read failed", slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	c.log.InfoContext(ctx, "stream consumer stopped")
	return nil
}

func (c *Consumer) ensureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("stream: create group %s: %w", c.group, err)
	}
	return nil
}

// Poll reads one batch starting at id (">" for new messages, "0" for this
// consumer's pending ones), dispatches and acknowledges it. It returns the
// number of messages handled; a block timeout yields zero and no error.
func (c *Consumer) Poll(ctx context.Context, id string) (int, error) {
	block := c.block
	if id != ">" {
		block = -1
	}

	res, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{c.stream, id},
		Count:    c.count,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	handled := 0
	for _, s := range res {
		for _, msg := range s.Messages {
			c.handle(ctx, msg)
			handled++
		}
	}
	return handled, nil
}

func (c *Consumer) handle(ctx context.Context, msg redis.XMessage) {
	ev, err := decode(msg)
	if err != nil {
		c.log.WarnContext(ctx, "malformed stream message acknowledged",
			slog.String("message_id", msg.ID),
			slog.String("error", err.Error()),
		)
	} else {
		if ev.ID == "" {
			ev.ID = msg.ID
		}
		c.dispatcher.Dispatch(ctx, SourceName, ev)
	}

	if err := c.client.XAck(ctx, c.stream, c.group, msg.ID).Err(); err != nil {
		c.log.ErrorContext(ctx, "stream ack failed",
			slog.String("message_id", msg.ID),
			slog.String("error", err.Error()),
		)
	}
}

func decode(msg redis.XMessage) (domain.EntryEvent, error) {
	var ev domain.EntryEvent

	raw, ok := msg.Values[EventField]
	if !ok {
		return ev, fmt.Errorf("missing %q field", EventField)
	}
	s, ok := raw.(string)
	if !ok {
		return ev, fmt.Errorf("field %q has type %T", EventField, raw)
	}
	if err := json.Unmarshal([]byte(s), &ev); err != nil {
		return ev, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}
