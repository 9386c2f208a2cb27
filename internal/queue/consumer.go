package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-seating/internal/config"
	"github.com/iliyamo/event-seating/internal/middleware"
)

// DefaultQueue is the queue carrying CatalogChangedEvent messages.
const DefaultQueue = "catalog.changed"

// Invalidator drops whatever is cached for one event.
type Invalidator interface {
	InvalidateEvent(ctx context.Context, eventID uint64) (int64, error)
}

// CacheInvalidator removes the tagged response cache entries of an event.
type CacheInvalidator struct {
	Redis *redis.Client
	Cache config.CacheConfig
}

// InvalidateEvent implements Invalidator.
func (ci CacheInvalidator) InvalidateEvent(ctx context.Context, eventID uint64) (int64, error) {
	tag := middleware.EventTagName(strconv.FormatUint(eventID, 10))
	return middleware.InvalidateTags(ctx, ci.Redis, ci.Cache, tag)
}

// StartInvalidationConsumer connects to RabbitMQ, declares the queue
// (durable) and invalidates the cache of every event named in a message.
// It reconnects with exponential backoff and returns only when ctx is done.
// Failed messages are rejected without requeue so the loop keeps going.
func StartInvalidationConsumer(ctx context.Context, url, queue string, inv Invalidator) error {
	if queue == "" {
		queue = DefaultQueue
	}
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("invalidation-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, queue, inv)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("invalidation-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, inv Invalidator) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("invalidation-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleMessage(ctx, d.Body, inv); err != nil {
				if errors.Is(err, errBadMessage) {
					log.Printf("invalidation-consumer: rejected message: %v", err)
				} else {
					// entries still expire after their ttl
					log.Printf("invalidation-consumer: handle message failed: %v", err)
				}
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

var errBadMessage = errors.New("bad message")

// handleMessage decodes one delivery and invalidates its event.  Undecodable
// or invalid payloads wrap errBadMessage; invalidation failures do not.
func handleMessage(ctx context.Context, body []byte, inv Invalidator) error {
	var ev CatalogChangedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: unmarshal: %v", errBadMessage, err)
	}
	if err := ev.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errBadMessage, err)
	}
	n, err := inv.InvalidateEvent(ctx, ev.EventID)
	if err != nil {
		return fmt.Errorf("invalidate event %d: %w", ev.EventID, err)
	}
	log.Printf("invalidation-consumer: event_id=%d action=%s dropped=%d", ev.EventID, ev.Action, n)
	return nil
}
