package alert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Канал Pub/Sub для онлайн-подписчиков (SSE)
	alertsChannel = "alerts"
	// Очередь доставки вебхуков
	alertQueueKey = "alert_events"
)

// Subscriber определяет контракт подписки на поток оповещений
type Subscriber interface {
	SubscribeAlerts(ctx context.Context) (<-chan AlertEvent, func(), error)
}

// RedisBroadcaster рассылает оповещения через Redis:
// PUBLISH для онлайн-подписчиков и LPUSH в очередь доставки вебхуков
type RedisBroadcaster struct {
	redisClient *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{
		redisClient: client,
	}
}

// PublishAlert публикует событие оповещения
func (b *RedisBroadcaster) PublishAlert(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, alertsChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}

	if err := b.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue alert event: %w", err)
	}
	return nil
}

// SubscribeAlerts подписывает на поток оповещений; cancel освобождает подписку
func (b *RedisBroadcaster) SubscribeAlerts(ctx context.Context) (<-chan AlertEvent, func(), error) {
	pubsub := b.redisClient.Subscribe(ctx, alertsChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to alerts channel: %w", err)
	}

	events := make(chan AlertEvent)
	go func() {
		defer close(events)
		for msg := range pubsub.Channel() {
			var event AlertEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = pubsub.Close() }
	return events, cancel, nil
}
