package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	broadcastQueueKey = "assignment_events"
)

// BroadcastEvent - структура для данных широковещательного вебхука о переходе владения
type BroadcastEvent struct {
	EmergencyID  uuid.UUID `json:"emergency_id"`
	Type         string    `json:"type"`
	EmergencyFor string    `json:"emergency_for"`
	Description  string    `json:"description"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// BroadcastPublisher - интерфейс для публикации событий назначения
type BroadcastPublisher interface {
	Publish(ctx context.Context, event BroadcastEvent) error
}

// RedisBroadcastPublisher - реализация BroadcastPublisher, использующая Redis
type RedisBroadcastPublisher struct {
	redisClient *redis.Client
}

// NewRedisBroadcastPublisher создает новый RedisBroadcastPublisher
func NewRedisBroadcastPublisher(client *redis.Client) *RedisBroadcastPublisher {
	return &RedisBroadcastPublisher{
		redisClient: client,
	}
}

// Publish публикует событие назначения в очередь Redis
func (p *RedisBroadcastPublisher) Publish(ctx context.Context, event BroadcastEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, broadcastQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish broadcast event to Redis: %w", err)
	}
	return nil
}
