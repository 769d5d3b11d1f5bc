package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// BroadcastWorker - структура для обработки очереди и доставки широковещательных вебхуков.
// Доставка fire-and-forget с повторами; это не контактное уведомление,
// поэтому повторная отправка здесь допустима.
type BroadcastWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewBroadcastWorker создает новый BroadcastWorker
func NewBroadcastWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *BroadcastWorker {
	return &BroadcastWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.BroadcastWebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *BroadcastWorker) Start(ctx context.Context) {
	w.logger.Info("Starting broadcast worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping broadcast worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, broadcastQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop broadcast event from Redis")
					time.Sleep(w.cfg.BroadcastWebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event BroadcastEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal broadcast event from Redis")
					continue
				}

				w.processBroadcastEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *BroadcastWorker) processBroadcastEvent(ctx context.Context, event BroadcastEvent, rawPayload string) {
	log := w.logger.WithField("emergency_id", event.EmergencyID).WithField("event_type", event.Type)
	log.Debug("Processing broadcast event...")

	if w.cfg.BroadcastWebhookURL == "" {
		log.Warn("Broadcast webhook URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.BroadcastMaxRetries
	baseDelay := w.cfg.BroadcastBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.BroadcastWebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create broadcast request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если секрет задан
		if w.cfg.BroadcastWebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.BroadcastWebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send broadcast webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Broadcast webhook delivered successfully.")
			return
		}

		log.Warnf("Broadcast delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver broadcast webhook after %d retries.", maxRetries)
}
