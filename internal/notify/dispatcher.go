package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// contactPayload - тело контактного уведомления.
// Наружу уходит минимум: контакт и так знает пострадавшего.
type contactPayload struct {
	EmergencyID uuid.UUID `json:"emergency_id"`
	Type        string    `json:"type"`
	VictimName  string    `json:"victim_name"`
	VictimPhone string    `json:"victim_phone"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ContactDispatcher отправляет контактное уведомление синхронно, одной попыткой.
// Повторов нет: движок решений записывает исход, а повторная отправка
// привела бы к дублированию внешних уведомлений.
type ContactDispatcher struct {
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewContactDispatcher создает новый ContactDispatcher
func NewContactDispatcher(logger *logrus.Logger, cfg *config.Config) *ContactDispatcher {
	return &ContactDispatcher{
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.ContactWebhookTimeout,
		},
	}
}

// Notify доставляет уведомление экстренному контакту. Любая ошибка транспорта
// или не-2xx статус считается неудачей доставки.
func (d *ContactDispatcher) Notify(ctx context.Context, emergency *models.Emergency) error {
	log := d.logger.WithField("emergency_id", emergency.ID)

	if d.cfg.ContactWebhookURL == "" {
		log.Warn("Contact webhook URL is not configured.")
		return fmt.Errorf("contact webhook URL is not configured")
	}

	payload, err := json.Marshal(contactPayload{
		EmergencyID: emergency.ID,
		Type:        emergency.Type,
		VictimName:  emergency.VictimName,
		VictimPhone: emergency.VictimPhone,
		Latitude:    emergency.Latitude,
		Longitude:   emergency.Longitude,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal contact notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", d.cfg.ContactWebhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create contact notification request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если секрет задан
	if d.cfg.ContactWebhookSecret != "" {
		signature := generateHMACSHA256(string(payload), d.cfg.ContactWebhookSecret)
		req.Header.Set("X-Webhook-Signature", signature)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("contact notification rejected with status code %d", resp.StatusCode)
	}

	log.Info("Contact notification delivered successfully.")
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
