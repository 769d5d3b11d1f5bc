package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDispatcher создает ContactDispatcher, направленный на тестовый сервер
func newTestDispatcher(serverURL, secret string) *ContactDispatcher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ContactWebhookURL:     serverURL,
		ContactWebhookSecret:  secret,
		ContactWebhookTimeout: 5 * time.Second,
	}
	return NewContactDispatcher(logger, cfg)
}

func testEmergency() *models.Emergency {
	return &models.Emergency{
		ID:          uuid.New(),
		Type:        "MEDICAL",
		Latitude:    55.75,
		Longitude:   37.61,
		VictimName:  "Иван Петров",
		VictimPhone: "+79001234567",
		Status:      models.StatusDefaultedSelf,
	}
}

func TestContactDispatcher_Notify_Success(t *testing.T) {
	// Подготовка
	var received contactPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := newTestDispatcher(server.URL, "")
	emergency := testEmergency()

	// Действие
	err := dispatcher.Notify(context.Background(), emergency)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, emergency.ID, received.EmergencyID)
	assert.Equal(t, emergency.VictimPhone, received.VictimPhone)
}

func TestContactDispatcher_Notify_ServerErrorIsFailure(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher := newTestDispatcher(server.URL, "")

	// Действие
	err := dispatcher.Notify(context.Background(), testEmergency())

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 500")
}

func TestContactDispatcher_Notify_SingleAttemptNoRetry(t *testing.T) {
	// Подготовка
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dispatcher := newTestDispatcher(server.URL, "")

	// Действие
	err := dispatcher.Notify(context.Background(), testEmergency())

	// Проверки: ровно одна попытка, без повторов
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestContactDispatcher_Notify_SignsPayloadWhenSecretSet(t *testing.T) {
	// Подготовка
	const secret = "test-secret"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// Подпись должна совпадать с HMAC-SHA256 от тела
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		assert.Equal(t, expected, r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := newTestDispatcher(server.URL, secret)

	// Действие
	err := dispatcher.Notify(context.Background(), testEmergency())

	// Проверки
	require.NoError(t, err)
}

func TestContactDispatcher_Notify_MissingURL(t *testing.T) {
	// Подготовка
	dispatcher := newTestDispatcher("", "")

	// Действие
	err := dispatcher.Notify(context.Background(), testEmergency())

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
