package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/shenikar/emergency_dispatch_system/pkg/metrics"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSweeper — вспомогательная функция: обходчик с мокированным движком решений.
func newTestSweeper(t *testing.T) (*Sweeper, *mocks.MockEmergencyRepository, *mocks.MockEmergencyService) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEmergencyRepository(ctrl)
	engineMock := mocks.NewMockEmergencyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DecisionWindow: 30 * time.Second,
		SweepInterval:  10 * time.Second,
	}

	sweeper := NewSweeper(repoMock, engineMock, logger, cfg, metrics.New())
	sweeper.now = func() time.Time { return testNow }
	return sweeper, repoMock, engineMock
}

func TestSweeper_RunOnce_DefaultsExpiredBatch(t *testing.T) {
	// Подготовка
	sweeper, repoMock, engineMock := newTestSweeper(t)
	ctx := context.Background()
	expired := []*models.Emergency{
		pendingEmergency(uuid.New()),
		pendingEmergency(uuid.New()),
		pendingEmergency(uuid.New()),
	}

	// Ожидания
	repoMock.EXPECT().ListExpiredPending(ctx, testNow).Return(expired, nil).Times(1)
	for _, emergency := range expired {
		engineMock.EXPECT().DefaultTimeout(ctx, emergency.ID).Return(nil).Times(1)
	}

	// Действие
	sweeper.RunOnce(ctx)
}

func TestSweeper_RunOnce_ItemFailureDoesNotAbortBatch(t *testing.T) {
	// Подготовка
	sweeper, repoMock, engineMock := newTestSweeper(t)
	ctx := context.Background()
	first := pendingEmergency(uuid.New())
	second := pendingEmergency(uuid.New())
	third := pendingEmergency(uuid.New())

	// Ожидания
	repoMock.EXPECT().
		ListExpiredPending(ctx, testNow).
		Return([]*models.Emergency{first, second, third}, nil).
		Times(1)

	// Ошибка на первом вызове не прерывает обработку остальных
	engineMock.EXPECT().DefaultTimeout(ctx, first.ID).Return(fmt.Errorf("store unreachable")).Times(1)
	engineMock.EXPECT().DefaultTimeout(ctx, second.ID).Return(nil).Times(1)
	engineMock.EXPECT().DefaultTimeout(ctx, third.ID).Return(nil).Times(1)

	// Действие
	sweeper.RunOnce(ctx)
}

func TestSweeper_RunOnce_EmptySetIsNoOp(t *testing.T) {
	// Подготовка
	sweeper, repoMock, engineMock := newTestSweeper(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListExpiredPending(ctx, testNow).Return([]*models.Emergency{}, nil).Times(1)
	engineMock.EXPECT().DefaultTimeout(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	sweeper.RunOnce(ctx)
}

func TestSweeper_RunOnce_Idempotent(t *testing.T) {
	// Подготовка
	sweeper, repoMock, engineMock := newTestSweeper(t)
	ctx := context.Background()
	emergency := pendingEmergency(uuid.New())

	// Ожидания
	// Первый прогон дефолтит единственный просроченный вызов
	repoMock.EXPECT().
		ListExpiredPending(ctx, testNow).
		Return([]*models.Emergency{emergency}, nil).
		Times(1)
	engineMock.EXPECT().DefaultTimeout(ctx, emergency.ID).Return(nil).Times(1)

	sweeper.RunOnce(ctx)

	// Повторный прогон без новых просроченных - чистый no-op
	repoMock.EXPECT().ListExpiredPending(ctx, testNow).Return([]*models.Emergency{}, nil).Times(1)

	// Действие
	sweeper.RunOnce(ctx)
}

// Худший случай: вызов, просроченный ровно на дедлайне, дефолтится не позже
// deadline + интервал обхода. Обходчик работает с реальным движком решений.
func TestSweeper_DeadlinePlusCadenceBound(t *testing.T) {
	// Подготовка
	engine, repoMock, eventsMock, notifierMock, broadcastMock := newTestEmergencyService(t)
	ctrl := gomock.NewController(t)
	sweeperRepo := mocks.NewMockEmergencyRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		DecisionWindow: 30 * time.Second,
		SweepInterval:  10 * time.Second,
	}

	// Вызов создан за 40 секунд до "сейчас": дедлайн истек ровно на интервал обхода назад
	emergencyID := uuid.New()
	emergency := pendingEmergency(emergencyID)
	emergency.CreatedAt = testNow.Add(-40 * time.Second)
	emergency.DecisionDeadline = testNow.Add(-10 * time.Second)

	sweeper := NewSweeper(sweeperRepo, engine, logger, cfg, metrics.New())
	sweeper.now = func() time.Time { return testNow }

	// Ожидания
	sweeperRepo.EXPECT().
		ListExpiredPending(context.Background(), testNow).
		Return([]*models.Emergency{emergency}, nil).
		Times(1)

	repoMock.EXPECT().GetByID(gomock.Any(), emergencyID).Return(emergency, nil).Times(1)
	repoMock.EXPECT().
		TransitionStatus(gomock.Any(), emergencyID, models.StatusPendingOwnership, models.StatusDefaultedSelf, models.ForSelf).
		Return(true, nil).
		Times(1)
	eventsMock.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	notifierMock.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SetContactNotificationStatus(gomock.Any(), emergencyID, models.NotificationSent).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateEmergencyCache(gomock.Any(), emergencyID).Return(nil).Times(1)
	broadcastMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	sweeper.RunOnce(context.Background())

	// Проверки
	require.Equal(t, models.StatusDefaultedSelf, emergency.Status)
	require.Equal(t, models.ForSelf, emergency.EmergencyFor)
}
