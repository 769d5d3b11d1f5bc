package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/notify"
	"github.com/shenikar/emergency_dispatch_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// EmergencyRepository определяет контракт для работы с бд экстренных вызовов.
// TransitionStatus - единственный путь мутации статуса: условное обновление,
// которое срабатывает только если текущий статус равен ожидаемому.
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.EmergencyStatus, emergencyFor models.EmergencyFor) (bool, error)
	SetContactNotificationStatus(ctx context.Context, id uuid.UUID, status models.ContactNotificationStatus) error
	ListExpiredPending(ctx context.Context, now time.Time) ([]*models.Emergency, error)
	ListUnresolved(ctx context.Context) ([]*models.Emergency, error)
	GetEmergencyFromCache(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error
	InvalidateEmergencyCache(ctx context.Context, id uuid.UUID) error
}

// AssignmentEventRepository определяет контракт append-only журнала переходов.
// Операций обновления и удаления нет намеренно: целостность аудита
// держится на неизменяемости записей.
type AssignmentEventRepository interface {
	Append(ctx context.Context, event *models.AssignmentEvent) error
	ListForEmergency(ctx context.Context, emergencyID uuid.UUID) ([]*models.AssignmentEvent, error)
}

// ContactNotifier - контракт внешнего диспетчера контактных уведомлений.
// Вызывается не более одного раза на дефолтный переход; это гарантирует
// движок решений через условное обновление статуса, а не сам диспетчер.
type ContactNotifier interface {
	Notify(ctx context.Context, emergency *models.Emergency) error
}

// EmergencyService определяет контракт для бизнес-логики владения вызовом
type EmergencyService interface {
	CreateEmergency(ctx context.Context, emergency *models.Emergency) error
	GetEmergency(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	Claim(ctx context.Context, id uuid.UUID, chosenFor models.EmergencyFor, actorID string) (*models.Emergency, error)
	DefaultTimeout(ctx context.Context, id uuid.UUID) error
	ListTimeline(ctx context.Context, emergencyID uuid.UUID) ([]*models.AssignmentEvent, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, excludeID *uuid.UUID) ([]*models.NearbyEmergency, error)
}

type emergencyService struct {
	emergencies EmergencyRepository
	events      AssignmentEventRepository
	notifier    ContactNotifier
	broadcast   notify.BroadcastPublisher
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewEmergencyService(
	emergencies EmergencyRepository,
	events AssignmentEventRepository,
	notifier ContactNotifier,
	broadcast notify.BroadcastPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
	m *metrics.Metrics,
) EmergencyService {
	return &emergencyService{
		emergencies: emergencies,
		events:      events,
		notifier:    notifier,
		broadcast:   broadcast,
		logger:      logger,
		cfg:         cfg,
		metrics:     m,
		now:         time.Now,
	}
}

// CreateEmergency регистрирует вызов в статусе PENDING_OWNERSHIP.
// Дедлайн решения фиксируется сразу: created_at + окно решения.
// Создание не является переходом владения, событие не пишется.
func (s *emergencyService) CreateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "CreateEmergency",
		"type":    emergency.Type,
	})
	log.Info("Attempting to create a new emergency")

	createdAt := s.now()
	emergency.Status = models.StatusPendingOwnership
	emergency.EmergencyFor = models.ForUnset
	emergency.ContactNotificationStatus = models.NotificationNotSent
	emergency.CreatedAt = createdAt
	emergency.DecisionDeadline = createdAt.Add(s.cfg.DecisionWindow)

	if err := s.emergencies.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}

	log.WithField("emergency_id", emergency.ID).Info("Emergency created successfully")
	return nil
}

// GetEmergency получает вызов по ID, сначала из кеша, затем из бд
func (s *emergencyService) GetEmergency(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "GetEmergency",
		"emergency_id": id,
	})
	log.Info("Fetching emergency by ID")

	cached, err := s.emergencies.GetEmergencyFromCache(ctx, id)
	if err != nil {
		// Ошибка кеша не фатальна, идем в бд
		log.WithError(err).Warn("Failed to read emergency from cache")
	}
	if cached != nil {
		log.Debug("Emergency fetched from cache")
		return cached, nil
	}

	emergency, err := s.emergencies.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get emergency from repository")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}

	if err := s.emergencies.SetEmergencyCache(ctx, emergency); err != nil {
		log.WithError(err).Warn("Failed to cache emergency")
	}

	log.Info("Emergency fetched successfully")
	return emergency, nil
}
