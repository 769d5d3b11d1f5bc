package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// Claim выполняет явный выбор владения вызовом.
// Разрешен только пока статус PENDING_OWNERSHIP; арбитром гонки с дефолтом
// выступает условное обновление в хранилище. Проигравший получает
// ErrStaleDecision, без события и без уведомления.
func (s *emergencyService) Claim(ctx context.Context, id uuid.UUID, chosenFor models.EmergencyFor, actorID string) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "Claim",
		"emergency_id": id,
		"actor_id":     actorID,
		"chosen_for":   chosenFor,
	})
	log.Info("Attempting to claim emergency ownership")

	if chosenFor != models.ForSelf && chosenFor != models.ForOther {
		return nil, ErrInvalidEmergencyFor
	}

	emergency, err := s.emergencies.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency for claim")
		return nil, fmt.Errorf("service: could not get emergency for claim: %w", err)
	}

	won, err := s.emergencies.TransitionStatus(ctx, id, models.StatusPendingOwnership, models.StatusClaimed, chosenFor)
	if err != nil {
		log.WithError(err).Error("Failed to apply claim transition")
		return nil, fmt.Errorf("service: could not apply claim transition: %w", err)
	}
	if !won {
		// Статус уже изменился: либо конкурирующий claim, либо дефолт по таймауту
		log.Warn("Claim rejected as stale")
		s.metrics.StaleClaimsTotal.Inc()
		return nil, ErrStaleDecision
	}

	emergency.Status = models.StatusClaimed
	emergency.EmergencyFor = chosenFor

	event := &models.AssignmentEvent{
		EmergencyID: id,
		Type:        models.EventClaimed,
		Description: fmt.Sprintf("Ownership claimed as %s by user %s", chosenFor, actorID),
		OccurredAt:  s.now(),
	}
	if err := s.events.Append(ctx, event); err != nil {
		// Переход уже состоялся и не откатывается, пробел в аудите поднимаем наверх
		log.WithError(err).Error("Claim transition applied but event append failed")
		return nil, fmt.Errorf("service: could not append claim event: %w", err)
	}

	if err := s.emergencies.InvalidateEmergencyCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate emergency cache after claim")
	}

	s.publishTransition(ctx, log, emergency, event)
	s.metrics.ClaimsTotal.Inc()

	log.Info("Emergency ownership claimed successfully")
	return emergency, nil
}

// DefaultTimeout применяет автоматический фолбэк по истечении окна решения.
// Проигрыш гонки конкурирующему claim - ожидаемый исход, а не ошибка:
// тихий no-op без события и без уведомления.
func (s *emergencyService) DefaultTimeout(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "DefaultTimeout",
		"emergency_id": id,
	})

	emergency, err := s.emergencies.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get emergency for default")
		return fmt.Errorf("service: could not get emergency for default: %w", err)
	}

	if emergency.Status != models.StatusPendingOwnership {
		log.Debug("Emergency already decided, nothing to default")
		return nil
	}

	if s.now().Before(emergency.DecisionDeadline) {
		return ErrDecisionWindowOpen
	}

	won, err := s.emergencies.TransitionStatus(ctx, id, models.StatusPendingOwnership, models.StatusDefaultedSelf, models.ForSelf)
	if err != nil {
		log.WithError(err).Error("Failed to apply default transition")
		return fmt.Errorf("service: could not apply default transition: %w", err)
	}
	if !won {
		log.Info("Lost the default race to a concurrent claim")
		return nil
	}

	emergency.Status = models.StatusDefaultedSelf
	emergency.EmergencyFor = models.ForSelf
	s.metrics.DefaultsTotal.Inc()

	event := &models.AssignmentEvent{
		EmergencyID: id,
		Type:        models.EventDefaulted,
		Description: "No ownership decision within the window, defaulted to SELF",
		OccurredAt:  s.now(),
	}
	var appendErr error
	if appendErr = s.events.Append(ctx, event); appendErr != nil {
		// Дефолт уже применен: контакт все равно уведомляем, ошибку аудита вернем в конце
		log.WithError(appendErr).Error("Default transition applied but event append failed")
	}

	// Уведомление вызывается ровно один раз на дефолтный переход;
	// исход записывается, автоматических повторов нет
	notificationStatus := models.NotificationSent
	if err := s.notifier.Notify(ctx, emergency); err != nil {
		log.WithError(err).Error("Contact notification failed")
		notificationStatus = models.NotificationFailed
		s.metrics.NotificationsTotal.WithLabelValues("failed").Inc()
	} else {
		s.metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	}

	emergency.ContactNotificationStatus = notificationStatus
	if err := s.emergencies.SetContactNotificationStatus(ctx, id, notificationStatus); err != nil {
		log.WithError(err).Error("Failed to record contact notification status")
		if appendErr == nil {
			appendErr = fmt.Errorf("service: could not record notification status: %w", err)
		}
	}

	if err := s.emergencies.InvalidateEmergencyCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate emergency cache after default")
	}

	s.publishTransition(ctx, log, emergency, event)

	log.WithField("notification_status", notificationStatus).Info("Emergency defaulted to SELF")
	return appendErr
}

// ListTimeline возвращает события назначения вызова по возрастанию occurred_at
func (s *emergencyService) ListTimeline(ctx context.Context, emergencyID uuid.UUID) ([]*models.AssignmentEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "ListTimeline",
		"emergency_id": emergencyID,
	})
	log.Info("Listing assignment timeline")

	events, err := s.events.ListForEmergency(ctx, emergencyID)
	if err != nil {
		log.WithError(err).Error("Failed to list assignment events")
		return nil, fmt.Errorf("service: could not list assignment events: %w", err)
	}

	log.WithField("count", len(events)).Info("Timeline listed successfully")
	return events, nil
}

// publishTransition отправляет событие во внешнюю трансляцию, ошибки не фатальны
func (s *emergencyService) publishTransition(ctx context.Context, log *logrus.Entry, emergency *models.Emergency, event *models.AssignmentEvent) {
	broadcastEvent := notify.BroadcastEvent{
		EmergencyID:  emergency.ID,
		Type:         string(event.Type),
		EmergencyFor: string(emergency.EmergencyFor),
		Description:  event.Description,
		OccurredAt:   event.OccurredAt,
	}
	if err := s.broadcast.Publish(ctx, broadcastEvent); err != nil {
		log.WithError(err).Warn("Failed to publish transition broadcast")
	}
}
