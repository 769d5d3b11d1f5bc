package service

import (
	"context"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// Sweeper - страховочный обходчик: с фиксированным интервалом находит вызовы
// с истекшим окном решения и применяет к каждому дефолтный переход.
// Каждый прогон независим и идемпотентен; просроченный вызов дефолтится
// не позже чем deadline + интервал обхода.
type Sweeper struct {
	emergencies EmergencyRepository
	engine      EmergencyService
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewSweeper создает новый Sweeper
func NewSweeper(emergencies EmergencyRepository, engine EmergencyService, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) *Sweeper {
	return &Sweeper{
		emergencies: emergencies,
		engine:      engine,
		logger:      logger,
		cfg:         cfg,
		metrics:     m,
		now:         time.Now,
	}
}

// Start запускает горутину обхода; останавливается по отмене контекста
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.cfg.SweepInterval.String()).Info("Starting safety-net sweeper...")
	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping safety-net sweeper.")
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce выполняет один прогон обхода. Ошибка на одном вызове логируется
// и не прерывает обработку остальных; пустая выборка - чистый no-op.
func (s *Sweeper) RunOnce(ctx context.Context) {
	log := s.logger.WithField("service", "sweeper")
	s.metrics.SweepRunsTotal.Inc()

	expired, err := s.emergencies.ListExpiredPending(ctx, s.now())
	if err != nil {
		log.WithError(err).Error("Failed to list expired pending emergencies")
		return
	}

	if len(expired) == 0 {
		log.Debug("No expired pending emergencies")
		return
	}

	log.WithField("count", len(expired)).Info("Defaulting expired emergencies")
	for _, emergency := range expired {
		if err := s.engine.DefaultTimeout(ctx, emergency.ID); err != nil {
			log.WithError(err).WithField("emergency_id", emergency.ID).Error("Failed to default expired emergency")
			s.metrics.SweepItemFailures.Inc()
			continue
		}
	}
}
