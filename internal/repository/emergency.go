package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const emergencyColumns = `
			id,
			type,
			latitude,
			longitude,
			victim_name,
			victim_phone,
			address,
			status,
			emergency_for,
			contact_notification_status,
			created_at,
			decision_deadline,
			updated_at`

type EmergencyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewEmergencyRepository(db *pgxpool.Pool, redisClient *redis.Client) service.EmergencyRepository {
	return &EmergencyRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о вызове в бд
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies
			(type, latitude, longitude, victim_name, victim_phone, address,
			 status, emergency_for, contact_notification_status, created_at, decision_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Type,
		emergency.Latitude,
		emergency.Longitude,
		emergency.VictimName,
		emergency.VictimPhone,
		emergency.Address,
		emergency.Status,
		emergency.EmergencyFor,
		emergency.ContactNotificationStatus,
		emergency.CreatedAt,
		emergency.DecisionDeadline,
	).Scan(&emergency.ID, &emergency.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w", err)
	}
	return nil
}

// GetByID возвращает вызов по его UUID
func (r *EmergencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	emergency := &models.Emergency{}
	query := `
		SELECT ` + emergencyColumns + `
		FROM emergencies
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&emergency.ID,
		&emergency.Type,
		&emergency.Latitude,
		&emergency.Longitude,
		&emergency.VictimName,
		&emergency.VictimPhone,
		&emergency.Address,
		&emergency.Status,
		&emergency.EmergencyFor,
		&emergency.ContactNotificationStatus,
		&emergency.CreatedAt,
		&emergency.DecisionDeadline,
		&emergency.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency with id %s: %w", id, service.ErrEmergencyNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency by id: %w", err)
	}
	return emergency, nil
}

// TransitionStatus выполняет атомарное условное обновление статуса.
// Запись меняется только если её текущий статус равен from; количество
// затронутых строк решает, кто выиграл гонку claim против дефолта.
func (r *EmergencyRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.EmergencyStatus, emergencyFor models.EmergencyFor) (bool, error) {
	query := `
		UPDATE emergencies SET
			status = $1,
			emergency_for = $2,
			updated_at = NOW()
		WHERE id = $3 AND status = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, to, emergencyFor, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to transition emergency status: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// SetContactNotificationStatus записывает исход контактного уведомления
func (r *EmergencyRepository) SetContactNotificationStatus(ctx context.Context, id uuid.UUID, status models.ContactNotificationStatus) error {
	query := `
		UPDATE emergencies SET
			contact_notification_status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set contact notification status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %s not found for notification status update", id)
	}
	return nil
}

// ListExpiredPending возвращает вызовы с истекшим окном решения, батчем
func (r *EmergencyRepository) ListExpiredPending(ctx context.Context, now time.Time) ([]*models.Emergency, error) {
	query := `
		SELECT ` + emergencyColumns + `
		FROM emergencies
		WHERE
			status = 'PENDING_OWNERSHIP'
			AND decision_deadline < $1
		ORDER BY decision_deadline ASC;
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired pending emergencies: %w", err)
	}
	defer rows.Close()

	return scanEmergencies(rows, "ListExpiredPending")
}

// ListUnresolved возвращает все неразрешенные вызовы для гео-выдачи
func (r *EmergencyRepository) ListUnresolved(ctx context.Context) ([]*models.Emergency, error) {
	query := `
		SELECT ` + emergencyColumns + `
		FROM emergencies
		WHERE status <> 'RESOLVED';
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved emergencies: %w", err)
	}
	defer rows.Close()

	return scanEmergencies(rows, "ListUnresolved")
}

func scanEmergencies(rows pgx.Rows, method string) ([]*models.Emergency, error) {
	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		emergency := &models.Emergency{}
		err := rows.Scan(
			&emergency.ID,
			&emergency.Type,
			&emergency.Latitude,
			&emergency.Longitude,
			&emergency.VictimName,
			&emergency.VictimPhone,
			&emergency.Address,
			&emergency.Status,
			&emergency.EmergencyFor,
			&emergency.ContactNotificationStatus,
			&emergency.CreatedAt,
			&emergency.DecisionDeadline,
			&emergency.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row in %s: %w", method, err)
		}
		emergencies = append(emergencies, emergency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", method, err)
	}
	return emergencies, nil
}

// GetEmergencyFromCache пытается получить вызов из Redis
func (r *EmergencyRepository) GetEmergencyFromCache(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	key := fmt.Sprintf("emergency:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency from cache: %w", err)
	}

	emergency := &models.Emergency{}
	if err := json.Unmarshal(val, emergency); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emergency from cache: %w", err)
	}
	return emergency, nil
}

// SetEmergencyCache сохраняет вызов в Redis
func (r *EmergencyRepository) SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error {
	key := fmt.Sprintf("emergency:%s", emergency.ID.String())
	val, err := json.Marshal(emergency)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set emergency in cache: %w", err)
	}
	return nil
}

// InvalidateEmergencyCache удаляет вызов из Redis кэша
func (r *EmergencyRepository) InvalidateEmergencyCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("emergency:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate emergency cache: %w", err)
	}
	return nil
}
