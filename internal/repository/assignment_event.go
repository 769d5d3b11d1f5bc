package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// AssignmentEventRepository - append-only журнал переходов владения.
// UPDATE и DELETE по таблице не выполняются никогда.
type AssignmentEventRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentEventRepository(db *pgxpool.Pool) service.AssignmentEventRepository {
	return &AssignmentEventRepository{
		db: db,
	}
}

// Append добавляет событие в журнал
func (r *AssignmentEventRepository) Append(ctx context.Context, event *models.AssignmentEvent) error {
	query := `
		INSERT INTO assignment_events (emergency_id, ambulance_id, type, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.EmergencyID,
		event.AmbulanceID,
		event.Type,
		event.Description,
		event.OccurredAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to append assignment event: %w", err)
	}
	return nil
}

// ListForEmergency возвращает события вызова по возрастанию occurred_at
func (r *AssignmentEventRepository) ListForEmergency(ctx context.Context, emergencyID uuid.UUID) ([]*models.AssignmentEvent, error) {
	query := `
		SELECT
			id,
			emergency_id,
			ambulance_id,
			type,
			description,
			occurred_at
		FROM assignment_events
		WHERE emergency_id = $1
		ORDER BY occurred_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, emergencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.AssignmentEvent, 0)
	for rows.Next() {
		event := &models.AssignmentEvent{}
		err := rows.Scan(
			&event.ID,
			&event.EmergencyID,
			&event.AmbulanceID,
			&event.Type,
			&event.Description,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListForEmergency: %w", err)
	}
	return events, nil
}
