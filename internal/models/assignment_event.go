package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentEventType - тег типа события назначения
type AssignmentEventType string

const (
	EventClaimed   AssignmentEventType = "CLAIMED"
	EventDefaulted AssignmentEventType = "DEFAULTED"
)

// AssignmentEvent - неизменяемая запись аудита об одном переходе владения.
// Создаётся один раз на переход, никогда не обновляется и не удаляется.
type AssignmentEvent struct {
	ID          int64               `json:"id"`
	EmergencyID uuid.UUID           `json:"emergency_id"`
	AmbulanceID *uuid.UUID          `json:"ambulance_id,omitempty"`
	Type        AssignmentEventType `json:"type"`
	Description string              `json:"description"`
	OccurredAt  time.Time           `json:"occurred_at"`
}
