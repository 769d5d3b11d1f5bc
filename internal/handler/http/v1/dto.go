package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateEmergencyRequest DTO для регистрации вызова
// @Description DTO для регистрации вызова
type CreateEmergencyRequest struct {
	Type        string  `json:"type" validate:"required,min=2,max=64"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	VictimName  string  `json:"victim_name,omitempty" validate:"omitempty,max=255"`
	VictimPhone string  `json:"victim_phone,omitempty" validate:"omitempty,max=32"`
	Address     string  `json:"address,omitempty" validate:"omitempty,max=512"`
}

// ClaimEmergencyRequest DTO для явного выбора владения
// @Description DTO для явного выбора владения
type ClaimEmergencyRequest struct {
	EmergencyFor string `json:"emergency_for" validate:"required,oneof=SELF OTHER"`
}

// EmergencyResponse DTO для ответа владельцу вызова
// @Description DTO для ответа владельцу вызова
type EmergencyResponse struct {
	ID                        uuid.UUID `json:"id"`
	Type                      string    `json:"type"`
	Latitude                  float64   `json:"latitude"`
	Longitude                 float64   `json:"longitude"`
	VictimName                string    `json:"victim_name,omitempty"`
	VictimPhone               string    `json:"victim_phone,omitempty"`
	Address                   string    `json:"address,omitempty"`
	Status                    string    `json:"status"`
	EmergencyFor              string    `json:"emergency_for"`
	ContactNotificationStatus string    `json:"contact_notification_status"`
	CreatedAt                 time.Time `json:"created_at"`
	DecisionDeadline          time.Time `json:"decision_deadline"`
}

// NearbyEmergencyResponse DTO гео-выдачи; телефон, адрес и полное имя сюда не попадают
// @Description DTO гео-выдачи без чувствительных полей
type NearbyEmergencyResponse struct {
	ID                uuid.UUID `json:"id"`
	Type              string    `json:"type"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	DistanceKm        float64   `json:"distance_km"`
	VictimDisplayName string    `json:"victim_display_name"`
}

// TimelineEventResponse DTO события из журнала назначений
// @Description DTO события из журнала назначений
type TimelineEventResponse struct {
	ID          int64      `json:"id"`
	EmergencyID uuid.UUID  `json:"emergency_id"`
	AmbulanceID *uuid.UUID `json:"ambulance_id,omitempty"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	OccurredAt  time.Time  `json:"occurred_at"`
}
