package models

import (
	"github.com/google/uuid"
)

// AnonymousVictimName - заглушка, когда имя пострадавшего неизвестно
const AnonymousVictimName = "Anonymous"

// NearbyEmergency - эфемерная проекция вызова для гео-выдачи.
// Не хранится и не кешируется; телефон, адрес и полное имя сюда не попадают.
type NearbyEmergency struct {
	ID                uuid.UUID `json:"id"`
	Type              string    `json:"type"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	DistanceKm        float64   `json:"distance_km"`
	VictimDisplayName string    `json:"victim_display_name"`
}
