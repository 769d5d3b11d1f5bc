package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyStatus - статус владения экстренным вызовом
type EmergencyStatus string

const (
	StatusPendingOwnership EmergencyStatus = "PENDING_OWNERSHIP"
	StatusClaimed          EmergencyStatus = "CLAIMED"
	StatusDefaultedSelf    EmergencyStatus = "DEFAULTED_SELF"
	StatusResolved         EmergencyStatus = "RESOLVED"
)

// EmergencyFor - для кого вызов: не выбрано, для себя или для другого
type EmergencyFor string

const (
	ForUnset EmergencyFor = "UNSET"
	ForSelf  EmergencyFor = "SELF"
	ForOther EmergencyFor = "OTHER"
)

// ContactNotificationStatus - статус уведомления экстренного контакта
type ContactNotificationStatus string

const (
	NotificationNotSent ContactNotificationStatus = "NOT_SENT"
	NotificationSent    ContactNotificationStatus = "SENT"
	NotificationFailed  ContactNotificationStatus = "FAILED"
)

// Emergency представляет один зарегистрированный экстренный вызов.
// Поля VictimName, VictimPhone и Address чувствительные - наружу они
// отдаются только через маппер владельца, никогда через nearby-проекцию.
type Emergency struct {
	ID                        uuid.UUID                 `json:"id"`
	Type                      string                    `json:"type"`
	Latitude                  float64                   `json:"latitude"`
	Longitude                 float64                   `json:"longitude"`
	VictimName                string                    `json:"victim_name"`
	VictimPhone               string                    `json:"victim_phone"`
	Address                   string                    `json:"address"`
	Status                    EmergencyStatus           `json:"status"`
	EmergencyFor              EmergencyFor              `json:"emergency_for"`
	ContactNotificationStatus ContactNotificationStatus `json:"contact_notification_status"`
	CreatedAt                 time.Time                 `json:"created_at"`
	DecisionDeadline          time.Time                 `json:"decision_deadline"`
	UpdatedAt                 time.Time                 `json:"updated_at"`
}
