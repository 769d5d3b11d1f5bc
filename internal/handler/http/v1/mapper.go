package v1

import (
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// DTOToEmergencyModel преобразует запрос на создание в доменную модель
func DTOToEmergencyModel(req CreateEmergencyRequest) *models.Emergency {
	return &models.Emergency{
		Type:        req.Type,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		VictimName:  req.VictimName,
		VictimPhone: req.VictimPhone,
		Address:     req.Address,
	}
}

// ModelToEmergencyResponse преобразует модель в ответ владельцу
func ModelToEmergencyResponse(emergency *models.Emergency) EmergencyResponse {
	return EmergencyResponse{
		ID:                        emergency.ID,
		Type:                      emergency.Type,
		Latitude:                  emergency.Latitude,
		Longitude:                 emergency.Longitude,
		VictimName:                emergency.VictimName,
		VictimPhone:               emergency.VictimPhone,
		Address:                   emergency.Address,
		Status:                    string(emergency.Status),
		EmergencyFor:              string(emergency.EmergencyFor),
		ContactNotificationStatus: string(emergency.ContactNotificationStatus),
		CreatedAt:                 emergency.CreatedAt,
		DecisionDeadline:          emergency.DecisionDeadline,
	}
}

// ModelsToNearbyResponses преобразует гео-проекции в ответы
func ModelsToNearbyResponses(nearby []*models.NearbyEmergency) []NearbyEmergencyResponse {
	responses := make([]NearbyEmergencyResponse, 0, len(nearby))
	for _, item := range nearby {
		responses = append(responses, NearbyEmergencyResponse{
			ID:                item.ID,
			Type:              item.Type,
			Latitude:          item.Latitude,
			Longitude:         item.Longitude,
			DistanceKm:        item.DistanceKm,
			VictimDisplayName: item.VictimDisplayName,
		})
	}
	return responses
}

// ModelsToTimelineResponses преобразует события журнала в ответы
func ModelsToTimelineResponses(events []*models.AssignmentEvent) []TimelineEventResponse {
	responses := make([]TimelineEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, TimelineEventResponse{
			ID:          event.ID,
			EmergencyID: event.EmergencyID,
			AmbulanceID: event.AmbulanceID,
			Type:        string(event.Type),
			Description: event.Description,
			OccurredAt:  event.OccurredAt,
		})
	}
	return responses
}
