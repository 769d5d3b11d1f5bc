package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	earthRadiusKm = 6371.0

	// Допуск на ошибку округления: вызов ровно на границе радиуса включается
	radiusToleranceKm = 1e-9
)

// FindNearby возвращает активные вызовы в радиусе radiusKm от точки,
// по возрастанию расстояния. Граница включающая: вызов ровно на radiusKm
// попадает в выдачу. Проекция не содержит телефона, адреса и полного имени.
func (s *emergencyService) FindNearby(ctx context.Context, lat, lon, radiusKm float64, excludeID *uuid.UUID) ([]*models.NearbyEmergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "emergency",
		"method":    "FindNearby",
		"radius_km": radiusKm,
	})
	log.Info("Searching for nearby emergencies")

	if radiusKm < 0 {
		return nil, fmt.Errorf("service: radius must not be negative")
	}

	emergencies, err := s.emergencies.ListUnresolved(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list unresolved emergencies")
		return nil, fmt.Errorf("service: could not list unresolved emergencies: %w", err)
	}

	nearby := make([]*models.NearbyEmergency, 0)
	for _, emergency := range emergencies {
		if excludeID != nil && emergency.ID == *excludeID {
			continue
		}

		distance := haversineKm(lat, lon, emergency.Latitude, emergency.Longitude)
		if distance > radiusKm+radiusToleranceKm {
			continue
		}

		nearby = append(nearby, &models.NearbyEmergency{
			ID:                emergency.ID,
			Type:              emergency.Type,
			Latitude:          emergency.Latitude,
			Longitude:         emergency.Longitude,
			DistanceKm:        distance,
			VictimDisplayName: victimDisplayName(emergency.VictimName),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	log.WithField("count", len(nearby)).Info("Nearby emergencies found")
	return nearby, nil
}

// victimDisplayName оставляет только первое имя, либо заглушку, если имени нет
func victimDisplayName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return models.AnonymousVictimName
	}
	return fields[0]
}

// haversineKm вычисляет расстояние по дуге большого круга в километрах
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
