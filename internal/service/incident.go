package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ListIncidents возвращает обогащенные инциденты, опционально отфильтрованные
// по статусу или приоритету (статус имеет приоритет, как в панели)
func (s *coordinationService) ListIncidents(ctx context.Context, status, priority string) ([]*models.IncidentWithUsers, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ListIncidents",
		"status":   status,
		"priority": priority,
	})

	var (
		incidents []*models.IncidentWithUsers
		err       error
	)
	switch {
	case status != "":
		incidents, err = s.storage.GetIncidentsByStatus(ctx, status)
	case priority != "":
		incidents, err = s.storage.GetIncidentsByPriority(ctx, priority)
	default:
		incidents, err = s.storage.GetIncidents(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from storage")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// GetIncident получает обогащенный инцидент по ID
func (s *coordinationService) GetIncident(ctx context.Context, id string) (*models.IncidentWithUsers, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.storage.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from storage")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// CreateIncident создает инцидент, применяя значения по умолчанию, и
// публикует обогащенную сущность всем открытым соединениям
func (s *coordinationService) CreateIncident(ctx context.Context, incident *models.Incident) (*models.IncidentWithUsers, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if incident.Status == "" {
		incident.Status = models.IncidentStatusActive
	}
	if incident.Priority == "" {
		incident.Priority = models.PriorityMedium
	}

	if err := s.storage.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in storage")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	enriched, err := s.storage.GetIncident(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load created incident")
		return nil, fmt.Errorf("service: could not load created incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	s.publish(ctx, log, broadcast.EventIncidentCreated, enriched)
	return enriched, nil
}

// UpdateIncident применяет частичное обновление и публикует результат
func (s *coordinationService) UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.IncidentWithUsers, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	if _, err := s.storage.UpdateIncident(ctx, id, upd); err != nil {
		log.WithError(err).Warn("Failed to update incident in storage")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	enriched, err := s.storage.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load updated incident")
		return nil, fmt.Errorf("service: could not load updated incident: %w", err)
	}

	log.Info("Incident updated successfully")
	s.publish(ctx, log, broadcast.EventIncidentUpdated, enriched)
	return enriched, nil
}
