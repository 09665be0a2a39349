package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ListAssignments возвращает назначения, опционально отфильтрованные
// по волонтеру и/или инциденту
func (s *coordinationService) ListAssignments(ctx context.Context, volunteerID, incidentID string) ([]*models.AssignmentWithRefs, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "ListAssignments",
		"volunteer_id": volunteerID,
		"incident_id":  incidentID,
	})

	assignments, err := s.storage.GetVolunteerAssignments(ctx, volunteerID, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list volunteer assignments from storage")
		return nil, fmt.Errorf("service: could not list volunteer assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment привязывает волонтера к инциденту и публикует событие
func (s *coordinationService) CreateAssignment(ctx context.Context, assignment *models.VolunteerAssignment) (*models.AssignmentWithRefs, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "CreateAssignment",
		"volunteer_id": assignment.VolunteerID,
		"incident_id":  assignment.IncidentID,
	})
	log.Info("Attempting to create a volunteer assignment")

	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusAssigned
	}

	if err := s.storage.CreateVolunteerAssignment(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to create volunteer assignment in storage")
		return nil, fmt.Errorf("service: could not create volunteer assignment: %w", err)
	}

	enriched, err := s.storage.GetVolunteerAssignment(ctx, assignment.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load created volunteer assignment")
		return nil, fmt.Errorf("service: could not load created volunteer assignment: %w", err)
	}

	log.WithField("assignment_id", assignment.ID).Info("Volunteer assignment created successfully")
	s.publish(ctx, log, broadcast.EventVolunteerAssigned, enriched)
	return enriched, nil
}

// UpdateAssignment применяет переход статуса или смену роли назначения
func (s *coordinationService) UpdateAssignment(ctx context.Context, id string, upd models.AssignmentUpdate) (*models.AssignmentWithRefs, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "UpdateAssignment",
		"assignment_id": id,
	})
	log.Info("Attempting to update volunteer assignment")

	if _, err := s.storage.UpdateVolunteerAssignment(ctx, id, upd); err != nil {
		log.WithError(err).Warn("Failed to update volunteer assignment in storage")
		return nil, fmt.Errorf("service: could not update volunteer assignment: %w", err)
	}

	enriched, err := s.storage.GetVolunteerAssignment(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load updated volunteer assignment")
		return nil, fmt.Errorf("service: could not load updated volunteer assignment: %w", err)
	}

	log.Info("Volunteer assignment updated successfully")
	return enriched, nil
}
