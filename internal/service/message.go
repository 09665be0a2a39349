package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// defaultMessageLimit ограничивает выборку последних сообщений, когда
// клиент не передал limit
const defaultMessageLimit = 50

// ListMessages возвращает обогащенные сообщения, новые первыми.
// При заданном incidentID возвращаются только сообщения этого инцидента.
func (s *coordinationService) ListMessages(ctx context.Context, incidentID string, limit int) ([]*models.MessageWithUser, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "message",
		"method":      "ListMessages",
		"incident_id": incidentID,
		"limit":       limit,
	})

	var (
		messages []*models.MessageWithUser
		err      error
	)
	if incidentID != "" {
		messages, err = s.storage.GetMessages(ctx, incidentID)
	} else {
		if limit < 1 {
			limit = defaultMessageLimit
		}
		messages, err = s.storage.GetRecentMessages(ctx, limit)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list messages from storage")
		return nil, fmt.Errorf("service: could not list messages: %w", err)
	}
	return messages, nil
}

// CreateMessage создает сообщение и публикует его с полной идентичностью отправителя
func (s *coordinationService) CreateMessage(ctx context.Context, message *models.Message) (*models.MessageWithUser, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "message",
		"method":       "CreateMessage",
		"incident_id":  message.IncidentID,
		"is_emergency": message.IsEmergency,
	})
	log.Info("Attempting to create a new message")

	// Сообщение с неразрешимым отправителем нельзя сохранять: оно сделает
	// нечитаемой всю ленту сообщений при обогащении
	if message.SenderID != "" {
		if _, err := s.storage.GetUser(ctx, message.SenderID); err != nil {
			log.WithError(err).WithField("sender_id", message.SenderID).Warn("Message sender does not exist")
			return nil, fmt.Errorf("service: message sender %s: %w", message.SenderID, err)
		}
	}

	if err := s.storage.CreateMessage(ctx, message); err != nil {
		log.WithError(err).Error("Failed to create message in storage")
		return nil, fmt.Errorf("service: could not create message: %w", err)
	}

	enriched, err := s.storage.GetMessage(ctx, message.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load created message")
		return nil, fmt.Errorf("service: could not load created message: %w", err)
	}

	log.WithField("message_id", message.ID).Info("Message created successfully")
	s.publish(ctx, log, broadcast.EventMessageCreated, enriched)
	return enriched, nil
}
