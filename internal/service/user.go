package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateUser создает пользователя; username должен быть уникален
func (s *coordinationService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "CreateUser",
		"username": user.Username,
	})
	log.Info("Attempting to create a new user")

	if user.Role == "" {
		user.Role = models.RoleVolunteer
	}

	existing, err := s.storage.GetUserByUsername(ctx, user.Username)
	if err != nil {
		log.WithError(err).Error("Failed to check username uniqueness")
		return nil, fmt.Errorf("service: could not check username: %w", err)
	}
	if existing != nil {
		log.Warn("Username is already taken")
		return nil, ErrUsernameTaken
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in storage")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	s.publish(ctx, log, broadcast.EventUserCreated, user)
	return user, nil
}

// GetUser получает пользователя по ID
func (s *coordinationService) GetUser(ctx context.Context, id string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetUser",
		"user_id": id,
	})

	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from storage")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// UpdateUser применяет частичное обновление пользователя
func (s *coordinationService) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": id,
	})
	log.Info("Attempting to update user")

	user, err := s.storage.UpdateUser(ctx, id, upd)
	if err != nil {
		log.WithError(err).Warn("Failed to update user in storage")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("User updated successfully")
	return user, nil
}

// GetUsersByRole возвращает всех пользователей с указанной ролью
func (s *coordinationService) GetUsersByRole(ctx context.Context, role string) ([]*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetUsersByRole",
		"role":    role,
	})

	users, err := s.storage.GetUsersByRole(ctx, role)
	if err != nil {
		log.WithError(err).Error("Failed to get users by role from storage")
		return nil, fmt.Errorf("service: could not get users by role: %w", err)
	}
	return users, nil
}
