package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GetDashboardStats возвращает производную статистику панели координации
func (s *coordinationService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "GetDashboardStats",
	})

	stats, err := s.storage.GetDashboardStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get dashboard stats from storage")
		return nil, fmt.Errorf("service: could not get dashboard stats: %w", err)
	}
	return stats, nil
}
