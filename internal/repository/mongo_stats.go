package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/crisis_coordination_system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// GetDashboardStats агрегирует показатели панели по текущему состоянию бд
func (s *MongoStorage) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	activeIncidents, err := s.db.Collection(collIncidents).CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": bson.A{models.IncidentStatusActive, models.IncidentStatusInProgress}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count active incidents: %w", err)
	}

	activeVolunteers, err := s.db.Collection(collUsers).CountDocuments(ctx, bson.M{
		"role": models.RoleVolunteer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count volunteers: %w", err)
	}

	resourcesAllocated, err := s.resourcesAllocatedPercent(ctx)
	if err != nil {
		return nil, err
	}

	// "Разрешено сегодня" считается от локальной полуночи процесса
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	resolvedToday, err := s.db.Collection(collIncidents).CountDocuments(ctx, bson.M{
		"status":     models.IncidentStatusResolved,
		"updated_at": bson.M{"$gte": startOfDay},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count resolved incidents: %w", err)
	}

	return &models.DashboardStats{
		ActiveIncidents:    int(activeIncidents),
		ActiveVolunteers:   int(activeVolunteers),
		ResourcesAllocated: resourcesAllocated,
		ResolvedToday:      int(resolvedToday),
	}, nil
}

// resourcesAllocatedPercent - доля ресурсов в статусе deployed от общего числа
// ресурсов, округленная до целого процента. Без ресурсов показатель равен нулю.
func (s *MongoStorage) resourcesAllocatedPercent(ctx context.Context) (int, error) {
	total, err := s.db.Collection(collResources).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	deployed, err := s.db.Collection(collResources).CountDocuments(ctx, bson.M{
		"status": models.ResourceStatusDeployed,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count deployed resources: %w", err)
	}
	return int(math.Round(float64(deployed) / float64(total) * 100)), nil
}
