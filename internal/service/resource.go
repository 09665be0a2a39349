package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ListResources возвращает обогащенные ресурсы, опционально отфильтрованные
// по типу или статусу
func (s *coordinationService) ListResources(ctx context.Context, resourceType, status string) ([]*models.ResourceWithIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "ListResources",
		"type":    resourceType,
		"status":  status,
	})

	var (
		resources []*models.ResourceWithIncident
		err       error
	)
	switch {
	case resourceType != "":
		resources, err = s.storage.GetResourcesByType(ctx, resourceType)
	case status != "":
		resources, err = s.storage.GetResourcesByStatus(ctx, status)
	default:
		resources, err = s.storage.GetResources(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list resources from storage")
		return nil, fmt.Errorf("service: could not list resources: %w", err)
	}
	return resources, nil
}

// GetResource получает обогащенный ресурс по ID
func (s *coordinationService) GetResource(ctx context.Context, id string) (*models.ResourceWithIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "GetResource",
		"resource_id": id,
	})

	resource, err := s.storage.GetResource(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get resource from storage")
		return nil, fmt.Errorf("service: could not get resource: %w", err)
	}
	return resource, nil
}

// CreateResource создает ресурс, проверяя инвариант 0 <= available <= quantity
func (s *coordinationService) CreateResource(ctx context.Context, resource *models.Resource) (*models.ResourceWithIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "CreateResource",
		"name":    resource.Name,
	})
	log.Info("Attempting to create a new resource")

	if resource.Status == "" {
		resource.Status = models.ResourceStatusAvailable
	}
	if resource.Available < 0 || resource.Available > resource.Quantity {
		log.Warn("Resource quantity invariant violated on create")
		return nil, ErrInvalidResourceQuantity
	}

	if err := s.storage.CreateResource(ctx, resource); err != nil {
		log.WithError(err).Error("Failed to create resource in storage")
		return nil, fmt.Errorf("service: could not create resource: %w", err)
	}

	enriched, err := s.storage.GetResource(ctx, resource.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load created resource")
		return nil, fmt.Errorf("service: could not load created resource: %w", err)
	}

	log.WithField("resource_id", resource.ID).Info("Resource created successfully")
	s.publish(ctx, log, broadcast.EventResourceCreated, enriched)
	return enriched, nil
}

// UpdateResource применяет частичное обновление. Инвариант количества
// проверяется по результату слияния, до записи в хранилище.
func (s *coordinationService) UpdateResource(ctx context.Context, id string, upd models.ResourceUpdate) (*models.ResourceWithIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "UpdateResource",
		"resource_id": id,
	})
	log.Info("Attempting to update resource")

	current, err := s.storage.GetResource(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get resource for update")
		return nil, fmt.Errorf("service: could not get resource for update: %w", err)
	}

	quantity := current.Quantity
	available := current.Available
	if upd.Quantity != nil {
		quantity = *upd.Quantity
	}
	if upd.Available != nil {
		available = *upd.Available
	}
	if available < 0 || available > quantity {
		log.Warn("Resource quantity invariant violated on update")
		return nil, ErrInvalidResourceQuantity
	}

	if _, err := s.storage.UpdateResource(ctx, id, upd); err != nil {
		log.WithError(err).Warn("Failed to update resource in storage")
		return nil, fmt.Errorf("service: could not update resource: %w", err)
	}

	enriched, err := s.storage.GetResource(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load updated resource")
		return nil, fmt.Errorf("service: could not load updated resource: %w", err)
	}

	log.Info("Resource updated successfully")
	s.publish(ctx, log, broadcast.EventResourceUpdated, enriched)
	return enriched, nil
}
