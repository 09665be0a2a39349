package service

import (
	"context"
	"testing"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateResource_DefaultStatusAndBroadcast(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	resourceToCreate := &models.Resource{
		Name:      "Вода",
		Type:      "water",
		Quantity:  10,
		Available: 10,
		Location:  "Склад",
	}
	enriched := &models.ResourceWithIncident{
		Resource: models.Resource{ID: "res-1", Name: "Вода", Status: models.ResourceStatusAvailable},
	}

	// Ожидания
	storageMock.EXPECT().
		CreateResource(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, res *models.Resource) error {
			res.ID = "res-1"
			return nil
		}).Times(1)
	storageMock.EXPECT().GetResource(ctx, "res-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event broadcast.Event) {
			assert.Equal(t, broadcast.EventResourceCreated, event.Kind)
		}).Return(nil).Times(1)

	// Действие
	created, err := service.CreateResource(ctx, resourceToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, created)
	assert.Equal(t, models.ResourceStatusAvailable, resourceToCreate.Status)
}

func TestCreateResource_InvariantViolation(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	resourceToCreate := &models.Resource{
		Name:      "Генераторы",
		Type:      "equipment",
		Quantity:  5,
		Available: 8, // больше, чем quantity
	}

	// Ожидания: до хранилища и рассылки дело не доходит
	storageMock.EXPECT().CreateResource(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	created, err := service.CreateResource(ctx, resourceToCreate)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrInvalidResourceQuantity)
}

func TestUpdateResource_InvariantCheckedAfterMerge(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	current := &models.ResourceWithIncident{
		Resource: models.Resource{ID: "res-1", Quantity: 10, Available: 4},
	}
	newAvailable := 12 // превышает текущее quantity после слияния
	upd := models.ResourceUpdate{Available: &newAvailable}

	// Ожидания
	storageMock.EXPECT().GetResource(ctx, "res-1").Return(current, nil).Times(1)
	storageMock.EXPECT().UpdateResource(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, err := service.UpdateResource(ctx, "res-1", upd)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrInvalidResourceQuantity)
}

func TestUpdateResource_Success(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	current := &models.ResourceWithIncident{
		Resource: models.Resource{ID: "res-1", Quantity: 10, Available: 10},
	}
	newAvailable := 3
	newStatus := models.ResourceStatusCritical
	upd := models.ResourceUpdate{Available: &newAvailable, Status: &newStatus}
	enriched := &models.ResourceWithIncident{
		Resource: models.Resource{ID: "res-1", Quantity: 10, Available: 3, Status: models.ResourceStatusCritical},
	}

	// Ожидания
	storageMock.EXPECT().GetResource(ctx, "res-1").Return(current, nil).Times(1)
	storageMock.EXPECT().
		UpdateResource(ctx, "res-1", upd).
		Return(&enriched.Resource, nil).
		Times(1)
	storageMock.EXPECT().GetResource(ctx, "res-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event broadcast.Event) {
			assert.Equal(t, broadcast.EventResourceUpdated, event.Kind)
		}).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateResource(ctx, "res-1", upd)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Available)
	assert.Equal(t, models.ResourceStatusCritical, updated.Status)
}

func TestListResources_TypeFilterWins(t *testing.T) {
	// Подготовка
	service, storageMock, _ := newTestCoordinationService(t)
	ctx := context.Background()
	expected := []*models.ResourceWithIncident{
		{Resource: models.Resource{ID: "res-1", Type: "medical"}},
	}

	// Ожидания
	storageMock.EXPECT().GetResourcesByType(ctx, "medical").Return(expected, nil).Times(1)

	// Действие
	resources, err := service.ListResources(ctx, "medical", models.ResourceStatusAvailable)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, resources)
}
