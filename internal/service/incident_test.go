package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	broadcast_mocks "github.com/shenikar/crisis_coordination_system/internal/broadcast/mocks"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/shenikar/crisis_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCoordinationService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestCoordinationService(t *testing.T) (*coordinationService, *mocks.MockStorage, *broadcast_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	storageMock := mocks.NewMockStorage(ctrl)
	publisherMock := broadcast_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewCoordinationService(storageMock, logger, publisherMock)
	return service.(*coordinationService), storageMock, publisherMock
}

func TestCreateIncident_DefaultsAndBroadcast(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	incidentToCreate := &models.Incident{
		Title:    "Пожар на складе",
		Location: "Промзона",
		Type:     "fire",
	}
	enriched := &models.IncidentWithUsers{
		Incident: models.Incident{ID: "inc-1", Title: "Пожар на складе", Status: models.IncidentStatusActive},
	}

	// Ожидания
	storageMock.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Симулируем, что хранилище присвоило ID
			inc.ID = "inc-1"
			return nil
		}).Times(1)

	storageMock.EXPECT().
		GetIncident(ctx, "inc-1").
		Return(enriched, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event broadcast.Event) {
			assert.Equal(t, broadcast.EventIncidentCreated, event.Kind)
			assert.Equal(t, enriched, event.Data)
		}).Return(nil).Times(1)

	// Действие
	created, err := service.CreateIncident(ctx, incidentToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, created)
	assert.Equal(t, models.IncidentStatusActive, incidentToCreate.Status)
	assert.Equal(t, models.PriorityMedium, incidentToCreate.Priority)
}

func TestCreateIncident_StorageError_NoBroadcast(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	storageErr := fmt.Errorf("запись не удалась")

	// Ожидания
	storageMock.EXPECT().CreateIncident(ctx, gomock.Any()).Return(storageErr).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	created, err := service.CreateIncident(ctx, &models.Incident{Title: "Потоп"})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorContains(t, err, "could not create incident")
}

func TestCreateIncident_PublishFailureDoesNotFailRequest(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	enriched := &models.IncidentWithUsers{Incident: models.Incident{ID: "inc-2"}}

	// Ожидания
	storageMock.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = "inc-2"
			return nil
		}).Times(1)
	storageMock.EXPECT().GetIncident(ctx, "inc-2").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("канал закрыт")).Times(1)

	// Действие
	created, err := service.CreateIncident(ctx, &models.Incident{Title: "Обрушение"})

	// Проверки: ошибка доставки не доходит до вызвавшего мутацию
	require.NoError(t, err)
	assert.Equal(t, enriched, created)
}

func TestUpdateIncident_Success(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	newStatus := models.IncidentStatusResolved
	upd := models.IncidentUpdate{Status: &newStatus}
	enriched := &models.IncidentWithUsers{
		Incident: models.Incident{ID: "inc-1", Status: models.IncidentStatusResolved},
	}

	// Ожидания
	storageMock.EXPECT().
		UpdateIncident(ctx, "inc-1", upd).
		Return(&models.Incident{ID: "inc-1", Status: models.IncidentStatusResolved}, nil).
		Times(1)
	storageMock.EXPECT().GetIncident(ctx, "inc-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event broadcast.Event) {
			assert.Equal(t, broadcast.EventIncidentUpdated, event.Kind)
		}).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateIncident(ctx, "inc-1", upd)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, updated)
}

func TestUpdateIncident_NotFound_NoBroadcast(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	notFound := fmt.Errorf("не найдено")

	// Ожидания
	storageMock.EXPECT().UpdateIncident(ctx, "missing", gomock.Any()).Return(nil, notFound).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, err := service.UpdateIncident(ctx, "missing", models.IncidentUpdate{})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, updated)
}

func TestListIncidents_FilterSelection(t *testing.T) {
	// Подготовка
	service, storageMock, _ := newTestCoordinationService(t)
	ctx := context.Background()
	expected := []*models.IncidentWithUsers{
		{Incident: models.Incident{ID: "inc-1"}},
	}

	// Ожидания: фильтр по статусу имеет приоритет над фильтром по приоритету
	storageMock.EXPECT().GetIncidentsByStatus(ctx, models.IncidentStatusActive).Return(expected, nil).Times(1)
	storageMock.EXPECT().GetIncidentsByPriority(ctx, models.PriorityHigh).Return(expected, nil).Times(1)
	storageMock.EXPECT().GetIncidents(ctx).Return(expected, nil).Times(1)

	// Действие и проверки
	incidents, err := service.ListIncidents(ctx, models.IncidentStatusActive, models.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)

	incidents, err = service.ListIncidents(ctx, "", models.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)

	incidents, err = service.ListIncidents(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}
