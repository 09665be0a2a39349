package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/shenikar/crisis_coordination_system/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListMessages_DefaultLimit(t *testing.T) {
	// Подготовка
	service, storageMock, _ := newTestCoordinationService(t)
	ctx := context.Background()
	expected := []*models.MessageWithUser{
		{Message: models.Message{ID: "msg-1", Content: "Штаб развернут"}},
	}

	// Ожидания: без incident_id и limit используется лимит по умолчанию
	storageMock.EXPECT().GetRecentMessages(ctx, defaultMessageLimit).Return(expected, nil).Times(1)

	// Действие
	messages, err := service.ListMessages(ctx, "", 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestListMessages_ByIncident(t *testing.T) {
	// Подготовка
	service, storageMock, _ := newTestCoordinationService(t)
	ctx := context.Background()
	expected := []*models.MessageWithUser{
		{Message: models.Message{ID: "msg-2", IncidentID: "inc-1"}},
	}

	// Ожидания: фильтр по инциденту игнорирует limit
	storageMock.EXPECT().GetMessages(ctx, "inc-1").Return(expected, nil).Times(1)

	// Действие
	messages, err := service.ListMessages(ctx, "inc-1", 10)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestCreateMessage_BroadcastsEnriched(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	messageToCreate := &models.Message{Content: "Нужна вода", SenderID: "user-1"}
	enriched := &models.MessageWithUser{
		Message: models.Message{ID: "msg-1", Content: "Нужна вода", SenderID: "user-1"},
		Sender:  &models.UserSummary{ID: "user-1", Name: "Мария"},
	}

	// Ожидания
	storageMock.EXPECT().
		GetUser(ctx, "user-1").
		Return(&models.User{ID: "user-1", Name: "Мария"}, nil).
		Times(1)
	storageMock.EXPECT().
		CreateMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) error {
			msg.ID = "msg-1"
			return nil
		}).Times(1)
	storageMock.EXPECT().GetMessage(ctx, "msg-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event broadcast.Event) {
			assert.Equal(t, broadcast.EventMessageCreated, event.Kind)
			assert.Equal(t, enriched, event.Data)
		}).Return(nil).Times(1)

	// Действие
	created, err := service.CreateMessage(ctx, messageToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, created)
}

func TestCreateMessage_UnknownSenderRejected(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	messageToCreate := &models.Message{Content: "Призрак", SenderID: "no-such-user"}

	// Ожидания: несуществующий отправитель отклоняется до записи,
	// иначе сообщение навсегда ломало бы чтение ленты
	storageMock.EXPECT().
		GetUser(ctx, "no-such-user").
		Return(nil, fmt.Errorf("user no-such-user: %w", repository.ErrNotFound)).
		Times(1)
	storageMock.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	created, err := service.CreateMessage(ctx, messageToCreate)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateMessage_EmptySenderAllowed(t *testing.T) {
	// Подготовка: анонимное системное сообщение без отправителя
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	enriched := &models.MessageWithUser{
		Message: models.Message{ID: "msg-1", Content: "Система запущена"},
	}

	// Ожидания: без sender_id проверка пользователя не выполняется
	storageMock.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)
	storageMock.EXPECT().
		CreateMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) error {
			msg.ID = "msg-1"
			return nil
		}).Times(1)
	storageMock.EXPECT().GetMessage(ctx, "msg-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	created, err := service.CreateMessage(ctx, &models.Message{Content: "Система запущена"})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, created)
}

func TestCreateAssignment_DefaultStatusAndBroadcast(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	assignmentToCreate := &models.VolunteerAssignment{
		VolunteerID: "user-2",
		IncidentID:  "inc-1",
		Role:        "rescue",
	}
	enriched := &models.AssignmentWithRefs{
		VolunteerAssignment: models.VolunteerAssignment{ID: "asg-1", Status: models.AssignmentStatusAssigned},
	}

	// Ожидания
	storageMock.EXPECT().
		CreateVolunteerAssignment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, asg *models.VolunteerAssignment) error {
			asg.ID = "asg-1"
			return nil
		}).Times(1)
	storageMock.EXPECT().GetVolunteerAssignment(ctx, "asg-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event broadcast.Event) {
			assert.Equal(t, broadcast.EventVolunteerAssigned, event.Kind)
		}).Return(nil).Times(1)

	// Действие
	created, err := service.CreateAssignment(ctx, assignmentToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, created)
	assert.Equal(t, models.AssignmentStatusAssigned, assignmentToCreate.Status)
}

func TestUpdateAssignment_NoBroadcast(t *testing.T) {
	// Подготовка
	service, storageMock, publisherMock := newTestCoordinationService(t)
	ctx := context.Background()
	newStatus := models.AssignmentStatusCompleted
	upd := models.AssignmentUpdate{Status: &newStatus}
	enriched := &models.AssignmentWithRefs{
		VolunteerAssignment: models.VolunteerAssignment{ID: "asg-1", Status: models.AssignmentStatusCompleted},
	}

	// Ожидания
	storageMock.EXPECT().
		UpdateVolunteerAssignment(ctx, "asg-1", upd).
		Return(&enriched.VolunteerAssignment, nil).
		Times(1)
	storageMock.EXPECT().GetVolunteerAssignment(ctx, "asg-1").Return(enriched, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	updated, err := service.UpdateAssignment(ctx, "asg-1", upd)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, enriched, updated)
}

func TestGetDashboardStats_Passthrough(t *testing.T) {
	// Подготовка
	service, storageMock, _ := newTestCoordinationService(t)
	ctx := context.Background()
	expected := &models.DashboardStats{
		ActiveIncidents:    3,
		ActiveVolunteers:   7,
		ResourcesAllocated: 50,
		ResolvedToday:      1,
	}

	// Ожидания
	storageMock.EXPECT().GetDashboardStats(ctx).Return(expected, nil).Times(1)

	// Действие
	stats, err := service.GetDashboardStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
