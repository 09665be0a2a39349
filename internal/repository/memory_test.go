package repository

import (
	"context"
	"testing"

	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SeedDataset(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()

	// Действие и проверки: резервный набор содержит 2 пользователя,
	// 1 инцидент, 1 ресурс, 1 сообщение
	admin, err := storage.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleGovernment, admin.Role)
	assert.True(t, admin.IsSpoc)

	volunteers, err := storage.GetUsersByRole(ctx, models.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, volunteers, 1)
	assert.Equal(t, "john_volunteer", volunteers[0].Username)

	incidents, err := storage.GetIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "Flood Emergency - Downtown Area", incidents[0].Title)
	assert.Equal(t, models.IncidentStatusActive, incidents[0].Status)
	assert.Equal(t, models.PriorityHigh, incidents[0].Priority)

	resources, err := storage.GetResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, 500, resources[0].Quantity)
	assert.Equal(t, 350, resources[0].Available)

	messages, err := storage.GetRecentMessages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	// Отправитель затравочного сообщения разрешается в администратора
	require.NotNil(t, messages[0].Sender)
	assert.Equal(t, "admin", messages[0].Sender.Username)
}

func TestMemoryStorage_CreateAssignsUniqueIDs(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()

	first := &models.Incident{Title: "Авария на подстанции", Type: "power", Status: models.IncidentStatusActive}
	second := &models.Incident{Title: "Прорыв дамбы", Type: "flood", Status: models.IncidentStatusActive}

	// Действие
	require.NoError(t, storage.CreateIncident(ctx, first))
	require.NoError(t, storage.CreateIncident(ctx, second))

	// Проверки
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	loaded, err := storage.GetIncident(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Авария на подстанции", loaded.Title)
}

func TestMemoryStorage_PartialUpdateMerge(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()
	resource := &models.Resource{
		Name:      "Вода",
		Type:      "water",
		Quantity:  10,
		Available: 10,
		Location:  "Склад",
		Status:    models.ResourceStatusAvailable,
	}
	require.NoError(t, storage.CreateResource(ctx, resource))

	newAvailable := 3
	newStatus := models.ResourceStatusCritical

	// Действие: обновляются только переданные поля
	updated, err := storage.UpdateResource(ctx, resource.ID, models.ResourceUpdate{
		Available: &newAvailable,
		Status:    &newStatus,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Available)
	assert.Equal(t, models.ResourceStatusCritical, updated.Status)
	assert.Equal(t, "Вода", updated.Name)
	assert.Equal(t, 10, updated.Quantity)

	loaded, err := storage.GetResource(ctx, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Available)
	assert.Equal(t, models.ResourceStatusCritical, loaded.Status)
}

func TestMemoryStorage_NotFound(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()

	// Действие и проверки: все операции по несуществующему ID
	// возвращают сентинель ErrNotFound
	_, err := storage.GetIncident(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = storage.UpdateIncident(ctx, "missing", models.IncidentUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = storage.GetResource(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = storage.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = storage.UpdateVolunteerAssignment(ctx, "missing", models.AssignmentUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_MessagesOrderedNewestFirst(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()
	incident := &models.Incident{Title: "Пожар", Type: "fire", Status: models.IncidentStatusActive}
	require.NoError(t, storage.CreateIncident(ctx, incident))

	first := &models.Message{Content: "Первое", IncidentID: incident.ID}
	second := &models.Message{Content: "Второе", IncidentID: incident.ID}
	other := &models.Message{Content: "Другой инцидент"}
	require.NoError(t, storage.CreateMessage(ctx, first))
	require.NoError(t, storage.CreateMessage(ctx, second))
	require.NoError(t, storage.CreateMessage(ctx, other))

	// Действие
	messages, err := storage.GetMessages(ctx, incident.ID)

	// Проверки: только сообщения инцидента, новые первыми
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Второе", messages[0].Content)
	assert.Equal(t, "Первое", messages[1].Content)

	// Лимит применяется к общему списку
	recent, err := storage.GetRecentMessages(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestMemoryStorage_MessageUnknownSenderIsIntegrityError(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()
	message := &models.Message{Content: "Призрак", SenderID: "missing-user"}
	require.NoError(t, storage.CreateMessage(ctx, message))

	// Действие
	_, err := storage.GetRecentMessages(ctx, 10)

	// Проверки: неразрешимый отправитель фатален для чтения
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestMemoryStorage_DashboardStats(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()

	// Сид: 1 активный инцидент, 1 волонтер, 1 ресурс со статусом available.
	// Добавляем развернутый ресурс и разрешенный сегодня инцидент.
	deployed := &models.Resource{
		Name: "Машины", Type: "transport", Quantity: 4, Available: 0,
		Location: "База", Status: models.ResourceStatusDeployed,
	}
	require.NoError(t, storage.CreateResource(ctx, deployed))

	resolved := &models.Incident{Title: "Ликвидировано", Type: "fire", Status: models.IncidentStatusActive}
	require.NoError(t, storage.CreateIncident(ctx, resolved))
	newStatus := models.IncidentStatusResolved
	_, err := storage.UpdateIncident(ctx, resolved.ID, models.IncidentUpdate{Status: &newStatus})
	require.NoError(t, err)

	// Действие
	stats, err := storage.GetDashboardStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveIncidents)
	assert.Equal(t, 1, stats.ActiveVolunteers)
	assert.Equal(t, 50, stats.ResourcesAllocated) // 1 из 2 ресурсов развернут
	assert.Equal(t, 1, stats.ResolvedToday)
}

func TestMemoryStorage_AssignmentFiltersAndEnrichment(t *testing.T) {
	// Подготовка
	storage := NewMemoryStorage()
	ctx := context.Background()

	volunteer, err := storage.GetUserByUsername(ctx, "john_volunteer")
	require.NoError(t, err)
	incidents, err := storage.GetIncidents(ctx)
	require.NoError(t, err)
	incidentID := incidents[0].ID

	assignment := &models.VolunteerAssignment{
		VolunteerID: volunteer.ID,
		IncidentID:  incidentID,
		Role:        "rescue",
		Status:      models.AssignmentStatusAssigned,
	}
	require.NoError(t, storage.CreateVolunteerAssignment(ctx, assignment))

	// Действие
	byVolunteer, err := storage.GetVolunteerAssignments(ctx, volunteer.ID, "")
	require.NoError(t, err)
	byOther, err := storage.GetVolunteerAssignments(ctx, "other", "")
	require.NoError(t, err)

	// Проверки: фильтры и обогащение проекциями волонтера и инцидента
	require.Len(t, byVolunteer, 1)
	assert.Empty(t, byOther)
	require.NotNil(t, byVolunteer[0].Volunteer)
	assert.Equal(t, "John Smith", byVolunteer[0].Volunteer.Name)
	require.NotNil(t, byVolunteer[0].Incident)
	assert.Equal(t, "Flood Emergency - Downtown Area", byVolunteer[0].Incident.Title)
}
