package service

import (
	"context"
	"errors"

	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Ошибки бизнес-логики, транслируемые хендлерами в клиентские ответы
var (
	ErrInvalidResourceQuantity = errors.New("available quantity must be between 0 and total quantity")
	ErrUsernameTaken           = errors.New("username is already taken")
)

// Storage определяет контракт шлюза персистентности. Реализации (документная бд
// и in-memory) взаимозаменяемы и выбираются один раз при старте процесса.
type Storage interface {
	// Пользователи.
	// GetUserByUsername возвращает (nil, nil), когда пользователя нет:
	// отсутствие username - нормальный исход проверки уникальности.
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]*models.User, error)

	// Инциденты
	GetIncidents(ctx context.Context) ([]*models.IncidentWithUsers, error)
	GetIncident(ctx context.Context, id string) (*models.IncidentWithUsers, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error)
	GetIncidentsByStatus(ctx context.Context, status string) ([]*models.IncidentWithUsers, error)
	GetIncidentsByPriority(ctx context.Context, priority string) ([]*models.IncidentWithUsers, error)

	// Ресурсы
	GetResources(ctx context.Context) ([]*models.ResourceWithIncident, error)
	GetResource(ctx context.Context, id string) (*models.ResourceWithIncident, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
	UpdateResource(ctx context.Context, id string, upd models.ResourceUpdate) (*models.Resource, error)
	GetResourcesByType(ctx context.Context, resourceType string) ([]*models.ResourceWithIncident, error)
	GetResourcesByStatus(ctx context.Context, status string) ([]*models.ResourceWithIncident, error)

	// Сообщения
	GetMessages(ctx context.Context, incidentID string) ([]*models.MessageWithUser, error)
	GetRecentMessages(ctx context.Context, limit int) ([]*models.MessageWithUser, error)
	GetMessage(ctx context.Context, id string) (*models.MessageWithUser, error)
	CreateMessage(ctx context.Context, message *models.Message) error

	// Назначения волонтеров
	GetVolunteerAssignments(ctx context.Context, volunteerID, incidentID string) ([]*models.AssignmentWithRefs, error)
	GetVolunteerAssignment(ctx context.Context, id string) (*models.AssignmentWithRefs, error)
	CreateVolunteerAssignment(ctx context.Context, assignment *models.VolunteerAssignment) error
	UpdateVolunteerAssignment(ctx context.Context, id string, upd models.AssignmentUpdate) (*models.VolunteerAssignment, error)

	// Статистика панели
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// CoordinationService определяет контракт бизнес-логики координации инцидентов
type CoordinationService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]*models.User, error)

	ListIncidents(ctx context.Context, status, priority string) ([]*models.IncidentWithUsers, error)
	GetIncident(ctx context.Context, id string) (*models.IncidentWithUsers, error)
	CreateIncident(ctx context.Context, incident *models.Incident) (*models.IncidentWithUsers, error)
	UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.IncidentWithUsers, error)

	ListResources(ctx context.Context, resourceType, status string) ([]*models.ResourceWithIncident, error)
	GetResource(ctx context.Context, id string) (*models.ResourceWithIncident, error)
	CreateResource(ctx context.Context, resource *models.Resource) (*models.ResourceWithIncident, error)
	UpdateResource(ctx context.Context, id string, upd models.ResourceUpdate) (*models.ResourceWithIncident, error)

	ListMessages(ctx context.Context, incidentID string, limit int) ([]*models.MessageWithUser, error)
	CreateMessage(ctx context.Context, message *models.Message) (*models.MessageWithUser, error)

	ListAssignments(ctx context.Context, volunteerID, incidentID string) ([]*models.AssignmentWithRefs, error)
	CreateAssignment(ctx context.Context, assignment *models.VolunteerAssignment) (*models.AssignmentWithRefs, error)
	UpdateAssignment(ctx context.Context, id string, upd models.AssignmentUpdate) (*models.AssignmentWithRefs, error)

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type coordinationService struct {
	storage   Storage
	logger    *logrus.Logger
	publisher broadcast.EventPublisher
}

func NewCoordinationService(storage Storage, logger *logrus.Logger, publisher broadcast.EventPublisher) CoordinationService {
	return &coordinationService{
		storage:   storage,
		logger:    logger,
		publisher: publisher,
	}
}

// publish рассылает событие всем открытым соединениям. Доставка best-effort:
// ошибка публикации логируется и не доходит до вызвавшего мутацию клиента.
func (s *coordinationService) publish(ctx context.Context, log *logrus.Entry, kind string, data any) {
	if err := s.publisher.Publish(ctx, broadcast.Event{Kind: kind, Data: data}); err != nil {
		log.WithError(err).Warn("Failed to publish realtime event")
	}
}
