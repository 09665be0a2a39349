package repository

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crisis_coordination_system/internal/models"
)

// MemoryStorage - резервная in-memory реализация шлюза персистентности.
// Используется, когда документная бд недоступна на старте процесса.
// Обогащение и упорядочивание совпадают с документной реализацией.
type MemoryStorage struct {
	mu          sync.RWMutex
	users       map[string]*models.User
	incidents   map[string]*models.Incident
	resources   map[string]*models.Resource
	messages    map[string]*models.Message
	assignments map[string]*models.VolunteerAssignment
}

// NewMemoryStorage создает хранилище, наполненное фиксированным
// демонстрационным набором: 2 пользователя, 1 инцидент, 1 ресурс, 1 сообщение
func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{
		users:       make(map[string]*models.User),
		incidents:   make(map[string]*models.Incident),
		resources:   make(map[string]*models.Resource),
		messages:    make(map[string]*models.Message),
		assignments: make(map[string]*models.VolunteerAssignment),
	}
	s.seed()
	return s
}

func (s *MemoryStorage) seed() {
	now := time.Now()

	admin := &models.User{
		ID:        uuid.NewString(),
		Username:  "admin",
		Password:  "password123",
		Role:      models.RoleGovernment,
		Name:      "Emergency Coordinator",
		Email:     "admin@disastercare.gov",
		Phone:     "+1-555-0001",
		Location:  "Emergency Operations Center",
		IsSpoc:    true,
		CreatedAt: now,
	}
	volunteer := &models.User{
		ID:        uuid.NewString(),
		Username:  "john_volunteer",
		Password:  "password123",
		Role:      models.RoleVolunteer,
		Name:      "John Smith",
		Email:     "john@email.com",
		Phone:     "+1-555-0002",
		Location:  "Downtown District",
		CreatedAt: now,
	}
	s.users[admin.ID] = admin
	s.users[volunteer.ID] = volunteer

	incident := &models.Incident{
		ID:            uuid.NewString(),
		Title:         "Flood Emergency - Downtown Area",
		Description:   "Severe flooding affecting 200+ residents",
		Location:      "Downtown District",
		Priority:      models.PriorityHigh,
		Status:        models.IncidentStatusActive,
		Type:          "flood",
		AffectedCount: 200,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.incidents[incident.ID] = incident

	resource := &models.Resource{
		ID:        uuid.NewString(),
		Name:      "Emergency Medical Supplies",
		Type:      "medical",
		Quantity:  500,
		Available: 350,
		Location:  "Central Hospital",
		Status:    models.ResourceStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.resources[resource.ID] = resource

	message := &models.Message{
		ID:        uuid.NewString(),
		Content:   "Emergency shelter established at Community Center",
		SenderID:  admin.ID,
		CreatedAt: now,
	}
	s.messages[message.ID] = message
}

// Пользователи

func (s *MemoryStorage) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return cloneUser(user), nil
}

func (s *MemoryStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *MemoryStorage) UpdateUser(_ context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if upd.IsSpoc != nil {
		user.IsSpoc = *upd.IsSpoc
	}
	return cloneUser(user), nil
}

func (s *MemoryStorage) GetUsersByRole(_ context.Context, role string) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*models.User, 0)
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, cloneUser(user))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

// Инциденты

func (s *MemoryStorage) GetIncidents(ctx context.Context) ([]*models.IncidentWithUsers, error) {
	return s.listIncidents(func(*models.Incident) bool { return true })
}

func (s *MemoryStorage) GetIncidentsByStatus(_ context.Context, status string) ([]*models.IncidentWithUsers, error) {
	return s.listIncidents(func(i *models.Incident) bool { return i.Status == status })
}

func (s *MemoryStorage) GetIncidentsByPriority(_ context.Context, priority string) ([]*models.IncidentWithUsers, error) {
	return s.listIncidents(func(i *models.Incident) bool { return i.Priority == priority })
}

func (s *MemoryStorage) listIncidents(match func(*models.Incident) bool) ([]*models.IncidentWithUsers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	incidents := make([]*models.IncidentWithUsers, 0)
	for _, incident := range s.incidents {
		if match(incident) {
			incidents = append(incidents, s.enrichIncident(incident))
		}
	}
	sort.Slice(incidents, func(i, j int) bool { return incidents[i].CreatedAt.After(incidents[j].CreatedAt) })
	return incidents, nil
}

func (s *MemoryStorage) GetIncident(_ context.Context, id string) (*models.IncidentWithUsers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	incident, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident %s: %w", id, ErrNotFound)
	}
	return s.enrichIncident(incident), nil
}

func (s *MemoryStorage) CreateIncident(_ context.Context, incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	incident.ID = uuid.NewString()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	s.incidents[incident.ID] = cloneIncident(incident)
	return nil
}

func (s *MemoryStorage) UpdateIncident(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	incident, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident %s: %w", id, ErrNotFound)
	}
	if upd.Title != nil {
		incident.Title = *upd.Title
	}
	if upd.Description != nil {
		incident.Description = *upd.Description
	}
	if upd.Location != nil {
		incident.Location = *upd.Location
	}
	if upd.Coordinates != nil {
		c := *upd.Coordinates
		incident.Coordinates = &c
	}
	if upd.Priority != nil {
		incident.Priority = *upd.Priority
	}
	if upd.Status != nil {
		incident.Status = *upd.Status
	}
	if upd.Type != nil {
		incident.Type = *upd.Type
	}
	if upd.ReportedBy != nil {
		incident.ReportedBy = *upd.ReportedBy
	}
	if upd.AssignedTo != nil {
		incident.AssignedTo = *upd.AssignedTo
	}
	if upd.SpocID != nil {
		incident.SpocID = *upd.SpocID
	}
	if upd.AffectedCount != nil {
		incident.AffectedCount = *upd.AffectedCount
	}
	incident.UpdatedAt = time.Now()
	return cloneIncident(incident), nil
}

// Ресурсы

func (s *MemoryStorage) GetResources(ctx context.Context) ([]*models.ResourceWithIncident, error) {
	return s.listResources(func(*models.Resource) bool { return true })
}

func (s *MemoryStorage) GetResourcesByType(_ context.Context, resourceType string) ([]*models.ResourceWithIncident, error) {
	return s.listResources(func(r *models.Resource) bool { return r.Type == resourceType })
}

func (s *MemoryStorage) GetResourcesByStatus(_ context.Context, status string) ([]*models.ResourceWithIncident, error) {
	return s.listResources(func(r *models.Resource) bool { return r.Status == status })
}

func (s *MemoryStorage) listResources(match func(*models.Resource) bool) ([]*models.ResourceWithIncident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resources := make([]*models.ResourceWithIncident, 0)
	for _, resource := range s.resources {
		if match(resource) {
			resources = append(resources, s.enrichResource(resource))
		}
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].CreatedAt.After(resources[j].CreatedAt) })
	return resources, nil
}

func (s *MemoryStorage) GetResource(_ context.Context, id string) (*models.ResourceWithIncident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resource, ok := s.resources[id]
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	return s.enrichResource(resource), nil
}

func (s *MemoryStorage) CreateResource(_ context.Context, resource *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	resource.ID = uuid.NewString()
	resource.CreatedAt = now
	resource.UpdatedAt = now
	s.resources[resource.ID] = cloneResource(resource)
	return nil
}

func (s *MemoryStorage) UpdateResource(_ context.Context, id string, upd models.ResourceUpdate) (*models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource, ok := s.resources[id]
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	if upd.Name != nil {
		resource.Name = *upd.Name
	}
	if upd.Type != nil {
		resource.Type = *upd.Type
	}
	if upd.Quantity != nil {
		resource.Quantity = *upd.Quantity
	}
	if upd.Available != nil {
		resource.Available = *upd.Available
	}
	if upd.Location != nil {
		resource.Location = *upd.Location
	}
	if upd.Status != nil {
		resource.Status = *upd.Status
	}
	if upd.AssignedIncident != nil {
		resource.AssignedIncident = *upd.AssignedIncident
	}
	if upd.ETAMinutes != nil {
		eta := *upd.ETAMinutes
		resource.ETAMinutes = &eta
	}
	resource.UpdatedAt = time.Now()
	return cloneResource(resource), nil
}

// Сообщения

func (s *MemoryStorage) GetMessages(_ context.Context, incidentID string) ([]*models.MessageWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listMessages(func(m *models.Message) bool { return m.IncidentID == incidentID }, 0)
}

func (s *MemoryStorage) GetRecentMessages(_ context.Context, limit int) ([]*models.MessageWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listMessages(func(*models.Message) bool { return true }, limit)
}

// listMessages возвращает сообщения новыми вперед; limit 0 - без ограничения.
// Вызывается под блокировкой чтения.
func (s *MemoryStorage) listMessages(match func(*models.Message) bool, limit int) ([]*models.MessageWithUser, error) {
	filtered := make([]*models.Message, 0)
	for _, message := range s.messages {
		if match(message) {
			filtered = append(filtered, message)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	messages := make([]*models.MessageWithUser, 0, len(filtered))
	for _, message := range filtered {
		enriched, err := s.enrichMessage(message)
		if err != nil {
			return nil, err
		}
		messages = append(messages, enriched)
	}
	return messages, nil
}

func (s *MemoryStorage) GetMessage(_ context.Context, id string) (*models.MessageWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	message, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return s.enrichMessage(message)
}

func (s *MemoryStorage) CreateMessage(_ context.Context, message *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.ID = uuid.NewString()
	message.CreatedAt = time.Now()
	s.messages[message.ID] = cloneMessage(message)
	return nil
}

// Назначения волонтеров

func (s *MemoryStorage) GetVolunteerAssignments(_ context.Context, volunteerID, incidentID string) ([]*models.AssignmentWithRefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignments := make([]*models.AssignmentWithRefs, 0)
	for _, assignment := range s.assignments {
		if volunteerID != "" && assignment.VolunteerID != volunteerID {
			continue
		}
		if incidentID != "" && assignment.IncidentID != incidentID {
			continue
		}
		assignments = append(assignments, s.enrichAssignment(assignment))
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].AssignedAt.After(assignments[j].AssignedAt) })
	return assignments, nil
}

func (s *MemoryStorage) GetVolunteerAssignment(_ context.Context, id string) (*models.AssignmentWithRefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignment, ok := s.assignments[id]
	if !ok {
		return nil, fmt.Errorf("volunteer assignment %s: %w", id, ErrNotFound)
	}
	return s.enrichAssignment(assignment), nil
}

func (s *MemoryStorage) CreateVolunteerAssignment(_ context.Context, assignment *models.VolunteerAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment.ID = uuid.NewString()
	assignment.AssignedAt = time.Now()
	clone := *assignment
	s.assignments[assignment.ID] = &clone
	return nil
}

func (s *MemoryStorage) UpdateVolunteerAssignment(_ context.Context, id string, upd models.AssignmentUpdate) (*models.VolunteerAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment, ok := s.assignments[id]
	if !ok {
		return nil, fmt.Errorf("volunteer assignment %s: %w", id, ErrNotFound)
	}
	if upd.Role != nil {
		assignment.Role = *upd.Role
	}
	if upd.Status != nil {
		assignment.Status = *upd.Status
	}
	clone := *assignment
	return &clone, nil
}

// Статистика

func (s *MemoryStorage) GetDashboardStats(_ context.Context) (*models.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := time.Now()
	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	stats := &models.DashboardStats{}
	for _, incident := range s.incidents {
		switch incident.Status {
		case models.IncidentStatusActive, models.IncidentStatusInProgress:
			stats.ActiveIncidents++
		case models.IncidentStatusResolved:
			if !incident.UpdatedAt.Before(startOfDay) {
				stats.ResolvedToday++
			}
		}
	}
	for _, user := range s.users {
		if user.Role == models.RoleVolunteer {
			stats.ActiveVolunteers++
		}
	}
	total := len(s.resources)
	if total > 0 {
		deployed := 0
		for _, resource := range s.resources {
			if resource.Status == models.ResourceStatusDeployed {
				deployed++
			}
		}
		stats.ResourcesAllocated = int(math.Round(float64(deployed) / float64(total) * 100))
	}
	return stats, nil
}

// Обогащение. Вызывается под блокировкой чтения.

func (s *MemoryStorage) enrichIncident(incident *models.Incident) *models.IncidentWithUsers {
	return &models.IncidentWithUsers{
		Incident:       *cloneIncident(incident),
		ReportedByUser: s.users[incident.ReportedBy].Summary(),
		AssignedToUser: s.users[incident.AssignedTo].Summary(),
		SpocUser:       s.users[incident.SpocID].Summary(),
	}
}

func (s *MemoryStorage) enrichResource(resource *models.Resource) *models.ResourceWithIncident {
	return &models.ResourceWithIncident{
		Resource: *cloneResource(resource),
		Incident: s.incidents[resource.AssignedIncident].Summary(),
	}
}

func (s *MemoryStorage) enrichMessage(message *models.Message) (*models.MessageWithUser, error) {
	enriched := &models.MessageWithUser{Message: *cloneMessage(message)}
	if message.SenderID != "" {
		sender, ok := s.users[message.SenderID]
		if !ok {
			return nil, fmt.Errorf("message %s references unknown sender %s: %w", message.ID, message.SenderID, ErrDataIntegrity)
		}
		enriched.Sender = sender.Summary()
	}
	return enriched, nil
}

func (s *MemoryStorage) enrichAssignment(assignment *models.VolunteerAssignment) *models.AssignmentWithRefs {
	clone := *assignment
	return &models.AssignmentWithRefs{
		VolunteerAssignment: clone,
		Volunteer:           s.users[assignment.VolunteerID].Summary(),
		Incident:            s.incidents[assignment.IncidentID].Summary(),
	}
}

// Клоны защищают внутреннее состояние от мутаций через возвращенные указатели

func cloneUser(u *models.User) *models.User {
	clone := *u
	return &clone
}

func cloneIncident(i *models.Incident) *models.Incident {
	clone := *i
	if i.Coordinates != nil {
		c := *i.Coordinates
		clone.Coordinates = &c
	}
	return &clone
}

func cloneResource(r *models.Resource) *models.Resource {
	clone := *r
	if r.ETAMinutes != nil {
		eta := *r.ETAMinutes
		clone.ETAMinutes = &eta
	}
	return &clone
}

func cloneMessage(m *models.Message) *models.Message {
	clone := *m
	return &clone
}
