package broadcast

import "context"

// Виды событий реального времени
const (
	EventIncidentCreated   = "incident_created"
	EventIncidentUpdated   = "incident_updated"
	EventResourceCreated   = "resource_created"
	EventResourceUpdated   = "resource_updated"
	EventMessageCreated    = "message_created"
	EventUserCreated       = "user_created"
	EventVolunteerAssigned = "volunteer_assigned"
)

// Event - помеченное событие для рассылки по каналу реального времени.
// Data - полная обогащенная сущность, породившая событие.
type Event struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// EventPublisher - интерфейс для публикации событий всем открытым соединениям
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
