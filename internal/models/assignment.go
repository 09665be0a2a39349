package models

import "time"

// Статусы назначения волонтера
const (
	AssignmentStatusAssigned  = "assigned"
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
)

// VolunteerAssignment связывает ровно одного волонтера с ровно одним инцидентом
type VolunteerAssignment struct {
	ID          string    `json:"id"`
	VolunteerID string    `json:"volunteer_id"`
	IncidentID  string    `json:"incident_id"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// AssignmentWithRefs - назначение, обогащенное проекциями волонтера и инцидента
type AssignmentWithRefs struct {
	VolunteerAssignment
	Volunteer *UserSummary     `json:"volunteer,omitempty"`
	Incident  *IncidentSummary `json:"incident,omitempty"`
}

// AssignmentUpdate - частичное обновление, nil-поля не изменяются
type AssignmentUpdate struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}
