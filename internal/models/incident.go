package models

import "time"

// Статусы инцидента
const (
	IncidentStatusActive     = "active"
	IncidentStatusInProgress = "in_progress"
	IncidentStatusResolved   = "resolved"
)

// Приоритеты инцидента
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Coordinates - опциональные географические координаты инцидента
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Incident struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Priority      string       `json:"priority"`
	Status        string       `json:"status"`
	Type          string       `json:"type"`
	ReportedBy    string       `json:"reported_by,omitempty"`
	AssignedTo    string       `json:"assigned_to,omitempty"`
	SpocID        string       `json:"spoc_id,omitempty"`
	AffectedCount int          `json:"affected_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// IncidentSummary - краткая проекция инцидента для обогащения ресурсов и назначений
type IncidentSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// IncidentWithUsers - инцидент, обогащенный данными связанных пользователей
type IncidentWithUsers struct {
	Incident
	ReportedByUser *UserSummary `json:"reported_by_user,omitempty"`
	AssignedToUser *UserSummary `json:"assigned_to_user,omitempty"`
	SpocUser       *UserSummary `json:"spoc_user,omitempty"`
}

// IncidentUpdate - частичное обновление, nil-поля не изменяются
type IncidentUpdate struct {
	Title         *string      `json:"title,omitempty"`
	Description   *string      `json:"description,omitempty"`
	Location      *string      `json:"location,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Priority      *string      `json:"priority,omitempty"`
	Status        *string      `json:"status,omitempty"`
	Type          *string      `json:"type,omitempty"`
	ReportedBy    *string      `json:"reported_by,omitempty"`
	AssignedTo    *string      `json:"assigned_to,omitempty"`
	SpocID        *string      `json:"spoc_id,omitempty"`
	AffectedCount *int         `json:"affected_count,omitempty"`
}

// Summary возвращает краткую проекцию инцидента
func (i *Incident) Summary() *IncidentSummary {
	if i == nil {
		return nil
	}
	return &IncidentSummary{
		ID:       i.ID,
		Title:    i.Title,
		Status:   i.Status,
		Priority: i.Priority,
	}
}
