package models

import "time"

// Статусы ресурса
const (
	ResourceStatusAvailable = "available"
	ResourceStatusDeployed  = "deployed"
	ResourceStatusCritical  = "critical"
)

// Resource - материальный или кадровый ресурс.
// Инвариант: 0 <= Available <= Quantity.
type Resource struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Quantity         int       `json:"quantity"`
	Available        int       `json:"available"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	AssignedIncident string    `json:"assigned_incident,omitempty"`
	ETAMinutes       *int      `json:"eta,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ResourceWithIncident - ресурс, обогащенный данными привязанного инцидента
type ResourceWithIncident struct {
	Resource
	Incident *IncidentSummary `json:"incident,omitempty"`
}

// ResourceUpdate - частичное обновление, nil-поля не изменяются
type ResourceUpdate struct {
	Name             *string `json:"name,omitempty"`
	Type             *string `json:"type,omitempty"`
	Quantity         *int    `json:"quantity,omitempty"`
	Available        *int    `json:"available,omitempty"`
	Location         *string `json:"location,omitempty"`
	Status           *string `json:"status,omitempty"`
	AssignedIncident *string `json:"assigned_incident,omitempty"`
	ETAMinutes       *int    `json:"eta,omitempty"`
}
