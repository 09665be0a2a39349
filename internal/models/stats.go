package models

// DashboardStats - производная статистика для панели координации.
// ResourcesAllocated - процент ресурсов в статусе deployed от общего числа (0 при отсутствии ресурсов).
type DashboardStats struct {
	ActiveIncidents    int `json:"activeIncidents"`
	ActiveVolunteers   int `json:"activeVolunteers"`
	ResourcesAllocated int `json:"resourcesAllocated"`
	ResolvedToday      int `json:"resolvedToday"`
}
