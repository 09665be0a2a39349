package v1

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title         string       `json:"title" validate:"required,min=2,max=255"`
	Description   string       `json:"description,omitempty"`
	Location      string       `json:"location" validate:"required"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Priority      string       `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Status        string       `json:"status,omitempty" validate:"omitempty,oneof=active in_progress resolved"`
	Type          string       `json:"type" validate:"required"`
	ReportedBy    string       `json:"reported_by,omitempty"`
	AssignedTo    string       `json:"assigned_to,omitempty"`
	SpocID        string       `json:"spoc_id,omitempty"`
	AffectedCount int          `json:"affected_count,omitempty" validate:"gte=0"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента, nil-поля не изменяются
type UpdateIncidentRequest struct {
	Title         *string      `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description   *string      `json:"description,omitempty"`
	Location      *string      `json:"location,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Priority      *string      `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Status        *string      `json:"status,omitempty" validate:"omitempty,oneof=active in_progress resolved"`
	Type          *string      `json:"type,omitempty"`
	ReportedBy    *string      `json:"reported_by,omitempty"`
	AssignedTo    *string      `json:"assigned_to,omitempty"`
	SpocID        *string      `json:"spoc_id,omitempty"`
	AffectedCount *int         `json:"affected_count,omitempty" validate:"omitempty,gte=0"`
}

// Coordinates - географические координаты инцидента
type Coordinates struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

// CreateResourceRequest DTO для создания ресурса
// @Description DTO для создания ресурса
type CreateResourceRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=255"`
	Type             string `json:"type" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
	Available        int    `json:"available" validate:"gte=0"`
	Location         string `json:"location" validate:"required"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=available deployed critical"`
	AssignedIncident string `json:"assigned_incident,omitempty"`
	ETAMinutes       *int   `json:"eta,omitempty" validate:"omitempty,gte=0"`
}

// UpdateResourceRequest DTO для частичного обновления ресурса
// @Description DTO для частичного обновления ресурса, nil-поля не изменяются
type UpdateResourceRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Type             *string `json:"type,omitempty"`
	Quantity         *int    `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Available        *int    `json:"available,omitempty" validate:"omitempty,gte=0"`
	Location         *string `json:"location,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=available deployed critical"`
	AssignedIncident *string `json:"assigned_incident,omitempty"`
	ETAMinutes       *int    `json:"eta,omitempty" validate:"omitempty,gte=0"`
}

// CreateMessageRequest DTO для создания сообщения
// @Description DTO для создания сообщения
type CreateMessageRequest struct {
	Content     string `json:"content" validate:"required,min=1"`
	SenderID    string `json:"sender_id,omitempty"`
	IncidentID  string `json:"incident_id,omitempty"`
	IsEmergency bool   `json:"is_emergency,omitempty"`
}

// CreateUserRequest DTO для создания пользователя
// @Description DTO для создания пользователя
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=government volunteer social victim"`
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	IsSpoc   bool   `json:"is_spoc,omitempty"`
}

// UpdateUserRequest DTO для частичного обновления пользователя
// @Description DTO для частичного обновления пользователя, nil-поля не изменяются
type UpdateUserRequest struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=government volunteer social victim"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	IsSpoc   *bool   `json:"is_spoc,omitempty"`
}

// CreateAssignmentRequest DTO для назначения волонтера на инцидент
// @Description DTO для назначения волонтера на инцидент
type CreateAssignmentRequest struct {
	VolunteerID string `json:"volunteer_id" validate:"required"`
	IncidentID  string `json:"incident_id" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=assigned active completed"`
}

// UpdateAssignmentRequest DTO для частичного обновления назначения
// @Description DTO для частичного обновления назначения, nil-поля не изменяются
type UpdateAssignmentRequest struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=assigned active completed"`
}
