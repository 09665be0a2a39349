package v1

import "github.com/shenikar/crisis_coordination_system/internal/models"

func coordinatesToModel(c *Coordinates) *models.Coordinates {
	if c == nil {
		return nil
	}
	return &models.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:         dto.Title,
		Description:   dto.Description,
		Location:      dto.Location,
		Coordinates:   coordinatesToModel(dto.Coordinates),
		Priority:      dto.Priority,
		Status:        dto.Status,
		Type:          dto.Type,
		ReportedBy:    dto.ReportedBy,
		AssignedTo:    dto.AssignedTo,
		SpocID:        dto.SpocID,
		AffectedCount: dto.AffectedCount,
	}
}

// DTOToIncidentUpdate преобразует DTO частичного обновления в доменный апдейт
func DTOToIncidentUpdate(dto UpdateIncidentRequest) models.IncidentUpdate {
	return models.IncidentUpdate{
		Title:         dto.Title,
		Description:   dto.Description,
		Location:      dto.Location,
		Coordinates:   coordinatesToModel(dto.Coordinates),
		Priority:      dto.Priority,
		Status:        dto.Status,
		Type:          dto.Type,
		ReportedBy:    dto.ReportedBy,
		AssignedTo:    dto.AssignedTo,
		SpocID:        dto.SpocID,
		AffectedCount: dto.AffectedCount,
	}
}

// DTOToResourceModel преобразует DTO создания в доменную модель
func DTOToResourceModel(dto CreateResourceRequest) *models.Resource {
	return &models.Resource{
		Name:             dto.Name,
		Type:             dto.Type,
		Quantity:         dto.Quantity,
		Available:        dto.Available,
		Location:         dto.Location,
		Status:           dto.Status,
		AssignedIncident: dto.AssignedIncident,
		ETAMinutes:       dto.ETAMinutes,
	}
}

// DTOToResourceUpdate преобразует DTO частичного обновления в доменный апдейт
func DTOToResourceUpdate(dto UpdateResourceRequest) models.ResourceUpdate {
	return models.ResourceUpdate{
		Name:             dto.Name,
		Type:             dto.Type,
		Quantity:         dto.Quantity,
		Available:        dto.Available,
		Location:         dto.Location,
		Status:           dto.Status,
		AssignedIncident: dto.AssignedIncident,
		ETAMinutes:       dto.ETAMinutes,
	}
}

// DTOToMessageModel преобразует DTO создания в доменную модель
func DTOToMessageModel(dto CreateMessageRequest) *models.Message {
	return &models.Message{
		Content:     dto.Content,
		SenderID:    dto.SenderID,
		IncidentID:  dto.IncidentID,
		IsEmergency: dto.IsEmergency,
	}
}

// DTOToUserModel преобразует DTO создания в доменную модель
func DTOToUserModel(dto CreateUserRequest) *models.User {
	return &models.User{
		Username: dto.Username,
		Password: dto.Password,
		Role:     dto.Role,
		Name:     dto.Name,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Location: dto.Location,
		IsSpoc:   dto.IsSpoc,
	}
}

// DTOToUserUpdate преобразует DTO частичного обновления в доменный апдейт
func DTOToUserUpdate(dto UpdateUserRequest) models.UserUpdate {
	return models.UserUpdate{
		Role:     dto.Role,
		Name:     dto.Name,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Location: dto.Location,
		IsSpoc:   dto.IsSpoc,
	}
}

// DTOToAssignmentModel преобразует DTO создания в доменную модель
func DTOToAssignmentModel(dto CreateAssignmentRequest) *models.VolunteerAssignment {
	return &models.VolunteerAssignment{
		VolunteerID: dto.VolunteerID,
		IncidentID:  dto.IncidentID,
		Role:        dto.Role,
		Status:      dto.Status,
	}
}

// DTOToAssignmentUpdate преобразует DTO частичного обновления в доменный апдейт
func DTOToAssignmentUpdate(dto UpdateAssignmentRequest) models.AssignmentUpdate {
	return models.AssignmentUpdate{
		Role:   dto.Role,
		Status: dto.Status,
	}
}
