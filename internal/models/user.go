package models

import "time"

// Роли пользователей в системе координации
const (
	RoleGovernment = "government"
	RoleVolunteer  = "volunteer"
	RoleSocial     = "social"
	RoleVictim     = "victim"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	IsSpoc    bool      `json:"is_spoc"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary - краткая проекция пользователя для обогащения связанных сущностей
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserUpdate - частичное обновление, nil-поля не изменяются
type UserUpdate struct {
	Role     *string `json:"role,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	IsSpoc   *bool   `json:"is_spoc,omitempty"`
}

// Summary возвращает краткую проекцию пользователя
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}
