package repository

import (
	"testing"

	"github.com/shenikar/crisis_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSetDoc_EmptyUpdateBuildsEmptyDocument(t *testing.T) {
	// Подготовка: патч без единого поля валиден на уровне API,
	// но пустой $set сервер MongoDB отклоняет - UpdateUser обязан
	// уйти в ветку чтения без модификации
	set := userSetDoc(models.UserUpdate{})

	// Проверки
	assert.Empty(t, set)
}

func TestUserSetDoc_OnlyProvidedFields(t *testing.T) {
	// Подготовка
	newName := "Новое имя"
	isSpoc := true

	// Действие
	set := userSetDoc(models.UserUpdate{Name: &newName, IsSpoc: &isSpoc})

	// Проверки: в документ попадают только переданные поля
	require.Len(t, set, 2)
	assert.Equal(t, "Новое имя", set["name"])
	assert.Equal(t, true, set["is_spoc"])
	assert.NotContains(t, set, "role")
}

func TestAssignmentSetDoc_EmptyUpdateBuildsEmptyDocument(t *testing.T) {
	// Подготовка и действие
	set := assignmentSetDoc(models.AssignmentUpdate{})

	// Проверки
	assert.Empty(t, set)
}

func TestAssignmentSetDoc_OnlyProvidedFields(t *testing.T) {
	// Подготовка
	newStatus := models.AssignmentStatusCompleted

	// Действие
	set := assignmentSetDoc(models.AssignmentUpdate{Status: &newStatus})

	// Проверки
	require.Len(t, set, 1)
	assert.Equal(t, models.AssignmentStatusCompleted, set["status"])
}
