package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Инциденты
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
	}

	// Ресурсы
	resources := api.Group("/resources")
	{
		resources.GET("", h.listResources)
		resources.POST("", h.createResource)
		resources.GET("/:id", h.getResource)
		resources.PATCH("/:id", h.updateResource)
	}

	// Сообщения координационного канала
	messages := api.Group("/messages")
	{
		messages.GET("", h.listMessages)
		messages.POST("", h.createMessage)
	}

	// Пользователи
	users := api.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.PATCH("/:id", h.updateUser)
		users.GET("/role/:role", h.listUsersByRole)
	}

	// Назначения волонтеров
	assignments := api.Group("/volunteer-assignments")
	{
		assignments.GET("", h.listAssignments)
		assignments.POST("", h.createAssignment)
		assignments.PATCH("/:id", h.updateAssignment)
	}

	// Статистика панели
	api.GET("/dashboard/stats", h.getDashboardStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// RegisterRealtime регистрирует websocket-маршрут вне версии API
func (h *Handler) RegisterRealtime(router *gin.Engine) {
	router.GET("/ws", h.serveWS)
}
