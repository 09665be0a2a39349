package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_coordination_system/internal/broadcast"
	"github.com/shenikar/crisis_coordination_system/internal/config"
	"github.com/shenikar/crisis_coordination_system/internal/repository"
	"github.com/shenikar/crisis_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	coordinationService service.CoordinationService
	hub                 *broadcast.Hub
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(coordinationService service.CoordinationService, hub *broadcast.Hub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		coordinationService: coordinationService,
		hub:                 hub,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondServiceError транслирует ошибки сервисного слоя в клиентские ответы.
// Детали инфраструктурных ошибок наружу не выходят.
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidResourceQuantity):
		log.WithError(err).Warn("Resource quantity invariant violated")
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidResourceQuantity.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		log.WithError(err).Warn("Username already taken")
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrUsernameTaken.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
