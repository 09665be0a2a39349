package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new message
// @Description Post a coordination message and broadcast it to connected clients
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body CreateMessageRequest true "Message creation request"
// @Success 201 {object} models.MessageWithUser
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [post]
func (h *Handler) createMessage(c *gin.Context) {
	var input CreateMessageRequest
	log := h.logger.WithField("method", "createMessage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.coordinationService.CreateMessage(c.Request.Context(), DTOToMessageModel(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// @Summary Get a list of messages
// @Description Get coordination messages newest first, optionally filtered by incident or limited
// @Tags Messages
// @Accept json
// @Produce json
// @Param incident_id query string false "Filter by incident ID"
// @Param limit query int false "Maximum number of messages" default(50)
// @Success 200 {array} models.MessageWithUser
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listMessages")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	messages, err := h.coordinationService.ListMessages(c.Request.Context(), c.Query("incident_id"), limit)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
