package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Assign a volunteer to an incident
// @Description Create a volunteer assignment and broadcast it to connected clients
// @Tags Assignments
// @Accept json
// @Produce json
// @Param assignment body CreateAssignmentRequest true "Assignment creation request"
// @Success 201 {object} models.AssignmentWithRefs
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer-assignments [post]
func (h *Handler) createAssignment(c *gin.Context) {
	var input CreateAssignmentRequest
	log := h.logger.WithField("method", "createAssignment")

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

	assignment, err := h.coordinationService.CreateAssignment(c.Request.Context(), DTOToAssignmentModel(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// @Summary Get a list of volunteer assignments
// @Description Get assignments, optionally filtered by volunteer or incident
// @Tags Assignments
// @Accept json
// @Produce json
// @Param volunteer_id query string false "Filter by volunteer ID"
// @Param incident_id query string false "Filter by incident ID"
// @Success 200 {array} models.AssignmentWithRefs
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer-assignments [get]
func (h *Handler) listAssignments(c *gin.Context) {
	log := h.logger.WithField("method", "listAssignments")

	assignments, err := h.coordinationService.ListAssignments(c.Request.Context(), c.Query("volunteer_id"), c.Query("incident_id"))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// @Summary Update a volunteer assignment
// @Description Partially update an assignment, typically its status transition
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param assignment body UpdateAssignmentRequest true "Assignment update request"
// @Success 200 {object} models.AssignmentWithRefs
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteer-assignments/{id} [patch]
func (h *Handler) updateAssignment(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAssignment").WithField("id", id)

	var input UpdateAssignmentRequest
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

	assignment, err := h.coordinationService.UpdateAssignment(c.Request.Context(), id, DTOToAssignmentUpdate(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}
