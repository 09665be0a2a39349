package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new resource
// @Description Create a new resource and broadcast it to connected clients
// @Tags Resources
// @Accept json
// @Produce json
// @Param resource body CreateResourceRequest true "Resource creation request"
// @Success 201 {object} models.ResourceWithIncident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [post]
func (h *Handler) createResource(c *gin.Context) {
	var input CreateResourceRequest
	log := h.logger.WithField("method", "createResource")

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

	resource, err := h.coordinationService.CreateResource(c.Request.Context(), DTOToResourceModel(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// @Summary Get a list of resources
// @Description Get all resources, optionally filtered by type or status
// @Tags Resources
// @Accept json
// @Produce json
// @Param type query string false "Filter by resource type"
// @Param status query string false "Filter by status" Enums(available, deployed, critical)
// @Success 200 {array} models.ResourceWithIncident
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")

	resources, err := h.coordinationService.ListResources(c.Request.Context(), c.Query("type"), c.Query("status"))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// @Summary Get resource by ID
// @Description Get a single enriched resource by its ID
// @Tags Resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} models.ResourceWithIncident
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [get]
func (h *Handler) getResource(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getResource").WithField("id", id)

	resource, err := h.coordinationService.GetResource(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// @Summary Update an existing resource
// @Description Partially update a resource by ID and broadcast the change
// @Tags Resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param resource body UpdateResourceRequest true "Resource update request"
// @Success 200 {object} models.ResourceWithIncident
// @Failure 400 {object} map[string]string "Invalid request body, validation error or quantity invariant violation"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources/{id} [patch]
func (h *Handler) updateResource(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateResource").WithField("id", id)

	var input UpdateResourceRequest
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

	resource, err := h.coordinationService.UpdateResource(c.Request.Context(), id, DTOToResourceUpdate(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}
