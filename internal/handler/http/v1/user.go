package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new user
// @Description Register a user and broadcast the creation to connected clients
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User creation request"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Username already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input CreateUserRequest
	log := h.logger.WithField("method", "createUser")

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

	user, err := h.coordinationService.CreateUser(c.Request.Context(), DTOToUserModel(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Get user by ID
// @Description Get a single user by its ID
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getUser").WithField("id", id)

	user, err := h.coordinationService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Update an existing user
// @Description Partially update a user by ID
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [patch]
func (h *Handler) updateUser(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateUser").WithField("id", id)

	var input UpdateUserRequest
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

	user, err := h.coordinationService.UpdateUser(c.Request.Context(), id, DTOToUserUpdate(input))
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Get users by role
// @Description Get all users that hold the given role
// @Tags Users
// @Accept json
// @Produce json
// @Param role path string true "User role" Enums(government, volunteer, social, victim)
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/role/{role} [get]
func (h *Handler) listUsersByRole(c *gin.Context) {
	role := c.Param("role")
	log := h.logger.WithField("method", "listUsersByRole").WithField("role", role)

	users, err := h.coordinationService.GetUsersByRole(c.Request.Context(), role)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
