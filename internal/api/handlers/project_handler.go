package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/project"
	"github.com/technova-labs/portal-go/pkg/response"
)

type ProjectHandler struct {
	service *application.ProjectService
}

func NewProjectHandler(service *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param input body project.CreateProjectInput true "project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var input project.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	p, err := h.service.Create(input)
	if err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary List projects, optionally for one client
// @Tags projects
// @Produce json
// @Param clientId query int false "filter by client id"
// @Success 200 {array} project.Project
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var clientID *uint
	if raw := c.Query("clientId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid clientId"})
			return
		}
		v := uint(id)
		clientID = &v
	}

	c.JSON(http.StatusOK, h.service.List(clientID))
}

// GetByID godoc
// @Summary Get one project
// @Tags projects
// @Produce json
// @Param id path int true "project id"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	p, err := h.service.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListMine returns the authenticated client's projects; the filter comes from
// the session, never from the query string.
func (h *ProjectHandler) ListMine(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	clientID := claims.UserID
	c.JSON(http.StatusOK, h.service.List(&clientID))
}
