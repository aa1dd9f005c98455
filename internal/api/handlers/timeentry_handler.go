package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/timeentry"
	"github.com/technova-labs/portal-go/pkg/response"
)

type TimeEntryHandler struct {
	service *application.TimeEntryService
}

func NewTimeEntryHandler(service *application.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{service: service}
}

func (h *TimeEntryHandler) Create(c *gin.Context) {
	var input timeentry.CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	e, err := h.service.Create(input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create time entry"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// List filters by projectId and/or userId query params; both are optional.
func (h *TimeEntryHandler) List(c *gin.Context) {
	projectID, err := optionalUintQuery(c, "projectId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid projectId"})
		return
	}
	userID, err := optionalUintQuery(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid userId"})
		return
	}

	c.JSON(http.StatusOK, h.service.List(projectID, userID))
}

// ListMine returns the authenticated user's entries.
func (h *TimeEntryHandler) ListMine(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	userID := claims.UserID
	c.JSON(http.StatusOK, h.service.List(nil, &userID))
}

func optionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	v := uint(id)
	return &v, nil
}
