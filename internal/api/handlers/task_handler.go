package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/task"
	"github.com/technova-labs/portal-go/pkg/response"
)

type TaskHandler struct {
	service *application.TaskService
}

func NewTaskHandler(service *application.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var input task.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	t, err := h.service.Create(input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// List godoc
// @Summary List tasks, optionally for one project
// @Tags tasks
// @Produce json
// @Param projectId query int false "filter by project id"
// @Success 200 {array} task.Task
// @Router /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var projectID *uint
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid projectId"})
			return
		}
		v := uint(id)
		projectID = &v
	}

	c.JSON(http.StatusOK, h.service.List(projectID))
}
