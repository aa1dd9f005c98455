package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/comment"
	"github.com/technova-labs/portal-go/pkg/response"
)

type CommentHandler struct {
	service *application.CommentService
}

func NewCommentHandler(service *application.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create godoc
// @Summary Add a project comment
// @Tags comments
// @Accept json
// @Produce json
// @Param input body comment.CreateCommentInput true "comment"
// @Success 201 {object} comment.Comment
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/project-comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var input comment.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	c.JSON(http.StatusCreated, h.service.Create(input))
}

func (h *CommentHandler) ListByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	c.JSON(http.StatusOK, h.service.ListByProject(uint(projectID)))
}
