package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/consultation"
	"github.com/technova-labs/portal-go/pkg/response"
)

type ConsultationHandler struct {
	service *application.ConsultationService
}

func NewConsultationHandler(service *application.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// Create godoc
// @Summary Book a consultation call
// @Tags consultations
// @Accept json
// @Produce json
// @Param input body consultation.CreateBookingInput true "booking"
// @Success 200 {object} response.SubmissionResponse
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/consultation [post]
func (h *ConsultationHandler) Create(c *gin.Context) {
	var input consultation.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	b := h.service.Create(c.Request.Context(), input)

	c.JSON(http.StatusOK, response.SubmissionResponse{
		Success: true,
		Message: "Your consultation request has been received. We'll confirm your slot by email.",
		ID:      b.ID,
	})
}

// List godoc
// @Summary List consultation bookings, newest first
// @Tags consultations
// @Produce json
// @Success 200 {array} consultation.Booking
// @Router /api/consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input consultation.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	b, err := h.service.UpdateStatus(uint(id), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update booking"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
