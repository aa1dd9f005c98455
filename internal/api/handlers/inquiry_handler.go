package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/domain/inquiry"
	"github.com/technova-labs/portal-go/pkg/response"
)

type InquiryHandler struct {
	service *application.InquiryService
}

func NewInquiryHandler(service *application.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// CreateContact godoc
// @Summary Submit the contact form
// @Tags inquiries
// @Accept json
// @Produce json
// @Param input body inquiry.CreateInquiryInput true "submission"
// @Success 200 {object} response.SubmissionResponse
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/contact [post]
func (h *InquiryHandler) CreateContact(c *gin.Context) {
	h.create(c, inquiry.TypeContact, "Thank you for contacting us. We'll get back to you shortly.")
}

// CreateQuote godoc
// @Summary Submit a quote request
// @Tags inquiries
// @Accept json
// @Produce json
// @Param input body inquiry.CreateInquiryInput true "submission"
// @Success 200 {object} response.SubmissionResponse
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/quote [post]
func (h *InquiryHandler) CreateQuote(c *gin.Context) {
	h.create(c, inquiry.TypeQuote, "Thank you for your request. A quote is on its way.")
}

func (h *InquiryHandler) create(c *gin.Context, typ inquiry.Type, message string) {
	var input inquiry.CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	q := h.service.Create(c.Request.Context(), input, typ)

	c.JSON(http.StatusOK, response.SubmissionResponse{
		Success: true,
		Message: message,
		ID:      q.ID,
	})
}

// List godoc
// @Summary List inquiries, newest first
// @Tags inquiries
// @Produce json
// @Success 200 {array} inquiry.Inquiry
// @Router /api/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// MarkRead flags an inquiry as handled. Safe to call twice.
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	q, err := h.service.MarkRead(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Inquiry not found"})
		return
	}

	c.JSON(http.StatusOK, q)
}
