package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ticketd/ticketd/internal/api/dto"
	"github.com/ticketd/ticketd/internal/domain"
	"github.com/ticketd/ticketd/internal/filter"
	"github.com/ticketd/ticketd/internal/service"
	apperrors "github.com/ticketd/ticketd/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("malformed JSON sent", nil)
	}
	if req.Title == nil || req.Body == nil || req.Labels == nil {
		return apperrors.NewValidationError("title, body and labels required", nil)
	}

	labels, err := domain.ParseLabels(req.Labels)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	ticket, err := h.service.Create(c.Context(), service.TicketCreateInput{
		Title:        *req.Title,
		Body:         *req.Body,
		Labels:       labels,
		AssignedUser: req.AssignedUser,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(ticket))
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketListResponse(tickets))
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Edit POST /tickets/:id. Full overwrite of the mutable fields.
func (h *TicketsHandler) Edit(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}

	var req dto.EditTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("malformed JSON sent", nil)
	}
	if req.Title == nil || req.Body == nil || req.Labels == nil || req.Status == nil {
		return apperrors.NewValidationError("title, body, labels and status required", nil)
	}

	labels, err := domain.ParseLabels(req.Labels)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	status, err := domain.ParseStatus(*req.Status)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	ticket, err := h.service.Edit(c.Context(), id, service.TicketEditInput{
		Title:  *req.Title,
		Body:   *req.Body,
		Labels: labels,
		Status: status,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Delete DELETE /tickets/:id. Responds with the deleted ticket.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.Delete(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Filter POST /filter.
func (h *TicketsHandler) Filter(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("malformed JSON sent", nil)
	}

	f := filter.Filter{
		Title:        req.Title,
		AssignedUser: req.AssignedUser,
	}
	if req.Labels != nil {
		labels, err := domain.ParseLabels(req.Labels)
		if err != nil {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		f.Labels = labels
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		f.Status = &status
	}

	tickets, err := h.service.Filter(c.Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketListResponse(tickets))
}

func ticketID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError("ID must be an integer higher than 0", nil)
	}
	return id, nil
}
