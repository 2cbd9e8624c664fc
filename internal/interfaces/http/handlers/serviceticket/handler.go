package serviceticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/usecases"
	"github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
	"github.com/shopfloor-inc/shopfloor/internal/shared/utils"
)

type Handler struct {
	createTicketUC   usecases.CreateServiceTicketExecutor
	getTicketUC      usecases.GetServiceTicketExecutor
	listTicketsUC    usecases.ListServiceTicketsExecutor
	updateTicketUC   usecases.UpdateServiceTicketExecutor
	deleteTicketUC   usecases.DeleteServiceTicketExecutor
	assignMechanicUC usecases.AssignMechanicExecutor
	removeMechanicUC usecases.RemoveMechanicExecutor
	logger           logger.Interface
}

func NewHandler(
	createTicketUC usecases.CreateServiceTicketExecutor,
	getTicketUC usecases.GetServiceTicketExecutor,
	listTicketsUC usecases.ListServiceTicketsExecutor,
	updateTicketUC usecases.UpdateServiceTicketExecutor,
	deleteTicketUC usecases.DeleteServiceTicketExecutor,
	assignMechanicUC usecases.AssignMechanicExecutor,
	removeMechanicUC usecases.RemoveMechanicExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		updateTicketUC:   updateTicketUC,
		deleteTicketUC:   deleteTicketUC,
		assignMechanicUC: assignMechanicUC,
		removeMechanicUC: removeMechanicUC,
		logger:           logger,
	}
}

// CreateServiceTicket handles POST /service-tickets/
// @Summary Create service ticket
// @Description Status defaults to "open" when omitted.
// @Tags ServiceTickets
// @Accept json
// @Produce json
// @Param request body ServiceTicketRequest true "Service ticket"
// @Success 201 {object} dto.ServiceTicketDTO
// @Failure 400 {object} map[string][]string
// @Router /service-tickets/ [post]
func (h *Handler) CreateServiceTicket(c *gin.Context) {
	var req ServiceTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create service ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCreateCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListServiceTickets handles GET /service-tickets/
// @Summary List service tickets
// @Tags ServiceTickets
// @Produce json
// @Success 200 {array} dto.ServiceTicketDTO
// @Router /service-tickets/ [get]
func (h *Handler) ListServiceTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetServiceTicket handles GET /service-tickets/:id
// @Summary Get service ticket
// @Tags ServiceTickets
// @Produce json
// @Param id path int true "Service ticket ID"
// @Success 200 {object} dto.ServiceTicketDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /service-tickets/{id} [get]
func (h *Handler) GetServiceTicket(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetServiceTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateServiceTicket handles PUT /service-tickets/:id
// @Summary Update service ticket
// @Description Replaces the description; status is replaced only when sent.
// @Tags ServiceTickets
// @Accept json
// @Produce json
// @Param id path int true "Service ticket ID"
// @Param request body ServiceTicketRequest true "Service ticket"
// @Success 200 {object} dto.ServiceTicketDTO
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} utils.ErrorBody
// @Router /service-tickets/{id} [put]
func (h *Handler) UpdateServiceTicket(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req ServiceTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update service ticket", "ticket_id", ticketID, "error", err)
		if _, getErr := h.getTicketUC.Execute(c.Request.Context(), usecases.GetServiceTicketQuery{TicketID: ticketID}); getErr != nil {
			utils.ErrorResponseWithError(c, getErr)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToUpdateCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteServiceTicket handles DELETE /service-tickets/:id
// @Summary Delete service ticket
// @Tags ServiceTickets
// @Produce json
// @Param id path int true "Service ticket ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /service-tickets/{id} [delete]
func (h *Handler) DeleteServiceTicket(c *gin.Context) {
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteServiceTicketCommand{TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageSuccessResponse(c, fmt.Sprintf("Service ticket %d is deleted successfully.", ticketID))
}

// AssignMechanic handles PUT /service-tickets/:id/assign-mechanic/:mechanic_id
// @Summary Assign mechanic to service ticket
// @Description Assigning a mechanic that is already on the ticket is a no-op.
// @Tags ServiceTickets
// @Produce json
// @Param id path int true "Service ticket ID"
// @Param mechanic_id path int true "Mechanic ID"
// @Success 200 {object} dto.ServiceTicketDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /service-tickets/{id}/assign-mechanic/{mechanic_id} [put]
func (h *Handler) AssignMechanic(c *gin.Context) {
	ticketID, mechanicID, ok := parseAssignmentIDs(c)
	if !ok {
		return
	}

	result, err := h.assignMechanicUC.Execute(c.Request.Context(), usecases.AssignMechanicCommand{
		TicketID:   ticketID,
		MechanicID: mechanicID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// RemoveMechanic handles PUT /service-tickets/:id/remove-mechanic/:mechanic_id
// @Summary Remove mechanic from service ticket
// @Description Removing a mechanic that is not assigned returns the unchanged ticket.
// @Tags ServiceTickets
// @Produce json
// @Param id path int true "Service ticket ID"
// @Param mechanic_id path int true "Mechanic ID"
// @Success 200 {object} dto.ServiceTicketDTO
// @Failure 404 {object} utils.ErrorBody
// @Router /service-tickets/{id}/remove-mechanic/{mechanic_id} [put]
func (h *Handler) RemoveMechanic(c *gin.Context) {
	ticketID, mechanicID, ok := parseAssignmentIDs(c)
	if !ok {
		return
	}

	result, err := h.removeMechanicUC.Execute(c.Request.Context(), usecases.RemoveMechanicCommand{
		TicketID:   ticketID,
		MechanicID: mechanicID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func parseTicketID(c *gin.Context) (uint, bool) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(dto.MsgServiceTicketNotFound))
	}
	return id, ok
}

// parseAssignmentIDs resolves both path ids. An unparsable mechanic id is
// passed on as 0 so the use case still reports a missing ticket first.
func parseAssignmentIDs(c *gin.Context) (ticketID, mechanicID uint, ok bool) {
	if ticketID, ok = parseTicketID(c); !ok {
		return 0, 0, false
	}
	mechanicID, _ = utils.ParseIDParam(c, "mechanic_id")
	return ticketID, mechanicID, true
}
