package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quarry/internal/application/ticket/usecases"
	"quarry/internal/interfaces/http/middleware"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	changeStatusUC     usecases.ChangeStatusExecutor
	assignTicketUC     usecases.AssignTicketExecutor
	addDependencyUC    usecases.AddDependencyExecutor
	removeDependencyUC usecases.RemoveDependencyExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	listHistoryUC      usecases.ListHistoryExecutor
	listDependenciesUC usecases.ListDependenciesExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addDependencyUC usecases.AddDependencyExecutor,
	removeDependencyUC usecases.RemoveDependencyExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listHistoryUC usecases.ListHistoryExecutor,
	listDependenciesUC usecases.ListDependenciesExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		updateTicketUC:     updateTicketUC,
		deleteTicketUC:     deleteTicketUC,
		changeStatusUC:     changeStatusUC,
		assignTicketUC:     assignTicketUC,
		addDependencyUC:    addDependencyUC,
		removeDependencyUC: removeDependencyUC,
		getTicketUC:        getTicketUC,
		listTicketsUC:      listTicketsUC,
		listHistoryUC:      listHistoryUC,
		listDependenciesUC: listDependenciesUC,
		logger:             logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(middleware.CurrentUserID(c))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/tickets/:id. Accepts a numeric ID or a
// ticket UID.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	query := usecases.GetTicketQuery{}
	if ticketID, err := utils.ParseUintParam(c, "id", "ticket"); err == nil {
		query.TicketID = ticketID
	} else {
		query.UID = c.Param("id")
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// UpdateTicket handles PUT /api/tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(ticketID, middleware.CurrentUserID(c))

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		DeletedBy: middleware.CurrentUserID(c),
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// ChangeStatus handles PUT /api/tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:    ticketID,
		NewStatusID: req.StatusID,
		Note:        req.Note,
		ChangedBy:   middleware.CurrentUserID(c),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status changed successfully", result)
}

// AssignTicket handles PUT /api/tickets/:id/assignees. The submitted list
// replaces the current assignee set; an empty list unassigns everyone.
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignTicketCommand{
		TicketID:    ticketID,
		AssigneeIDs: req.AssigneeIDs,
		AssignedBy:  middleware.CurrentUserID(c),
	}

	if err := h.assignTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignees updated successfully", nil)
}

// ListHistory handles GET /api/tickets/:id/history
func (h *TicketHandler) ListHistory(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listHistoryUC.Execute(c.Request.Context(), usecases.ListHistoryQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddDependency handles POST /api/tickets/:id/dependencies
func (h *TicketHandler) AddDependency(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add dependency", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddDependencyCommand{
		TicketID:    ticketID,
		DependsOnID: req.DependsOnID,
		Type:        req.Type,
		AddedBy:     middleware.CurrentUserID(c),
	}

	result, err := h.addDependencyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Dependency added successfully")
}

// RemoveDependency handles DELETE /api/tickets/:id/dependencies/:dependency_id
func (h *TicketHandler) RemoveDependency(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dependencyID, err := utils.ParseUintParam(c, "dependency_id", "dependency")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemoveDependencyCommand{
		TicketID:     ticketID,
		DependencyID: dependencyID,
		RemovedBy:    middleware.CurrentUserID(c),
	}

	if err := h.removeDependencyUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dependency removed successfully", nil)
}

// ListDependencies handles GET /api/tickets/:id/dependencies
func (h *TicketHandler) ListDependencies(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listDependenciesUC.Execute(c.Request.Context(), usecases.ListDependenciesQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
