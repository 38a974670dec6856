// Package portal exposes a read-only projection of tickets for customer
// accounts. Descriptions are rendered from markdown to sanitized HTML so
// the portal frontend never handles raw markup.
package portal

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quarry/internal/application/ticket/dto"
	"quarry/internal/application/ticket/usecases"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/markdown"
	"quarry/internal/shared/utils"
)

type PortalHandler struct {
	getTicketUC   usecases.GetTicketExecutor
	listTicketsUC usecases.ListTicketsExecutor
	listHistoryUC usecases.ListHistoryExecutor
	markdown      markdown.Service
	logger        logger.Interface
}

func NewPortalHandler(
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listHistoryUC usecases.ListHistoryExecutor,
	markdownService markdown.Service,
) *PortalHandler {
	return &PortalHandler{
		getTicketUC:   getTicketUC,
		listTicketsUC: listTicketsUC,
		listHistoryUC: listHistoryUC,
		markdown:      markdownService,
		logger:        logger.NewLogger(),
	}
}

// PortalTicketResponse trims the internal DTO down to what customers may
// see. Assignee IDs and custom fields stay internal.
type PortalTicketResponse struct {
	UID             string     `json:"uid"`
	Name            string     `json:"name"`
	DescriptionHTML string     `json:"description_html"`
	IssueType       string     `json:"issue_type"`
	StatusID        uint       `json:"status_id"`
	PriorityID      uint       `json:"priority_id"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (h *PortalHandler) toPortalTicket(t *dto.TicketDTO) *PortalTicketResponse {
	descriptionHTML, err := h.markdown.ToHTMLSanitized(t.Description)
	if err != nil {
		h.logger.Warnw("failed to render ticket description", "ticket_id", t.ID, "error", err)
		descriptionHTML = ""
	}

	return &PortalTicketResponse{
		UID:             t.UID,
		Name:            t.Name,
		DescriptionHTML: descriptionHTML,
		IssueType:       t.IssueType,
		StatusID:        t.StatusID,
		PriorityID:      t.PriorityID,
		DueDate:         t.DueDate,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ListTickets handles GET /portal/tickets. Requires a project_id filter so
// customers always browse within a single project.
func (h *PortalHandler) ListTickets(c *gin.Context) {
	raw := c.Query("project_id")
	if raw == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id is required")
		return
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project_id")
		return
	}
	projectID := uint(parsed)

	pagination := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		ProjectID: &projectID,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets := make([]*PortalTicketResponse, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		tickets = append(tickets, h.toPortalTicket(t))
	}

	utils.ListSuccessResponse(c, tickets, result.Total, pagination.Page, pagination.PageSize)
}

// GetTicket handles GET /portal/tickets/:uid. Portal lookups are by UID
// only; numeric IDs are not exposed to customers.
func (h *PortalHandler) GetTicket(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket UID is required")
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{UID: uid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.toPortalTicket(result))
}

// ListHistory handles GET /portal/tickets/:uid/history
func (h *PortalHandler) ListHistory(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket UID is required")
		return
	}

	ticket, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{UID: uid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listHistoryUC.Execute(c.Request.Context(), usecases.ListHistoryQuery{TicketID: ticket.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
