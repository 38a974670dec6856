package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quarry/internal/application/ticket/usecases"
	"quarry/internal/shared/errors"
)

type CreateTicketRequest struct {
	ProjectID    uint              `json:"project_id" binding:"required"`
	Name         string            `json:"name" binding:"required,max=200"`
	Description  string            `json:"description" binding:"max=20000"`
	IssueType    string            `json:"issue_type" binding:"required"`
	PriorityID   uint              `json:"priority_id" binding:"required"`
	StatusID     *uint             `json:"status_id,omitempty"`
	ParentID     *uint             `json:"parent_id,omitempty"`
	EpicID       *uint             `json:"epic_id,omitempty"`
	SprintID     *uint             `json:"sprint_id,omitempty"`
	StartDate    *time.Time        `json:"start_date,omitempty"`
	DueDate      *time.Time        `json:"due_date,omitempty"`
	AssigneeIDs  []uint            `json:"assignee_ids,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ProjectID:    r.ProjectID,
		Name:         r.Name,
		Description:  r.Description,
		IssueType:    r.IssueType,
		PriorityID:   r.PriorityID,
		StatusID:     r.StatusID,
		ParentID:     r.ParentID,
		EpicID:       r.EpicID,
		SprintID:     r.SprintID,
		StartDate:    r.StartDate,
		DueDate:      r.DueDate,
		AssigneeIDs:  r.AssigneeIDs,
		CustomFields: r.CustomFields,
		CreatorID:    creatorID,
	}
}

// UpdateTicketRequest carries partial updates. Explicit clear_* flags
// distinguish "leave the parent alone" from "remove the parent".
type UpdateTicketRequest struct {
	Name         *string           `json:"name,omitempty" binding:"omitempty,max=200"`
	Description  *string           `json:"description,omitempty" binding:"omitempty,max=20000"`
	IssueType    *string           `json:"issue_type,omitempty"`
	PriorityID   *uint             `json:"priority_id,omitempty"`
	ParentID     *uint             `json:"parent_id,omitempty"`
	ClearParent  bool              `json:"clear_parent,omitempty"`
	EpicID       *uint             `json:"epic_id,omitempty"`
	ClearEpic    bool              `json:"clear_epic,omitempty"`
	SprintID     *uint             `json:"sprint_id,omitempty"`
	ClearSprint  bool              `json:"clear_sprint,omitempty"`
	StartDate    *time.Time        `json:"start_date,omitempty"`
	DueDate      *time.Time        `json:"due_date,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
	AssigneeIDs  []uint            `json:"assignee_ids,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, updatedBy uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:     ticketID,
		Name:         r.Name,
		Description:  r.Description,
		IssueType:    r.IssueType,
		PriorityID:   r.PriorityID,
		ParentID:     r.ParentID,
		ClearParent:  r.ClearParent,
		EpicID:       r.EpicID,
		ClearEpic:    r.ClearEpic,
		SprintID:     r.SprintID,
		ClearSprint:  r.ClearSprint,
		StartDate:    r.StartDate,
		DueDate:      r.DueDate,
		CustomFields: r.CustomFields,
		AssigneeIDs:  r.AssigneeIDs,
		UpdatedBy:    updatedBy,
	}
}

type ChangeStatusRequest struct {
	StatusID uint    `json:"status_id" binding:"required"`
	Note     *string `json:"note,omitempty" binding:"omitempty,max=2000"`
}

type AssignTicketRequest struct {
	AssigneeIDs []uint `json:"assignee_ids"`
}

type AddDependencyRequest struct {
	DependsOnID uint   `json:"depends_on_id" binding:"required"`
	Type        string `json:"type" binding:"required"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	ProjectID  *uint
	StatusID   *uint
	PriorityID *uint
	EpicID     *uint
	SprintID   *uint
	ParentID   *uint
	IssueType  *string
	CreatorID  *uint
	AssigneeID *uint
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		ProjectID:  r.ProjectID,
		StatusID:   r.StatusID,
		PriorityID: r.PriorityID,
		EpicID:     r.EpicID,
		SprintID:   r.SprintID,
		ParentID:   r.ParentID,
		IssueType:  r.IssueType,
		CreatorID:  r.CreatorID,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	uintFilters := map[string]**uint{
		"project_id":  &req.ProjectID,
		"status_id":   &req.StatusID,
		"priority_id": &req.PriorityID,
		"epic_id":     &req.EpicID,
		"sprint_id":   &req.SprintID,
		"parent_id":   &req.ParentID,
		"creator_id":  &req.CreatorID,
		"assignee_id": &req.AssigneeID,
	}
	for key, target := range uintFilters {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid " + key)
		}
		v := uint(parsed)
		*target = &v
	}

	if issueType := c.Query("issue_type"); issueType != "" {
		req.IssueType = &issueType
	}

	return req, nil
}
