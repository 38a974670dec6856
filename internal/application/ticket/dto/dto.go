package dto

import (
	"time"

	"quarry/internal/domain/ticket"
)

type TicketDTO struct {
	ID           uint              `json:"id"`
	UID          string            `json:"uid"`
	ProjectID    uint              `json:"project_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	IssueType    string            `json:"issue_type"`
	StatusID     uint              `json:"status_id"`
	PriorityID   uint              `json:"priority_id"`
	EpicID       *uint             `json:"epic_id"`
	SprintID     *uint             `json:"sprint_id"`
	ParentID     *uint             `json:"parent_id"`
	StartDate    *time.Time        `json:"start_date"`
	DueDate      *time.Time        `json:"due_date"`
	CreatedBy    uint              `json:"created_by"`
	AssigneeIDs  []uint            `json:"assignee_ids"`
	CustomFields map[string]string `json:"custom_fields"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type HistoryDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	ActorID      uint      `json:"actor_id"`
	FromStatusID *uint     `json:"from_status_id"`
	ToStatusID   uint      `json:"to_status_id"`
	Note         *string   `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

type DependencyDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	DependsOnID uint      `json:"depends_on_id"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:           t.ID(),
		UID:          t.UID(),
		ProjectID:    t.ProjectID(),
		Name:         t.Name(),
		Description:  t.Description(),
		IssueType:    t.IssueType().String(),
		StatusID:     t.StatusID(),
		PriorityID:   t.PriorityID(),
		EpicID:       t.EpicID(),
		SprintID:     t.SprintID(),
		ParentID:     t.ParentID(),
		StartDate:    t.StartDate(),
		DueDate:      t.DueDate(),
		CreatedBy:    t.CreatedBy(),
		AssigneeIDs:  t.AssigneeIDs(),
		CustomFields: t.CustomFields(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func FromHistory(h *ticket.History) *HistoryDTO {
	return &HistoryDTO{
		ID:           h.ID(),
		TicketID:     h.TicketID(),
		ActorID:      h.ActorID(),
		FromStatusID: h.FromStatusID(),
		ToStatusID:   h.ToStatusID(),
		Note:         h.Note(),
		CreatedAt:    h.CreatedAt(),
	}
}

func FromDependency(d *ticket.Dependency) *DependencyDTO {
	return &DependencyDTO{
		ID:          d.ID(),
		TicketID:    d.TicketID(),
		DependsOnID: d.DependsOnID(),
		Type:        d.Type().String(),
		CreatedAt:   d.CreatedAt(),
	}
}
