package mappers

import (
	"fmt"

	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models. Assignees and custom values live in separate tables
// and are loaded by the repository before reconstruction.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, assigneeIDs []uint, customFields map[string]string) (*ticket.Ticket, error)

	HistoryToModel(h *ticket.History) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) (*ticket.History, error)

	DependencyToModel(d *ticket.Dependency) *models.TicketDependencyModel
	DependencyToDomain(model *models.TicketDependencyModel) (*ticket.Dependency, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UID:         t.UID(),
		ProjectID:   t.ProjectID(),
		StatusID:    t.StatusID(),
		PriorityID:  t.PriorityID(),
		EpicID:      t.EpicID(),
		SprintID:    t.SprintID(),
		ParentID:    t.ParentID(),
		IssueType:   t.IssueType().String(),
		Name:        t.Name(),
		Description: t.Description(),
		StartDate:   timeToMillisPtr(t.StartDate()),
		DueDate:     timeToMillisPtr(t.DueDate()),
		CreatedBy:   t.CreatedBy(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, assigneeIDs []uint, customFields map[string]string) (*ticket.Ticket, error) {
	issueType, err := vo.NewIssueType(model.IssueType)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UID,
		model.ProjectID,
		model.StatusID,
		model.PriorityID,
		model.EpicID,
		model.SprintID,
		model.ParentID,
		issueType,
		model.Name,
		model.Description,
		millisToTimePtr(model.StartDate),
		millisToTimePtr(model.DueDate),
		model.CreatedBy,
		assigneeIDs,
		customFields,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.History) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:           h.ID(),
		TicketID:     h.TicketID(),
		UserID:       h.ActorID(),
		FromStatusID: h.FromStatusID(),
		ToStatusID:   h.ToStatusID(),
		Note:         h.Note(),
		CreatedAt:    h.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) (*ticket.History, error) {
	return ticket.ReconstructHistory(
		model.ID,
		model.TicketID,
		model.UserID,
		model.FromStatusID,
		model.ToStatusID,
		model.Note,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) DependencyToModel(d *ticket.Dependency) *models.TicketDependencyModel {
	return &models.TicketDependencyModel{
		ID:          d.ID(),
		TicketID:    d.TicketID(),
		DependsOnID: d.DependsOnID(),
		Type:        d.Type().String(),
		CreatedAt:   d.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) DependencyToDomain(model *models.TicketDependencyModel) (*ticket.Dependency, error) {
	depType, err := vo.NewDependencyType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to map dependency (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructDependency(
		model.ID,
		model.TicketID,
		model.DependsOnID,
		depType,
		millisToTime(model.CreatedAt),
	)
}
