package usecases

import (
	"context"
	"fmt"
	"time"

	"quarry/internal/domain/project"
	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/domain/user"
	"quarry/internal/domain/workflow"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/id"
	"quarry/internal/shared/logger"
)

type CreateTicketCommand struct {
	ProjectID    uint
	Name         string
	Description  string
	IssueType    string
	PriorityID   uint
	StatusID     *uint
	ParentID     *uint
	EpicID       *uint
	SprintID     *uint
	StartDate    *time.Time
	DueDate      *time.Time
	AssigneeIDs  []uint
	CustomFields map[string]string
	CreatorID    uint
}

type CreateTicketResult struct {
	TicketID  uint
	UID       string
	StatusID  uint
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	historyRepo     ticket.HistoryRepository
	projectRepo     project.ProjectRepository
	statusRepo      project.StatusRepository
	priorityRepo    project.PriorityRepository
	customFieldRepo project.CustomFieldRepository
	userRepo        user.UserRepository
	workflowRepo    workflow.WorkflowRepository
	engine          *workflow.Engine
	txManager       TransactionManager
	publisher       events.EventPublisher
	logger          logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	projectRepo project.ProjectRepository,
	statusRepo project.StatusRepository,
	priorityRepo project.PriorityRepository,
	customFieldRepo project.CustomFieldRepository,
	userRepo user.UserRepository,
	workflowRepo workflow.WorkflowRepository,
	engine *workflow.Engine,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:      ticketRepo,
		historyRepo:     historyRepo,
		projectRepo:     projectRepo,
		statusRepo:      statusRepo,
		priorityRepo:    priorityRepo,
		customFieldRepo: customFieldRepo,
		userRepo:        userRepo,
		workflowRepo:    workflowRepo,
		engine:          engine,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "project_id", cmd.ProjectID, "name", cmd.Name, "creator_id", cmd.CreatorID)

	issueType, err := vo.NewIssueType(cmd.IssueType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	if _, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("priority %d not found", cmd.PriorityID))
	}

	statusID, err := uc.resolveStatus(ctx, cmd)
	if err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.ProjectID,
		cmd.Name,
		cmd.Description,
		issueType,
		cmd.PriorityID,
		cmd.CreatorID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newTicket.SetUID(id.MustGenerateWithPrefix(id.PrefixTicket, id.DefaultLength)); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := newTicket.SetStatus(statusID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := newTicket.SetSchedule(cmd.StartDate, cmd.DueDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newTicket.SetEpic(cmd.EpicID)
	newTicket.SetSprint(cmd.SprintID)

	if cmd.ParentID != nil {
		parent, err := uc.ticketRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("parent ticket %d not found", *cmd.ParentID))
		}
		if parent.ProjectID() != cmd.ProjectID {
			return nil, errors.NewValidationError("parent ticket belongs to a different project")
		}
		if err := newTicket.SetParent(cmd.ParentID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if len(cmd.AssigneeIDs) > 0 {
		ok, err := uc.userRepo.ExistAll(ctx, cmd.AssigneeIDs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NewValidationError("one or more assignees do not exist")
		}
		newTicket.ReplaceAssignees(cmd.AssigneeIDs)
	}

	if len(cmd.CustomFields) > 0 {
		filtered, err := uc.filterCustomFields(ctx, cmd.ProjectID, cmd.CustomFields)
		if err != nil {
			return nil, err
		}
		newTicket.ReplaceCustomFields(filtered)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		history, err := ticket.NewHistory(newTicket.ID(), cmd.CreatorID, nil, statusID, nil)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if err := uc.publisher.Publish(ticket.NewTicketCreatedEvent(
		newTicket.ID(), cmd.ProjectID, newTicket.Name(), statusID, cmd.CreatorID,
	)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "uid", newTicket.UID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		UID:       newTicket.UID(),
		StatusID:  statusID,
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// resolveStatus picks the explicit status if one was supplied, otherwise
// the project default. Either way the result must be a permitted starting
// status under the project's workflow; a default that is not gets replaced
// by the workflow's first initial status.
func (uc *CreateTicketUseCase) resolveStatus(ctx context.Context, cmd CreateTicketCommand) (uint, error) {
	wf, err := uc.workflowRepo.GetByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		return 0, err
	}

	if cmd.StatusID == nil {
		defaultStatus, err := uc.statusRepo.GetDefaultForProject(ctx, cmd.ProjectID)
		if err != nil {
			return 0, errors.NewValidationError(fmt.Sprintf("project %d has no statuses", cmd.ProjectID))
		}
		if uc.engine.Authorize(wf, nil, defaultStatus.ID()) == nil {
			return defaultStatus.ID(), nil
		}

		initials := wf.Definition().InitialStatuses
		if len(initials) == 0 {
			return 0, errors.NewValidationError(fmt.Sprintf("project %d workflow has no initial statuses", cmd.ProjectID))
		}
		return initials[0], nil
	}

	status, err := uc.statusRepo.GetByID(ctx, *cmd.StatusID)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("status %d not found", *cmd.StatusID))
	}
	if status.ProjectID() != cmd.ProjectID {
		return 0, errors.NewValidationError("status belongs to a different project")
	}

	if err := uc.engine.Authorize(wf, nil, status.ID()); err != nil {
		return 0, err
	}

	return status.ID(), nil
}

// filterCustomFields drops values whose key has no active custom field
// definition for the project.
func (uc *CreateTicketUseCase) filterCustomFields(ctx context.Context, projectID uint, values map[string]string) (map[string]string, error) {
	keys, err := uc.customFieldRepo.ListActiveKeys(ctx, projectID)
	if err != nil {
		return nil, err
	}

	active := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		active[key] = struct{}{}
	}

	filtered := make(map[string]string, len(values))
	for key, value := range values {
		if _, ok := active[key]; ok {
			filtered[key] = value
		}
	}

	return filtered, nil
}
