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
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID     uint
	Name         *string
	Description  *string
	IssueType    *string
	PriorityID   *uint
	ParentID     *uint
	ClearParent  bool
	EpicID       *uint
	ClearEpic    bool
	SprintID     *uint
	ClearSprint  bool
	StartDate    *time.Time
	DueDate      *time.Time
	CustomFields map[string]string
	// AssigneeIDs nil leaves the assignee set unchanged; an explicit empty
	// slice unassigns everyone.
	AssigneeIDs []uint
	UpdatedBy   uint
}

type UpdateTicketResult struct {
	TicketID  uint
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	priorityRepo    project.PriorityRepository
	customFieldRepo project.CustomFieldRepository
	userRepo        user.UserRepository
	txManager       TransactionManager
	publisher       events.EventPublisher
	logger          logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	priorityRepo project.PriorityRepository,
	customFieldRepo project.CustomFieldRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:      ticketRepo,
		priorityRepo:    priorityRepo,
		customFieldRepo: customFieldRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "updated_by", cmd.UpdatedBy)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if cmd.Name != nil || cmd.Description != nil {
		name := t.Name()
		description := t.Description()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Description != nil {
			description = *cmd.Description
		}
		if err := t.UpdateDetails(name, description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IssueType != nil {
		issueType, err := vo.NewIssueType(*cmd.IssueType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.SetIssueType(issueType); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.PriorityID != nil {
		if _, err := uc.priorityRepo.GetByID(ctx, *cmd.PriorityID); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("priority %d not found", *cmd.PriorityID))
		}
		if err := t.SetPriority(*cmd.PriorityID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.applyParentChange(ctx, t, cmd); err != nil {
		return nil, err
	}

	if cmd.ClearEpic {
		t.SetEpic(nil)
	} else if cmd.EpicID != nil {
		t.SetEpic(cmd.EpicID)
	}

	if cmd.ClearSprint {
		t.SetSprint(nil)
	} else if cmd.SprintID != nil {
		t.SetSprint(cmd.SprintID)
	}

	if cmd.StartDate != nil || cmd.DueDate != nil {
		startDate := t.StartDate()
		dueDate := t.DueDate()
		if cmd.StartDate != nil {
			startDate = cmd.StartDate
		}
		if cmd.DueDate != nil {
			dueDate = cmd.DueDate
		}
		if err := t.SetSchedule(startDate, dueDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.CustomFields != nil {
		filtered, err := uc.filterCustomFields(ctx, t.ProjectID(), cmd.CustomFields)
		if err != nil {
			return nil, err
		}
		t.ReplaceCustomFields(filtered)
	}

	if cmd.AssigneeIDs != nil {
		if len(cmd.AssigneeIDs) > 0 {
			ok, err := uc.userRepo.ExistAll(ctx, cmd.AssigneeIDs)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.NewValidationError("one or more assignees do not exist")
			}
		}
		t.ReplaceAssignees(cmd.AssigneeIDs)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		if cmd.CustomFields != nil {
			if err := uc.ticketRepo.ReplaceCustomValues(txCtx, t.ID(), t.CustomFields()); err != nil {
				return err
			}
		}
		if cmd.AssigneeIDs != nil {
			if err := uc.ticketRepo.ReplaceAssignees(txCtx, t.ID(), t.AssigneeIDs()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := uc.publisher.Publish(ticket.NewTicketUpdatedEvent(t.ID(), t.ProjectID(), cmd.UpdatedBy)); err != nil {
		uc.logger.Warnw("failed to publish ticket updated event", "error", err)
	}

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

// applyParentChange validates a new parent: it must exist, live in the same
// project, and must not close a cycle in the parent chain.
func (uc *UpdateTicketUseCase) applyParentChange(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.ClearParent {
		return t.SetParent(nil)
	}
	if cmd.ParentID == nil {
		return nil
	}

	parent, err := uc.ticketRepo.GetByID(ctx, *cmd.ParentID)
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("parent ticket %d not found", *cmd.ParentID))
	}
	if parent.ProjectID() != t.ProjectID() {
		return errors.NewValidationError("parent ticket belongs to a different project")
	}

	if err := ticket.CheckCircularReference(ctx, uc.ticketRepo, t.ID(), *cmd.ParentID); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := t.SetParent(cmd.ParentID); err != nil {
		return errors.NewValidationError(err.Error())
	}

	return nil
}

func (uc *UpdateTicketUseCase) filterCustomFields(ctx context.Context, projectID uint, values map[string]string) (map[string]string, error) {
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
