package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	"quarry/internal/domain/user"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID    uint
	AssigneeIDs []uint
	AssignedBy  uint
}

// AssignTicketUseCase replaces the ticket's assignee set wholesale. An
// empty list unassigns everyone.
type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	txManager  TransactionManager
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) error {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "assignee_count", len(cmd.AssigneeIDs), "assigned_by", cmd.AssignedBy)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if len(cmd.AssigneeIDs) > 0 {
		ok, err := uc.userRepo.ExistAll(ctx, cmd.AssigneeIDs)
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewValidationError("one or more assignees do not exist")
		}
	}

	t.ReplaceAssignees(cmd.AssigneeIDs)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.ReplaceAssignees(txCtx, t.ID(), t.AssigneeIDs())
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if err := uc.publisher.Publish(ticket.NewTicketAssignedEvent(
		t.ID(), t.ProjectID(), t.AssigneeIDs(), cmd.AssignedBy,
	)); err != nil {
		uc.logger.Warnw("failed to publish ticket assigned event", "error", err)
	}

	return nil
}
