package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	DeletedBy uint
}

// DeleteTicketUseCase removes a ticket unless other tickets still hang off
// it: children or blocking dependents make deletion a conflict.
type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	dependencyRepo ticket.DependencyRepository
	txManager      TransactionManager
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	dependencyRepo ticket.DependencyRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		dependencyRepo: dependencyRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "deleted_by", cmd.DeletedBy)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	children, err := uc.ticketRepo.CountChildren(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if children > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("ticket %d has %d child tickets", cmd.TicketID, children))
	}

	dependents, err := uc.dependencyRepo.CountBlockingDependents(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("ticket %d blocks %d other tickets", cmd.TicketID, dependents))
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if err := uc.publisher.Publish(ticket.NewTicketDeletedEvent(t.ID(), t.ProjectID(), cmd.DeletedBy)); err != nil {
		uc.logger.Warnw("failed to publish ticket deleted event", "error", err)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
