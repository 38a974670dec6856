package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/ticket/dto"
	"quarry/internal/domain/shared/events"
	"quarry/internal/domain/ticket"
	vo "quarry/internal/domain/ticket/valueobjects"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type AddDependencyCommand struct {
	TicketID    uint
	DependsOnID uint
	Type        string
	AddedBy     uint
}

type AddDependencyUseCase struct {
	ticketRepo     ticket.TicketRepository
	dependencyRepo ticket.DependencyRepository
	txManager      TransactionManager
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewAddDependencyUseCase(
	ticketRepo ticket.TicketRepository,
	dependencyRepo ticket.DependencyRepository,
	txManager TransactionManager,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AddDependencyUseCase {
	return &AddDependencyUseCase{
		ticketRepo:     ticketRepo,
		dependencyRepo: dependencyRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *AddDependencyUseCase) Execute(ctx context.Context, cmd AddDependencyCommand) (*dto.DependencyDTO, error) {
	uc.logger.Infow("executing add dependency use case",
		"ticket_id", cmd.TicketID, "depends_on_id", cmd.DependsOnID, "type", cmd.Type)

	depType, err := vo.NewDependencyType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.DependsOnID); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("ticket %d not found", cmd.DependsOnID))
	}

	exists, err := uc.dependencyRepo.Exists(ctx, cmd.TicketID, cmd.DependsOnID, depType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("dependency already exists")
	}

	dependency, err := ticket.NewDependency(cmd.TicketID, cmd.DependsOnID, depType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.dependencyRepo.Save(txCtx, dependency)
	})
	if err != nil {
		uc.logger.Errorw("failed to save dependency", "error", err)
		return nil, err
	}

	if err := uc.publisher.Publish(ticket.NewTicketDependencyAddedEvent(
		cmd.TicketID, cmd.DependsOnID, depType.String(), cmd.AddedBy,
	)); err != nil {
		uc.logger.Warnw("failed to publish dependency added event", "error", err)
	}

	return dto.FromDependency(dependency), nil
}
