package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/ticket"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type RemoveDependencyCommand struct {
	TicketID     uint
	DependencyID uint
	RemovedBy    uint
}

type RemoveDependencyUseCase struct {
	dependencyRepo ticket.DependencyRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewRemoveDependencyUseCase(
	dependencyRepo ticket.DependencyRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RemoveDependencyUseCase {
	return &RemoveDependencyUseCase{
		dependencyRepo: dependencyRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *RemoveDependencyUseCase) Execute(ctx context.Context, cmd RemoveDependencyCommand) error {
	uc.logger.Infow("executing remove dependency use case",
		"ticket_id", cmd.TicketID, "dependency_id", cmd.DependencyID)

	dependency, err := uc.dependencyRepo.GetByID(ctx, cmd.DependencyID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("dependency %d not found", cmd.DependencyID))
	}
	if dependency.TicketID() != cmd.TicketID {
		return errors.NewNotFoundError(
			fmt.Sprintf("dependency %d does not belong to ticket %d", cmd.DependencyID, cmd.TicketID))
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.dependencyRepo.Delete(txCtx, cmd.DependencyID)
	})
}
