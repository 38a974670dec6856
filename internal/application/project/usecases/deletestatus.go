package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type DeleteStatusCommand struct {
	StatusID  uint
	DeletedBy uint
}

// DeleteStatusUseCase removes a status unless tickets still reference it;
// those must be moved first.
type DeleteStatusUseCase struct {
	statusRepo project.StatusRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteStatusUseCase(
	statusRepo project.StatusRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteStatusUseCase {
	return &DeleteStatusUseCase{
		statusRepo: statusRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteStatusUseCase) Execute(ctx context.Context, cmd DeleteStatusCommand) error {
	uc.logger.Infow("executing delete status use case", "status_id", cmd.StatusID, "deleted_by", cmd.DeletedBy)

	if _, err := uc.statusRepo.GetByID(ctx, cmd.StatusID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("status %d not found", cmd.StatusID))
	}

	count, err := uc.statusRepo.CountTicketsWithStatus(ctx, cmd.StatusID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("status %d is used by %d tickets", cmd.StatusID, count))
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.statusRepo.Delete(txCtx, cmd.StatusID)
	})
}
