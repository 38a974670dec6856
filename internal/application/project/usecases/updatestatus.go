package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type UpdateStatusCommand struct {
	StatusID    uint
	Name        *string
	Color       *string
	IsCompleted *bool
	SortOrder   *int
	UpdatedBy   uint
}

type UpdateStatusUseCase struct {
	statusRepo project.StatusRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	statusRepo project.StatusRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		statusRepo: statusRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error) {
	uc.logger.Infow("executing update status use case", "status_id", cmd.StatusID, "updated_by", cmd.UpdatedBy)

	s, err := uc.statusRepo.GetByID(ctx, cmd.StatusID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("status %d not found", cmd.StatusID))
	}

	name := s.Name()
	color := s.Color()
	isCompleted := s.IsCompleted()
	sortOrder := s.SortOrder()

	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Color != nil {
		color = *cmd.Color
	}
	if cmd.IsCompleted != nil {
		isCompleted = *cmd.IsCompleted
	}
	if cmd.SortOrder != nil {
		sortOrder = *cmd.SortOrder
	}

	if err := s.Update(name, color, isCompleted, sortOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.statusRepo.Update(txCtx, s)
	})
	if err != nil {
		uc.logger.Errorw("failed to update status", "status_id", cmd.StatusID, "error", err)
		return nil, err
	}

	return dto.FromStatus(s), nil
}
