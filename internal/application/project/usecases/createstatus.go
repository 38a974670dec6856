package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/project/dto"
	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type CreateStatusCommand struct {
	ProjectID   uint
	Name        string
	Color       string
	IsCompleted bool
	SortOrder   int
	CreatedBy   uint
}

type CreateStatusUseCase struct {
	projectRepo project.ProjectRepository
	statusRepo  project.StatusRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewCreateStatusUseCase(
	projectRepo project.ProjectRepository,
	statusRepo project.StatusRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateStatusUseCase {
	return &CreateStatusUseCase{
		projectRepo: projectRepo,
		statusRepo:  statusRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateStatusUseCase) Execute(ctx context.Context, cmd CreateStatusCommand) (*dto.StatusDTO, error) {
	uc.logger.Infow("executing create status use case", "project_id", cmd.ProjectID, "name", cmd.Name)

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	s, err := project.NewStatus(cmd.ProjectID, cmd.Name, cmd.Color, cmd.IsCompleted, cmd.SortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.statusRepo.Save(txCtx, s)
	})
	if err != nil {
		uc.logger.Errorw("failed to create status", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	return dto.FromStatus(s), nil
}
