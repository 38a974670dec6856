package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/project"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type DeleteProjectCommand struct {
	ProjectID uint
	DeletedBy uint
}

// DeleteProjectUseCase removes the project and everything under it:
// tickets, statuses, custom fields, and the workflow.
type DeleteProjectUseCase struct {
	projectRepo project.ProjectRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.ProjectRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	uc.logger.Infow("executing delete project use case", "project_id", cmd.ProjectID, "deleted_by", cmd.DeletedBy)

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.Delete(txCtx, cmd.ProjectID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete project", "project_id", cmd.ProjectID, "error", err)
		return err
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}
