package usecases

import (
	"context"
	"fmt"

	"quarry/internal/domain/workflow"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type DeleteWorkflowCommand struct {
	ProjectID uint
	DeletedBy uint
}

// DeleteWorkflowUseCase removes the project's workflow, which makes every
// transition permitted again.
type DeleteWorkflowUseCase struct {
	workflowRepo workflow.WorkflowRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewDeleteWorkflowUseCase(
	workflowRepo workflow.WorkflowRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteWorkflowUseCase {
	return &DeleteWorkflowUseCase{
		workflowRepo: workflowRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *DeleteWorkflowUseCase) Execute(ctx context.Context, cmd DeleteWorkflowCommand) error {
	uc.logger.Infow("executing delete workflow use case", "project_id", cmd.ProjectID, "deleted_by", cmd.DeletedBy)

	existing, err := uc.workflowRepo.GetByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError(fmt.Sprintf("project %d has no workflow", cmd.ProjectID))
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.workflowRepo.DeleteByProjectID(txCtx, cmd.ProjectID)
	})
}
