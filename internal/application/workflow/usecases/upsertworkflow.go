package usecases

import (
	"context"
	"fmt"

	"quarry/internal/application/workflow/dto"
	"quarry/internal/domain/project"
	"quarry/internal/domain/workflow"
	"quarry/internal/shared/errors"
	"quarry/internal/shared/logger"
)

type UpsertWorkflowCommand struct {
	ProjectID       uint
	InitialStatuses []uint
	Transitions     map[uint][]uint
	UpdatedBy       uint
}

// UpsertWorkflowUseCase replaces the project's workflow definition
// wholesale. Status IDs in the definition are not checked against the
// status table; stale IDs simply never match at transition time.
type UpsertWorkflowUseCase struct {
	workflowRepo workflow.WorkflowRepository
	projectRepo  project.ProjectRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewUpsertWorkflowUseCase(
	workflowRepo workflow.WorkflowRepository,
	projectRepo project.ProjectRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpsertWorkflowUseCase {
	return &UpsertWorkflowUseCase{
		workflowRepo: workflowRepo,
		projectRepo:  projectRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpsertWorkflowUseCase) Execute(ctx context.Context, cmd UpsertWorkflowCommand) (*dto.WorkflowDTO, error) {
	uc.logger.Infow("executing upsert workflow use case", "project_id", cmd.ProjectID, "updated_by", cmd.UpdatedBy)

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	if len(cmd.InitialStatuses) == 0 {
		return nil, errors.NewValidationError("at least one initial status is required")
	}

	definition := workflow.NewDefinition(cmd.InitialStatuses, cmd.Transitions)

	existing, err := uc.workflowRepo.GetByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}

	var wf *workflow.Workflow
	if existing != nil {
		existing.ReplaceDefinition(definition)
		wf = existing
	} else {
		wf, err = workflow.NewWorkflow(cmd.ProjectID, definition)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.workflowRepo.CreateOrUpdate(txCtx, wf)
	})
	if err != nil {
		uc.logger.Errorw("failed to save workflow", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}

	uc.logger.Infow("workflow saved", "project_id", cmd.ProjectID)
	return dto.FromWorkflow(wf), nil
}
