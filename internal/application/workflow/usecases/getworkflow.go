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

type GetWorkflowQuery struct {
	ProjectID uint
}

type GetWorkflowUseCase struct {
	workflowRepo workflow.WorkflowRepository
	projectRepo  project.ProjectRepository
	logger       logger.Interface
}

func NewGetWorkflowUseCase(
	workflowRepo workflow.WorkflowRepository,
	projectRepo project.ProjectRepository,
	logger logger.Interface,
) *GetWorkflowUseCase {
	return &GetWorkflowUseCase{
		workflowRepo: workflowRepo,
		projectRepo:  projectRepo,
		logger:       logger,
	}
}

// Execute returns nil (not an error) when the project has no workflow;
// handlers render that as an empty definition.
func (uc *GetWorkflowUseCase) Execute(ctx context.Context, query GetWorkflowQuery) (*dto.WorkflowDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, query.ProjectID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", query.ProjectID))
	}

	wf, err := uc.workflowRepo.GetByProjectID(ctx, query.ProjectID)
	if err != nil {
		return nil, err
	}
	if wf == nil {
		return nil, nil
	}

	return dto.FromWorkflow(wf), nil
}
