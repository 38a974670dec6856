package usecases

import (
	"context"

	"quarry/internal/application/workflow/dto"
)

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UpsertWorkflowExecutor interface {
	Execute(ctx context.Context, cmd UpsertWorkflowCommand) (*dto.WorkflowDTO, error)
}

type GetWorkflowExecutor interface {
	Execute(ctx context.Context, query GetWorkflowQuery) (*dto.WorkflowDTO, error)
}

type DeleteWorkflowExecutor interface {
	Execute(ctx context.Context, cmd DeleteWorkflowCommand) error
}
