package usecases

import (
	"context"

	"quarry/internal/application/project/dto"
)

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatusSeeder installs the default status set for a freshly created
// project, inside the creation transaction.
type StatusSeeder interface {
	SeedDefaults(ctx context.Context, projectID uint) error
}

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error)
}

type UpdateProjectExecutor interface {
	Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error)
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, cmd DeleteProjectCommand) error
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error)
}

type CreateStatusExecutor interface {
	Execute(ctx context.Context, cmd CreateStatusCommand) (*dto.StatusDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error)
}

type DeleteStatusExecutor interface {
	Execute(ctx context.Context, cmd DeleteStatusCommand) error
}

type ListStatusesExecutor interface {
	Execute(ctx context.Context, query ListStatusesQuery) ([]*dto.StatusDTO, error)
}

type ListPrioritiesExecutor interface {
	Execute(ctx context.Context) ([]*dto.PriorityDTO, error)
}

type CreateCustomFieldExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomFieldCommand) (*dto.CustomFieldDTO, error)
}

type DeactivateCustomFieldExecutor interface {
	Execute(ctx context.Context, cmd DeactivateCustomFieldCommand) error
}

type ListCustomFieldsExecutor interface {
	Execute(ctx context.Context, query ListCustomFieldsQuery) ([]*dto.CustomFieldDTO, error)
}
