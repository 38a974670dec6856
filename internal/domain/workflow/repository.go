package workflow

import "context"

type WorkflowRepository interface {
	// GetByProjectID returns the project's workflow, or (nil, nil) when the
	// project has none configured.
	GetByProjectID(ctx context.Context, projectID uint) (*Workflow, error)
	// CreateOrUpdate replaces the project's workflow definition wholesale.
	CreateOrUpdate(ctx context.Context, workflow *Workflow) error
	DeleteByProjectID(ctx context.Context, projectID uint) error
}
