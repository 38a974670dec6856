package project

import "context"

type ProjectRepository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	// Delete removes the project and cascades to its statuses, workflow,
	// custom fields, and tickets.
	Delete(ctx context.Context, projectID uint) error
	GetByID(ctx context.Context, projectID uint) (*Project, error)
	GetByKey(ctx context.Context, key string) (*Project, error)
	List(ctx context.Context, page, pageSize int) ([]*Project, int64, error)
}

type StatusRepository interface {
	Save(ctx context.Context, status *Status) error
	Update(ctx context.Context, status *Status) error
	Delete(ctx context.Context, statusID uint) error
	GetByID(ctx context.Context, statusID uint) (*Status, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Status, error)
	// GetDefaultForProject returns the project's status with the lowest
	// sort order, used for tickets created without an explicit status.
	GetDefaultForProject(ctx context.Context, projectID uint) (*Status, error)
	CountTicketsWithStatus(ctx context.Context, statusID uint) (int64, error)
}

type PriorityRepository interface {
	Save(ctx context.Context, priority *Priority) error
	GetByID(ctx context.Context, priorityID uint) (*Priority, error)
	List(ctx context.Context) ([]*Priority, error)
}

type CustomFieldRepository interface {
	Save(ctx context.Context, field *CustomField) error
	Update(ctx context.Context, field *CustomField) error
	Delete(ctx context.Context, fieldID uint) error
	GetByID(ctx context.Context, fieldID uint) (*CustomField, error)
	// ListActiveKeys returns the keys of active custom fields for the
	// project; used to filter ticket custom value writes.
	ListActiveKeys(ctx context.Context, projectID uint) ([]string, error)
	ListByProject(ctx context.Context, projectID uint) ([]*CustomField, error)
}
