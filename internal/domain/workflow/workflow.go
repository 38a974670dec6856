package workflow

import (
	"fmt"
	"time"
)

// Workflow binds a transition definition to a project, one-to-one. Absence
// of a workflow for a project means no restriction at all.
type Workflow struct {
	id         uint
	projectID  uint
	definition Definition
	createdAt  time.Time
	updatedAt  time.Time
}

func NewWorkflow(projectID uint, definition Definition) (*Workflow, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	now := time.Now()
	return &Workflow{
		projectID:  projectID,
		definition: definition,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructWorkflow(
	id uint,
	projectID uint,
	definition Definition,
	createdAt, updatedAt time.Time,
) (*Workflow, error) {
	if id == 0 {
		return nil, fmt.Errorf("workflow ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	return &Workflow{
		id:         id,
		projectID:  projectID,
		definition: definition,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (w *Workflow) ID() uint {
	return w.id
}

func (w *Workflow) ProjectID() uint {
	return w.projectID
}

func (w *Workflow) Definition() Definition {
	return w.definition
}

func (w *Workflow) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Workflow) UpdatedAt() time.Time {
	return w.updatedAt
}

func (w *Workflow) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("workflow ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("workflow ID cannot be zero")
	}
	w.id = id
	return nil
}

// ReplaceDefinition swaps the whole definition. The definition is never
// patched incrementally.
func (w *Workflow) ReplaceDefinition(definition Definition) {
	w.definition = definition
	w.updatedAt = time.Now()
}
