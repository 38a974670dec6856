package mappers

import (
	"encoding/json"
	"fmt"

	"quarry/internal/domain/workflow"
	"quarry/internal/infrastructure/persistence/models"
)

// WorkflowMapper converts between workflow entities and persistence models.
// The definition is JSON-encoded wholesale; there is no partial patching.
type WorkflowMapper interface {
	ToModel(w *workflow.Workflow) (*models.ProjectWorkflowModel, error)
	ToDomain(model *models.ProjectWorkflowModel) (*workflow.Workflow, error)
}

type WorkflowMapperImpl struct{}

func NewWorkflowMapper() WorkflowMapper {
	return &WorkflowMapperImpl{}
}

func (m *WorkflowMapperImpl) ToModel(w *workflow.Workflow) (*models.ProjectWorkflowModel, error) {
	definitionJSON, err := json.Marshal(w.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow definition (project_id=%d): %w", w.ProjectID(), err)
	}

	return &models.ProjectWorkflowModel{
		ID:         w.ID(),
		ProjectID:  w.ProjectID(),
		Definition: definitionJSON,
		CreatedAt:  w.CreatedAt().UnixMilli(),
		UpdatedAt:  w.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *WorkflowMapperImpl) ToDomain(model *models.ProjectWorkflowModel) (*workflow.Workflow, error) {
	var definition workflow.Definition
	if len(model.Definition) > 0 {
		if err := json.Unmarshal(model.Definition, &definition); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workflow definition (id=%d): %w", model.ID, err)
		}
	}
	if definition.Transitions == nil {
		definition.Transitions = make(map[uint][]uint)
	}

	return workflow.ReconstructWorkflow(
		model.ID,
		model.ProjectID,
		definition,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
