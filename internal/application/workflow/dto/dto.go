package dto

import (
	"time"

	"quarry/internal/domain/workflow"
)

type WorkflowDTO struct {
	ID              uint            `json:"id"`
	ProjectID       uint            `json:"project_id"`
	InitialStatuses []uint          `json:"initial_statuses"`
	Transitions     map[uint][]uint `json:"transitions"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromWorkflow(w *workflow.Workflow) *WorkflowDTO {
	definition := w.Definition()
	return &WorkflowDTO{
		ID:              w.ID(),
		ProjectID:       w.ProjectID(),
		InitialStatuses: definition.InitialStatuses,
		Transitions:     definition.Transitions,
		CreatedAt:       w.CreatedAt(),
		UpdatedAt:       w.UpdatedAt(),
	}
}
