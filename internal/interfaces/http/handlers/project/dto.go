package project

import (
	"quarry/internal/application/project/usecases"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Key         string `json:"key" binding:"required,min=2,max=10,alphanum"`
	Description string `json:"description" binding:"max=2000"`
}

func (r *CreateProjectRequest) ToCommand(ownerID uint) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		Name:        r.Name,
		Key:         r.Key,
		Description: r.Description,
		OwnerID:     ownerID,
	}
}

// UpdateProjectRequest omits the key on purpose: project keys are baked
// into ticket UIDs and never change after creation.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

type CreateStatusRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Color       string `json:"color" binding:"omitempty,max=20"`
	IsCompleted bool   `json:"is_completed"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateStatusRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=50"`
	Color       *string `json:"color,omitempty" binding:"omitempty,max=20"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

type CreateCustomFieldRequest struct {
	Key       string `json:"key" binding:"required,max=50"`
	Label     string `json:"label" binding:"required,max=100"`
	FieldType string `json:"field_type" binding:"required"`
}
