package dto

import (
	"time"

	"quarry/internal/domain/project"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	UID         string    `json:"uid"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	Description string    `json:"description"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StatusDTO struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	IsCompleted bool      `json:"is_completed"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PriorityDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

type CustomFieldDTO struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	FieldType string    `json:"field_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProject(p *project.Project) *ProjectDTO {
	return &ProjectDTO{
		ID:          p.ID(),
		UID:         p.UID(),
		Name:        p.Name(),
		Key:         p.Key(),
		Description: p.Description(),
		OwnerID:     p.OwnerID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func FromStatus(s *project.Status) *StatusDTO {
	return &StatusDTO{
		ID:          s.ID(),
		ProjectID:   s.ProjectID(),
		Name:        s.Name(),
		Color:       s.Color(),
		IsCompleted: s.IsCompleted(),
		SortOrder:   s.SortOrder(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func FromPriority(p *project.Priority) *PriorityDTO {
	return &PriorityDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		Color:     p.Color(),
		SortOrder: p.SortOrder(),
	}
}

func FromCustomField(f *project.CustomField) *CustomFieldDTO {
	return &CustomFieldDTO{
		ID:        f.ID(),
		ProjectID: f.ProjectID(),
		Key:       f.Key(),
		Label:     f.Label(),
		FieldType: f.FieldType(),
		IsActive:  f.IsActive(),
		CreatedAt: f.CreatedAt(),
	}
}
