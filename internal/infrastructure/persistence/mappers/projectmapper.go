package mappers

import (
	"quarry/internal/domain/project"
	"quarry/internal/infrastructure/persistence/models"
)

// ProjectMapper converts between project-context domain entities and
// persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)

	StatusToModel(s *project.Status) *models.TicketStatusModel
	StatusToDomain(model *models.TicketStatusModel) (*project.Status, error)

	PriorityToModel(p *project.Priority) *models.TicketPriorityModel
	PriorityToDomain(model *models.TicketPriorityModel) (*project.Priority, error)

	CustomFieldToModel(f *project.CustomField) *models.CustomFieldModel
	CustomFieldToDomain(model *models.CustomFieldModel) (*project.CustomField, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		UID:         p.UID(),
		Name:        p.Name(),
		Key:         p.Key(),
		Description: p.Description(),
		OwnerID:     p.OwnerID(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.UID,
		model.Name,
		model.Key,
		model.Description,
		model.OwnerID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ProjectMapperImpl) StatusToModel(s *project.Status) *models.TicketStatusModel {
	return &models.TicketStatusModel{
		ID:          s.ID(),
		ProjectID:   s.ProjectID(),
		Name:        s.Name(),
		Color:       s.Color(),
		IsCompleted: s.IsCompleted(),
		SortOrder:   s.SortOrder(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) StatusToDomain(model *models.TicketStatusModel) (*project.Status, error) {
	return project.ReconstructStatus(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Color,
		model.IsCompleted,
		model.SortOrder,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ProjectMapperImpl) PriorityToModel(p *project.Priority) *models.TicketPriorityModel {
	return &models.TicketPriorityModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Color:     p.Color(),
		SortOrder: p.SortOrder(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) PriorityToDomain(model *models.TicketPriorityModel) (*project.Priority, error) {
	return project.ReconstructPriority(
		model.ID,
		model.Name,
		model.Color,
		model.SortOrder,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ProjectMapperImpl) CustomFieldToModel(f *project.CustomField) *models.CustomFieldModel {
	return &models.CustomFieldModel{
		ID:        f.ID(),
		ProjectID: f.ProjectID(),
		Key:       f.Key(),
		Label:     f.Label(),
		FieldType: f.FieldType(),
		IsActive:  f.IsActive(),
		CreatedAt: f.CreatedAt().UnixMilli(),
		UpdatedAt: f.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) CustomFieldToDomain(model *models.CustomFieldModel) (*project.CustomField, error) {
	return project.ReconstructCustomField(
		model.ID,
		model.ProjectID,
		model.Key,
		model.Label,
		model.FieldType,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
