package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quarry/internal/domain/project"
	"quarry/internal/infrastructure/persistence/mappers"
	"quarry/internal/infrastructure/persistence/models"
	db "quarry/internal/shared/db"
)

type CustomFieldRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewCustomFieldRepository(db *gorm.DB) *CustomFieldRepository {
	return &CustomFieldRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *CustomFieldRepository) Save(ctx context.Context, f *project.CustomField) error {
	model := r.mapper.CustomFieldToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save custom field: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *CustomFieldRepository) Update(ctx context.Context, f *project.CustomField) error {
	model := r.mapper.CustomFieldToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomFieldModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "project_id", "key", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update custom field: %w", result.Error)
	}

	return nil
}

func (r *CustomFieldRepository) Delete(ctx context.Context, fieldID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CustomFieldModel{}, fieldID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete custom field: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *CustomFieldRepository) GetByID(ctx context.Context, fieldID uint) (*project.CustomField, error) {
	var model models.CustomFieldModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, fieldID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find custom field: %w", err)
	}

	return r.mapper.CustomFieldToDomain(&model)
}

func (r *CustomFieldRepository) ListActiveKeys(ctx context.Context, projectID uint) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var keys []string
	if err := tx.Model(&models.CustomFieldModel{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Pluck("key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list active custom field keys: %w", err)
	}

	return keys, nil
}

func (r *CustomFieldRepository) ListByProject(ctx context.Context, projectID uint) ([]*project.CustomField, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var fieldModels []models.CustomFieldModel
	if err := tx.
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&fieldModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	fields := make([]*project.CustomField, len(fieldModels))
	for i := range fieldModels {
		f, err := r.mapper.CustomFieldToDomain(&fieldModels[i])
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}

	return fields, nil
}
