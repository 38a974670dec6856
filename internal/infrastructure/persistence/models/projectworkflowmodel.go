package models

import "gorm.io/datatypes"

type ProjectWorkflowModel struct {
	ID         uint           `gorm:"primaryKey"`
	ProjectID  uint           `gorm:"not null;uniqueIndex"`
	Definition datatypes.JSON `gorm:"not null"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (ProjectWorkflowModel) TableName() string {
	return "project_workflows"
}
