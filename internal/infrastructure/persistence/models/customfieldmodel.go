package models

type CustomFieldModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index;uniqueIndex:idx_custom_fields_project_key"`
	Key       string `gorm:"size:100;not null;uniqueIndex:idx_custom_fields_project_key"`
	Label     string `gorm:"size:255;not null"`
	FieldType string `gorm:"size:20;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomFieldModel) TableName() string {
	return "custom_fields"
}
