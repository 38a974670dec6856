package models

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	UID         string `gorm:"uniqueIndex;size:50;not null"`
	Name        string `gorm:"size:255;not null"`
	Key         string `gorm:"uniqueIndex;size:10;not null"`
	Description string `gorm:"type:text"`
	OwnerID     uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ProjectModel) TableName() string {
	return "projects"
}
