package models

type TicketStatusModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Color       string `gorm:"size:20"`
	IsCompleted bool   `gorm:"not null;default:false"`
	SortOrder   int    `gorm:"not null;default:0;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketStatusModel) TableName() string {
	return "ticket_statuses"
}

type TicketPriorityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Color     string `gorm:"size:20"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketPriorityModel) TableName() string {
	return "ticket_priorities"
}
