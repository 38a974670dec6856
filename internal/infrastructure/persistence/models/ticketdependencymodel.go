package models

type TicketDependencyModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index;uniqueIndex:idx_ticket_dependencies_triple"`
	DependsOnID uint   `gorm:"column:depends_on_ticket_id;not null;index;uniqueIndex:idx_ticket_dependencies_triple"`
	Type        string `gorm:"size:20;not null;uniqueIndex:idx_ticket_dependencies_triple"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketDependencyModel) TableName() string {
	return "ticket_dependencies"
}
