package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	UID         string `gorm:"uniqueIndex;size:50;not null"`
	ProjectID   uint   `gorm:"not null;index"`
	StatusID    uint   `gorm:"column:ticket_status_id;not null;index"`
	PriorityID  uint   `gorm:"not null;index"`
	EpicID      *uint  `gorm:"index"`
	SprintID    *uint  `gorm:"index"`
	ParentID    *uint  `gorm:"index"`
	IssueType   string `gorm:"size:20;not null;index"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	StartDate   *int64
	DueDate     *int64
	CreatedBy   uint  `gorm:"not null;index"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketAssigneeModel struct {
	ID        uint  `gorm:"primaryKey"`
	TicketID  uint  `gorm:"not null;index;uniqueIndex:idx_ticket_assignees_pair"`
	UserID    uint  `gorm:"not null;index;uniqueIndex:idx_ticket_assignees_pair"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (TicketAssigneeModel) TableName() string {
	return "ticket_assignees"
}

type TicketCustomValueModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index;uniqueIndex:idx_ticket_custom_values_key"`
	FieldKey  string `gorm:"size:100;not null;uniqueIndex:idx_ticket_custom_values_key"`
	Value     string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketCustomValueModel) TableName() string {
	return "ticket_custom_values"
}
