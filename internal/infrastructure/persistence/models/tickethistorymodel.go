package models

type TicketHistoryModel struct {
	ID           uint  `gorm:"primaryKey"`
	TicketID     uint  `gorm:"not null;index"`
	UserID       uint  `gorm:"not null;index"`
	FromStatusID *uint `gorm:"column:from_ticket_status_id"`
	ToStatusID   uint  `gorm:"column:to_ticket_status_id;not null"`
	Note         *string `gorm:"type:text"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_histories"
}
