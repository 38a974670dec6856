package seeds

import (
	"gorm.io/gorm"

	"quarry/internal/infrastructure/persistence/models"
)

// SeedDefaultStatuses seeds a new project with the standard status set.
// Called right after project creation, inside the same transaction.
func SeedDefaultStatuses(db *gorm.DB, projectID uint) error {
	statuses := []models.TicketStatusModel{
		{ProjectID: projectID, Name: "Backlog", Color: "#9e9e9e", IsCompleted: false, SortOrder: 1},
		{ProjectID: projectID, Name: "In Progress", Color: "#1e88e5", IsCompleted: false, SortOrder: 2},
		{ProjectID: projectID, Name: "In Review", Color: "#8e24aa", IsCompleted: false, SortOrder: 3},
		{ProjectID: projectID, Name: "Done", Color: "#43a047", IsCompleted: true, SortOrder: 4},
	}

	return db.Create(&statuses).Error
}
