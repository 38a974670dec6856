package seeds

import (
	"gorm.io/gorm"

	"quarry/internal/infrastructure/persistence/models"
)

// SeedPriorities seeds the global ticket priority table. Existing rows are
// left alone; seeding is idempotent by name.
func SeedPriorities(db *gorm.DB) error {
	priorities := []models.TicketPriorityModel{
		{Name: "Critical", Color: "#e53935", SortOrder: 1},
		{Name: "High", Color: "#fb8c00", SortOrder: 2},
		{Name: "Medium", Color: "#fdd835", SortOrder: 3},
		{Name: "Low", Color: "#43a047", SortOrder: 4},
	}

	for _, priority := range priorities {
		var count int64
		if err := db.Model(&models.TicketPriorityModel{}).
			Where("name = ?", priority.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&priority).Error; err != nil {
			return err
		}
	}

	return nil
}
