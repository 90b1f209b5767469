package database

import (
	"fmt"

	"eugene-eats-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultOpenTime/DefaultCloseTime seed a business's week the first time
// an admin opens the hours editor.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "17:00"
)

// LoadSchedule returns a business's day rows ordered by day of week. The
// result may hold fewer than 7 rows; missing days mean "hours unknown".
func LoadSchedule(db *gorm.DB, businessID uuid.UUID) ([]models.BusinessHours, error) {
	var hours []models.BusinessHours
	if err := db.Where("business_id = ?", businessID).Order("day_of_week").Find(&hours).Error; err != nil {
		return nil, fmt.Errorf("failed to load schedule for business %s: %w", businessID, err)
	}
	return hours, nil
}

// ReplaceSchedule swaps a business's entire week for the submitted set.
// Delete and insert run in one transaction so a concurrent reader never
// observes a half-replaced (or empty) week, and a failed insert rolls
// back to the previous schedule.
func ReplaceSchedule(db *gorm.DB, businessID uuid.UUID, entries []models.BusinessHours) ([]models.BusinessHours, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", businessID).Delete(&models.BusinessHours{}).Error; err != nil {
			return fmt.Errorf("failed to clear existing schedule: %w", err)
		}
		for i := range entries {
			entries[i].ID = uuid.New()
			entries[i].BusinessID = businessID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return fmt.Errorf("failed to insert day %d: %w", entries[i].DayOfWeek, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return LoadSchedule(db, businessID)
}

// DefaultSchedule builds the 7-day 9-to-5 week used when a business has
// no hours on record yet.
func DefaultSchedule(businessID uuid.UUID) []models.BusinessHours {
	week := make([]models.BusinessHours, 7)
	for day := 0; day < 7; day++ {
		open, close := DefaultOpenTime, DefaultCloseTime
		week[day] = models.BusinessHours{
			ID:         uuid.New(),
			BusinessID: businessID,
			DayOfWeek:  day,
			OpenTime:   &open,
			CloseTime:  &close,
		}
	}
	return week
}
