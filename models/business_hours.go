package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessHours holds one day's operating rule. A business has at most one
// row per day_of_week; missing days render as "hours not available".
type BusinessHours struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_business_hours_day" json:"business_id"`
	DayOfWeek  int       `gorm:"not null;uniqueIndex:idx_business_hours_day" json:"day_of_week"` // 0=Sunday, 6=Saturday
	IsClosed   bool      `gorm:"default:false" json:"is_closed"`
	Is24Hours  bool      `gorm:"column:is_24_hours;default:false" json:"is_24_hours"`
	OpenTime   *string   `json:"open_time"`  // "HH:MM", nil when closed or 24-hour
	CloseTime  *string   `json:"close_time"` // "HH:MM", nil when closed or 24-hour
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *BusinessHours) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
