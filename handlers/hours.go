package handlers

import (
	"net/http"
	"time"

	"eugene-eats-backend/database"
	"eugene-eats-backend/hours"
	"eugene-eats-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HoursHandler struct {
	DB *gorm.DB
}

// hourEntry is one submitted day from the admin hours editor. Fields
// carry no `required` tags: day 0 (Sunday) and false booleans are valid
// zero values, and range checks belong to hours.Validate.
type hourEntry struct {
	DayOfWeek int    `json:"day_of_week"`
	IsClosed  bool   `json:"is_closed"`
	Is24Hours bool   `json:"is_24_hours"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// toSchedule flattens stored rows into the pure schedule type the status
// engine consumes. Nil time pointers become empty strings.
func toSchedule(rows []models.BusinessHours) hours.Schedule {
	s := make(hours.Schedule, 0, len(rows))
	for _, r := range rows {
		d := hours.DayHours{
			DayOfWeek: r.DayOfWeek,
			IsClosed:  r.IsClosed,
			Is24Hours: r.Is24Hours,
		}
		if r.OpenTime != nil {
			d.OpenTime = *r.OpenTime
		}
		if r.CloseTime != nil {
			d.CloseTime = *r.CloseTime
		}
		s = append(s, d)
	}
	return s
}

// GetBusinessHours returns a business's week for the admin editor,
// seeding the default 9-to-5 schedule the first time it is opened.
func (h *HoursHandler) GetBusinessHours(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var business models.Business
	if err := h.DB.Where("id = ?", businessID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	rows, err := database.LoadSchedule(h.DB, businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hours"})
		return
	}

	if len(rows) == 0 {
		rows, err = database.ReplaceSchedule(h.DB, businessID, database.DefaultSchedule(businessID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create default hours"})
			return
		}
	}

	c.JSON(http.StatusOK, rows)
}

// UpdateBusinessHours replaces a business's entire week with the
// submitted days. The payload is validated as a whole; any error rejects
// the whole submission and leaves the stored schedule untouched.
func (h *HoursHandler) UpdateBusinessHours(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business ID"})
		return
	}

	var business models.Business
	if err := h.DB.Where("id = ?", businessID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	var entries []hourEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	schedule := make(hours.Schedule, 0, len(entries))
	for _, e := range entries {
		schedule = append(schedule, hours.DayHours{
			DayOfWeek: e.DayOfWeek,
			IsClosed:  e.IsClosed,
			Is24Hours: e.Is24Hours,
			OpenTime:  e.OpenTime,
			CloseTime: e.CloseTime,
		})
	}

	if errs := hours.Validate(schedule); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hours", "errors": errs})
		return
	}

	rows := make([]models.BusinessHours, 0, len(entries))
	for _, e := range entries {
		row := models.BusinessHours{
			BusinessID: businessID,
			DayOfWeek:  e.DayOfWeek,
			IsClosed:   e.IsClosed,
			Is24Hours:  e.Is24Hours,
		}
		if !e.IsClosed && !e.Is24Hours {
			open, close := e.OpenTime, e.CloseTime
			row.OpenTime = &open
			row.CloseTime = &close
		}
		rows = append(rows, row)
	}

	saved, err := database.ReplaceSchedule(h.DB, businessID, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save hours"})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetPublicBusinessHours serves the public hours widget: the stored week
// plus the computed open/closed status and next opening for right now.
func (h *HoursHandler) GetPublicBusinessHours(c *gin.Context) {
	slug := c.Param("slug")

	var business models.Business
	if err := h.DB.Where("slug = ? AND is_active = ?", slug, true).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	rows, err := database.LoadSchedule(h.DB, business.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hours"})
		return
	}

	schedule := toSchedule(rows)
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"hours":     rows,
		"status":    hours.DescribeStatus(schedule, now),
		"next_open": hours.NextOpen(schedule, now),
	})
}
