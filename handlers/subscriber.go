package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"eugene-eats-backend/models"
	"eugene-eats-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriberHandler struct {
	DB *gorm.DB
}

// Subscribe signs a visitor up for the newsletter. Sits behind the
// per-IP rate limiter; duplicate emails get a 409 rather than a silent
// re-insert so the form can tell the visitor they are already on the list.
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var existing models.Subscriber
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already subscribed"})
		return
	}

	subscriber := models.Subscriber{
		ID:    uuid.New(),
		Email: req.Email,
		Name:  req.Name,
	}

	if err := h.DB.Create(&subscriber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	utils.SendSubscriberWelcome(subscriber.Email, subscriber.Name)

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully"})
}

func (h *SubscriberHandler) GetSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber
	if err := h.DB.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribers": subscribers,
		"total":       len(subscribers),
	})
}

func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	id := c.Param("id")

	result := h.DB.Delete(&models.Subscriber{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted successfully"})
}

// ExportSubscribers streams the full list as a CSV attachment for
// import into a mailing tool.
func (h *SubscriberHandler) ExportSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber
	if err := h.DB.Order("created_at").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}

	filename := fmt.Sprintf("subscribers_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"email", "name", "subscribed_at"})
	for _, s := range subscribers {
		_ = w.Write([]string{s.Email, s.Name, s.CreatedAt.Format(time.RFC3339)})
	}
	w.Flush()
}
