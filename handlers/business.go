package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eugene-eats-backend/firebase"
	"eugene-eats-backend/hours"
	"eugene-eats-backend/models"
	"eugene-eats-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
}

// GetBusinesses lists active businesses for the public directory.
// Supports ?category=<uuid>, ?featured=true and ?search=<term>.
func (h *BusinessHandler) GetBusinesses(c *gin.Context) {
	query := h.DB.Preload("Category").Where("is_active = ?", true)

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var businesses []models.Business
	if err := query.Order("name").Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// GetBusiness serves one public business page: the record with its
// category and hours, plus open/closed status computed for right now.
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	slug := c.Param("slug")

	var business models.Business
	err := h.DB.Preload("Category").
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week")
		}).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&business).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	schedule := toSchedule(business.Hours)
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"business":  business,
		"status":    hours.DescribeStatus(schedule, now),
		"next_open": hours.NextOpen(schedule, now),
	})
}

// GetBusinessesAdmin lists all businesses (active and inactive) with
// pagination for the admin console.
func (h *BusinessHandler) GetBusinessesAdmin(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.DB.Model(&models.Business{}).Preload("Category")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count businesses"})
		return
	}

	var businesses []models.Business
	if err := query.Order("name").Offset((page - 1) * limit).Limit(limit).Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses": businesses,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}

func (h *BusinessHandler) GetBusinessAdmin(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	err := h.DB.Preload("Category").
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week")
		}).
		Where("id = ?", id).
		First(&business).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	c.JSON(http.StatusOK, business)
}

// CreateBusiness accepts multipart form data so an image can be attached
// in the same request. The slug is derived from the name and made unique
// with a numeric suffix when taken.
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	categoryID, err := uuid.Parse(c.PostForm("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid category_id is required"})
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	business := models.Business{
		ID:          uuid.New(),
		Name:        name,
		Slug:        h.uniqueSlug(utils.Slugify(name), uuid.Nil),
		Description: c.PostForm("description"),
		Address:     c.PostForm("address"),
		Phone:       c.PostForm("phone"),
		Website:     c.PostForm("website"),
		CategoryID:  categoryID,
		IsFeatured:  c.PostForm("is_featured") == "true",
		IsActive:    c.PostForm("is_active") != "false",
	}

	if url, ok := h.uploadBusinessImage(c); ok {
		business.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	if err := h.DB.Create(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, business)
}

func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.DB.Where("id = ?", id).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" && name != business.Name {
		business.Name = name
		business.Slug = h.uniqueSlug(utils.Slugify(name), business.ID)
	}

	if categoryID := c.PostForm("category_id"); categoryID != "" {
		parsed, err := uuid.Parse(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		business.CategoryID = parsed
	}

	if v, ok := c.GetPostForm("description"); ok {
		business.Description = v
	}
	if v, ok := c.GetPostForm("address"); ok {
		business.Address = v
	}
	if v, ok := c.GetPostForm("phone"); ok {
		business.Phone = v
	}
	if v, ok := c.GetPostForm("website"); ok {
		business.Website = v
	}
	if v, ok := c.GetPostForm("is_featured"); ok {
		business.IsFeatured = v == "true"
	}
	if v, ok := c.GetPostForm("is_active"); ok {
		business.IsActive = v == "true"
	}

	if url, ok := h.uploadBusinessImage(c); ok {
		business.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	if err := h.DB.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		return
	}

	c.JSON(http.StatusOK, business)
}

// DeleteBusiness soft-deletes the business and hard-deletes its hours
// rows in one transaction so neither outlives the other.
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.DB.Where("id = ?", id).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", business.ID).Delete(&models.BusinessHours{}).Error; err != nil {
			return err
		}
		return tx.Delete(&business).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

// uploadBusinessImage pulls the optional "image" form file and stores it.
// Returns ("", false) when no file was attached; aborts the request on a
// bad upload so callers can just return.
func (h *BusinessHandler) uploadBusinessImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	if err := utils.ValidateFileUpload(fileHeader); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return "", false
	}
	defer file.Close()

	url, err := h.Storage.UploadBusinessImage(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return "", false
	}

	return url, true
}

// uniqueSlug appends -2, -3, ... until the slug is free. excludeID lets
// an update keep its own slug.
func (h *BusinessHandler) uniqueSlug(base string, excludeID uuid.UUID) string {
	slug := base
	for i := 2; ; i++ {
		var count int64
		query := h.DB.Model(&models.Business{}).Where("slug = ?", slug)
		if excludeID != uuid.Nil {
			query = query.Where("id != ?", excludeID)
		}
		query.Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
