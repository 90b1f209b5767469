package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eugene-eats-backend/firebase"
	"eugene-eats-backend/models"
	"eugene-eats-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
}

// GetPosts lists published posts for the public blog, newest first.
func (h *BlogHandler) GetPosts(c *gin.Context) {
	var posts []models.BlogPost
	err := h.DB.Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	var post models.BlogPost
	if err := h.DB.Where("slug = ? AND is_published = ?", slug, true).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPostsAdmin lists all posts, drafts included, with pagination.
func (h *BlogHandler) GetPostsAdmin(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := h.DB.Model(&models.BlogPost{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count posts"})
		return
	}

	var posts []models.BlogPost
	err := h.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// CreatePost accepts multipart form data so a cover image can be
// attached in the same request. PublishedAt is stamped the first time a
// post goes out.
func (h *BlogHandler) CreatePost(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	post := models.BlogPost{
		ID:          uuid.New(),
		Title:       title,
		Slug:        h.uniquePostSlug(utils.Slugify(title), uuid.Nil),
		Excerpt:     c.PostForm("excerpt"),
		Content:     c.PostForm("content"),
		IsPublished: c.PostForm("is_published") == "true",
	}

	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if url, ok := h.uploadCoverImage(c); ok {
		post.CoverImage = url
	} else if c.IsAborted() {
		return
	}

	if err := h.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var post models.BlogPost
	if err := h.DB.Where("id = ?", id).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if title := strings.TrimSpace(c.PostForm("title")); title != "" && title != post.Title {
		post.Title = title
		post.Slug = h.uniquePostSlug(utils.Slugify(title), post.ID)
	}

	if v, ok := c.GetPostForm("excerpt"); ok {
		post.Excerpt = v
	}
	if v, ok := c.GetPostForm("content"); ok {
		post.Content = v
	}
	if v, ok := c.GetPostForm("is_published"); ok {
		publish := v == "true"
		if publish && !post.IsPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = publish
	}

	if url, ok := h.uploadCoverImage(c); ok {
		post.CoverImage = url
	} else if c.IsAborted() {
		return
	}

	if err := h.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	var post models.BlogPost
	if err := h.DB.Where("id = ?", id).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	// Best effort: orphaned cover images are not worth failing the delete over.
	if objectPath := storageObjectPath(post.CoverImage); objectPath != "" {
		if err := h.Storage.DeleteFile(objectPath); err != nil {
			log.Printf("Warning: failed to delete cover image for post %s: %v", post.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *BlogHandler) uploadCoverImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("cover_image")
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

	url, err := h.Storage.UploadBlogImage(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return "", false
	}

	return url, true
}

func (h *BlogHandler) uniquePostSlug(base string, excludeID uuid.UUID) string {
	slug := base
	for i := 2; ; i++ {
		var count int64
		query := h.DB.Model(&models.BlogPost{}).Where("slug = ?", slug)
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

// storageObjectPath extracts the bucket-relative object path from a
// public storage URL ("https://storage.googleapis.com/<bucket>/<path>").
// Returns "" for URLs not hosted on our storage.
func storageObjectPath(url string) string {
	const host = "storage.googleapis.com/"
	idx := strings.Index(url, host)
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(host):]
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return ""
	}
	return rest[slash+1:]
}
