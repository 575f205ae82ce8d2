package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"homepro/models"
	"homepro/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationController struct {
	notificationRepo *repositories.NotificationRepository
}

func NewNotificationController() *NotificationController {
	return &NotificationController{
		notificationRepo: repositories.NewNotificationRepository(),
	}
}

// GetNotifications godoc
// @Summary List the current user's notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param unread query bool false "Unread only"
// @Success 200 {object} models.Response
// @Router /notifications [get]
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	unreadOnly := c.Query("unread") == "true"

	offset := (page - 1) * limit

	notifications, total, unreadCount, err := ctrl.notificationRepo.ListByUser(
		c.Request.Context(), userID, limit, offset, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         total,
		"unreadCount":   unreadCount,
		"page":          page,
		"limit":         limit,
		"totalPages":    totalPages,
	})
}

// CreateNotification godoc
// @Summary Create a notification
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateNotificationRequest true "Notification"
// @Success 200 {object} models.Response
// @Router /notifications [post]
func (ctrl *NotificationController) CreateNotification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, message, and type are required"})
		return
	}

	targetUserID := userID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		targetUserID = parsed
	}

	notification := &models.Notification{
		UserID:  targetUserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		IsRead:  false,
	}

	if req.RelatedID != "" {
		relatedID, err := uuid.Parse(req.RelatedID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid related ID"})
			return
		}
		notification.RelatedID = &relatedID
	}

	if err := ctrl.notificationRepo.Insert(c.Request.Context(), notification); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": notification})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [put]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	notification, err := ctrl.notificationRepo.MarkRead(c.Request.Context(), notificationID, userID, true)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found or doesn't belong to you"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": notification})
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /notifications/read-all [post]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := ctrl.notificationRepo.MarkAllRead(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
