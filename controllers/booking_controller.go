package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"homepro/models"
	"homepro/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct {
	bookingRepo *repositories.BookingRepository
}

func NewBookingController() *BookingController {
	return &BookingController{
		bookingRepo: repositories.NewBookingRepository(),
	}
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

func paginationMeta(page, limit, totalItems int) models.PaginationMeta {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// GetMyBookings godoc
// @Summary List the current user's bookings
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /bookings [get]
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, limit, offset := getPaginationParams(c, 10)

	bookings, total, err := ctrl.bookingRepo.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
		Meta:    paginationMeta(page, limit, total),
	})
}

// GetBookingByID godoc
// @Summary Get one booking
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := ctrl.bookingRepo.FindByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if booking.UserID != userID && c.GetString("user_role") != "admin" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking retrieved successfully",
		Data:    booking,
	})
}

// GetAllBookings godoc
// @Summary List all bookings (Admin)
// @Tags Admin - Bookings
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/bookings [get]
func (ctrl *BookingController) GetAllBookings(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)
	status := c.Query("status")

	bookings, total, err := ctrl.bookingRepo.ListAll(c.Request.Context(), status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
		Meta:    paginationMeta(page, limit, total),
	})
}

var validBookingStatuses = map[string]bool{
	"pending":     true,
	"confirmed":   true,
	"in_progress": true,
	"completed":   true,
	"cancelled":   true,
}

// UpdateBookingStatus godoc
// @Summary Update a booking's status (Admin)
// @Tags Admin - Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !validBookingStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	if err := ctrl.bookingRepo.UpdateStatus(c.Request.Context(), bookingID, status); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking status updated successfully",
		Data:    gin.H{"id": bookingID, "status": status},
	})
}
