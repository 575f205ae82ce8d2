package controllers

import (
	"context"
	"errors"
	"net/http"

	"homepro/models"
	"homepro/repositories"
	"homepro/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutRunner lets tests swap the orchestrator behind the endpoint.
type CheckoutRunner interface {
	Checkout(ctx context.Context, userID uuid.UUID, req models.CheckoutRequest) (*models.CheckoutResult, error)
}

type CheckoutController struct {
	service CheckoutRunner
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{
		service: services.NewCheckoutService(
			repositories.NewCartRepository(),
			repositories.NewBookingRepository(),
			repositories.NewNotificationRepository(),
		),
	}
}

// Checkout godoc
// @Summary Convert cart to bookings
// @Description Creates one booking per cart item, clears the cart and emits a confirmation notification. Partial failures are reported in the errors array.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 200 {object} models.CheckoutResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := ctrl.service.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address information is required"})
		case errors.Is(err, services.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// currentUserID reads the authenticated user injected by the auth
// middleware. Handlers never reach into the token themselves.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
