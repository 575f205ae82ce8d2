package controllers

import (
	"errors"
	"net/http"

	"homepro/models"
	"homepro/repositories"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct {
	cartRepo *repositories.CartRepository
}

func NewCartController() *CartController {
	return &CartController{
		cartRepo: repositories.NewCartRepository(),
	}
}

// GetCart godoc
// @Summary Get the current user's cart
// @Description Returns cart items joined with their services. Creates the cart lazily on first access.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cart, err := ctrl.cartRepo.GetOrCreateCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := ctrl.cartRepo.ItemsWithService(c.Request.Context(), cart.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_id": cart.ID,
		"items":   items,
	})
}

// AddItem godoc
// @Summary Add a service to the cart
// @Description Adds a cart item, or bumps the quantity when the service is already in the cart.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Cart Item"
// @Success 200 {object} models.Response
// @Router /cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service ID and price are required"})
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	cart, err := ctrl.cartRepo.GetOrCreateCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	existing, err := ctrl.cartRepo.FindItemByService(c.Request.Context(), cart.ID, serviceID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existing != nil {
		existing.Quantity += quantity
		if req.ScheduledDate != nil {
			existing.ScheduledDate = req.ScheduledDate
		}
		if req.ScheduledTime != nil {
			existing.ScheduledTime = req.ScheduledTime
		}

		if err := ctrl.cartRepo.UpdateItem(c.Request.Context(), existing); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"item": existing})
		return
	}

	item := &models.CartItem{
		CartID:        cart.ID,
		ServiceID:     serviceID,
		Price:         req.Price,
		Quantity:      quantity,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
	}

	if err := ctrl.cartRepo.InsertItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateItem godoc
// @Summary Update a cart item
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart Item ID"
// @Param request body models.UpdateCartItemRequest true "Update"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /cart/{id} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, ok := ctrl.ownedItem(c, userID, itemID)
	if !ok {
		return
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ScheduledDate != nil {
		item.ScheduledDate = req.ScheduledDate
	}
	if req.ScheduledTime != nil {
		item.ScheduledTime = req.ScheduledTime
	}

	if err := ctrl.cartRepo.UpdateItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem godoc
// @Summary Remove a cart item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cart Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /cart/{id} [delete]
func (ctrl *CartController) DeleteItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	item, ok := ctrl.ownedItem(c, userID, itemID)
	if !ok {
		return
	}

	if err := ctrl.cartRepo.DeleteItem(c.Request.Context(), item.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearCart godoc
// @Summary Remove every item from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/clear [post]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cartID, err := ctrl.cartRepo.CartIDByUser(c.Request.Context(), userID)
	if errors.Is(err, models.ErrNotFound) {
		// Nothing to clear.
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.cartRepo.ClearItems(c.Request.Context(), cartID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ownedItem resolves a cart item and checks it belongs to the user's
// cart, writing the error response itself when it does not.
func (ctrl *CartController) ownedItem(c *gin.Context, userID, itemID uuid.UUID) (*models.CartItem, bool) {
	cartID, err := ctrl.cartRepo.CartIDByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or doesn't belong to your cart"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}

	item, err := ctrl.cartRepo.FindItem(c.Request.Context(), itemID, cartID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or doesn't belong to your cart"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}

	return item, true
}
