package controllers

import (
	"net/http"

	"homepro/models"
	"homepro/repositories"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userRepo *repositories.UserRepository
}

func NewUserController() *UserController {
	return &UserController{
		userRepo: repositories.NewUserRepository(),
	}
}

// GetAllUsers godoc
// @Summary List users (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	page, limit, _ := getPaginationParams(c, 10)

	users, total, err := ctrl.userRepo.FindAll(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Meta:    paginationMeta(page, limit, total),
	})
}
