package controllers

import (
	"errors"
	"net/http"
	"strings"

	"homepro/models"
	"homepro/repositories"
	"homepro/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryController struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{
		catalogRepo: repositories.NewCatalogRepository(),
	}
}

// GetCategories godoc
// @Summary Get all categories
// @Description Active categories with nested subcategories, ordered by display order
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := services.CachedCategories(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"categories": cached})
		return
	}

	categories, err := ctrl.catalogRepo.ListCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.CacheCategories(ctx, categories)

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetSubcategories godoc
// @Summary Get subcategories for a category
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Response
// @Router /categories/{slug}/subcategories [get]
func (ctrl *CategoryController) GetSubcategories(c *gin.Context) {
	slug := c.Param("slug")

	subcategories, err := ctrl.catalogRepo.ListSubcategoriesByCategorySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subcategories": subcategories,
		"count":         len(subcategories),
	})
}

// CreateCategory godoc
// @Summary Create a category (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Icon         string `json:"icon"`
		ImageURL     string `json:"imageUrl"`
		Slug         string `json:"slug" binding:"required"`
		DisplayOrder int    `json:"displayOrder"`
		IsActive     *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and slug are required"})
		return
	}

	category := &models.Category{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Icon:         req.Icon,
		ImageURL:     req.ImageURL,
		Slug:         strings.TrimSpace(req.Slug),
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}

	if err := ctrl.catalogRepo.CreateCategory(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory godoc
// @Summary Update a category (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Icon         string `json:"icon"`
		ImageURL     string `json:"imageUrl"`
		Slug         string `json:"slug" binding:"required"`
		DisplayOrder int    `json:"displayOrder"`
		IsActive     *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and slug are required"})
		return
	}

	category := &models.Category{
		ID:           categoryID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Icon:         req.Icon,
		ImageURL:     req.ImageURL,
		Slug:         strings.TrimSpace(req.Slug),
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}

	if err := ctrl.catalogRepo.UpdateCategory(c.Request.Context(), category); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory godoc
// @Summary Delete a category (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := ctrl.catalogRepo.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}

// CreateSubcategory godoc
// @Summary Create a subcategory (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Router /admin/subcategories [post]
func (ctrl *CategoryController) CreateSubcategory(c *gin.Context) {
	var req struct {
		CategoryID   string `json:"categoryId" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Icon         string `json:"icon"`
		ImageURL     string `json:"imageUrl"`
		Slug         string `json:"slug" binding:"required"`
		DisplayOrder int    `json:"displayOrder"`
		IsActive     *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category, name and slug are required"})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	subcategory := &models.Subcategory{
		CategoryID:   categoryID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Icon:         req.Icon,
		ImageURL:     req.ImageURL,
		Slug:         strings.TrimSpace(req.Slug),
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}

	if err := ctrl.catalogRepo.CreateSubcategory(c.Request.Context(), subcategory); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{"subcategory": subcategory})
}

// UpdateSubcategory godoc
// @Summary Update a subcategory (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Subcategory ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/subcategories/{id} [patch]
func (ctrl *CategoryController) UpdateSubcategory(c *gin.Context) {
	subcategoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	var req struct {
		CategoryID   string `json:"categoryId" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		Icon         string `json:"icon"`
		ImageURL     string `json:"imageUrl"`
		Slug         string `json:"slug" binding:"required"`
		DisplayOrder int    `json:"displayOrder"`
		IsActive     *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category, name and slug are required"})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	subcategory := &models.Subcategory{
		ID:           subcategoryID,
		CategoryID:   categoryID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Icon:         req.Icon,
		ImageURL:     req.ImageURL,
		Slug:         strings.TrimSpace(req.Slug),
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}

	if err := ctrl.catalogRepo.UpdateSubcategory(c.Request.Context(), subcategory); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"subcategory": subcategory})
}

// DeleteSubcategory godoc
// @Summary Delete a subcategory (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Subcategory ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/subcategories/{id} [delete]
func (ctrl *CategoryController) DeleteSubcategory(c *gin.Context) {
	subcategoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	if err := ctrl.catalogRepo.DeleteSubcategory(c.Request.Context(), subcategoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subcategory deleted"})
}
