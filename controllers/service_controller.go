package controllers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"homepro/config"
	"homepro/libs"
	"homepro/models"
	"homepro/repositories"
	"homepro/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceController struct {
	catalogRepo *repositories.CatalogRepository
}

func NewServiceController() *ServiceController {
	return &ServiceController{
		catalogRepo: repositories.NewCatalogRepository(),
	}
}

// GetServices godoc
// @Summary List services
// @Description Active services, filterable by category and subcategory slug
// @Tags Services
// @Produce json
// @Param category query string false "Category slug"
// @Param subcategory query string false "Subcategory slug"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /services [get]
func (ctrl *ServiceController) GetServices(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 20)
	categorySlug := c.Query("category")
	subcategorySlug := c.Query("subcategory")

	list, total, err := ctrl.catalogRepo.ListServices(
		c.Request.Context(), categorySlug, subcategorySlug, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Services retrieved successfully",
		Data:    list,
		Meta:    paginationMeta(page, limit, total),
	})
}

// GetServiceByID godoc
// @Summary Get one service
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (ctrl *ServiceController) GetServiceByID(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	service, err := ctrl.catalogRepo.FindServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Service retrieved successfully",
		Data:    service,
	})
}

// CreateService godoc
// @Summary Create a service (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Service name"
// @Param subcategory_id formData string true "Subcategory ID"
// @Param vendor_id formData string true "Vendor ID"
// @Param starting_price formData number true "Starting price"
// @Param duration formData int false "Duration in minutes"
// @Param image formData file false "Service image"
// @Success 201 {object} models.Response
// @Router /admin/services [post]
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	subcategoryID, err := uuid.Parse(c.PostForm("subcategory_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	vendorID, err := uuid.Parse(c.PostForm("vendor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	startingPrice, err := strconv.ParseFloat(c.PostForm("starting_price"), 64)
	if err != nil || startingPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Starting price must be a positive number"})
		return
	}

	duration, _ := strconv.Atoi(c.PostForm("duration"))
	if duration <= 0 {
		duration = 60
	}

	service := &models.Service{
		SubcategoryID: subcategoryID,
		VendorID:      vendorID,
		Name:          name,
		Description:   strings.TrimSpace(c.PostForm("description")),
		Duration:      duration,
		StartingPrice: startingPrice,
		IsActive:      true,
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := ctrl.saveServiceImage(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		service.ImageURL = imageURL
	}

	if err := ctrl.catalogRepo.CreateService(c.Request.Context(), service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Service created successfully",
		Data:    service,
	})
}

// UpdateService godoc
// @Summary Update a service (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [patch]
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	service, err := ctrl.catalogRepo.FindServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		service.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		service.Description = strings.TrimSpace(description)
	}
	if price, err := strconv.ParseFloat(c.PostForm("starting_price"), 64); err == nil && price > 0 {
		service.StartingPrice = price
	}
	if duration, err := strconv.Atoi(c.PostForm("duration")); err == nil && duration > 0 {
		service.Duration = duration
	}
	if active := c.PostForm("is_active"); active != "" {
		service.IsActive = active == "true"
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := ctrl.saveServiceImage(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		service.ImageURL = imageURL
	}

	if err := ctrl.catalogRepo.UpdateService(c.Request.Context(), service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Service updated successfully",
		Data:    service,
	})
}

// DeleteService godoc
// @Summary Delete a service (Admin)
// @Tags Admin - Catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [delete]
func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	if err := ctrl.catalogRepo.DeleteService(c.Request.Context(), serviceID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Service deleted successfully",
	})
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// saveServiceImage stores the upload locally, then tries Cloudinary.
// When Cloudinary is not configured the local path is served instead.
func (ctrl *ServiceController) saveServiceImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > config.AppConfig.MaxUploadSize {
		return "", errors.New("file too large")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range allowedImageExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", errors.New("invalid file type")
	}

	uploadDir := filepath.Join(config.AppConfig.UploadDir, "services")
	os.MkdirAll(uploadDir, os.ModePerm)

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(file.Filename, " ", "_"))
	localPath := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}

	hostedURL, err := libs.UploadToCloudinary(localPath)
	if err != nil {
		log.Printf("Cloudinary upload failed, serving local file: %v", err)
		return "/" + filepath.ToSlash(filepath.Join("uploads", "services", filename)), nil
	}

	os.Remove(localPath)
	return hostedURL, nil
}
