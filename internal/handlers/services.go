package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"gorm.io/gorm"
)

// GetServices returns paginated active services, optionally filtered by category.
func GetServices(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	query := database.DB.Where("is_active = ?", true)
	countQuery := database.DB.Model(&models.Service{}).Where("is_active = ?", true)
	if v := c.Query("categoryId"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category ID",
			})
		}
		query = query.Where("category_id = ?", categoryID)
		countQuery = countQuery.Where("category_id = ?", categoryID)
	}

	var svcs []models.Service
	query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&svcs)

	// Count on a fresh chain; the find chain carries the pagination clauses.
	var total int64
	countQuery.Count(&total)

	return c.JSON(fiber.Map{
		"services": svcs,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func CreateService(c *fiber.Ctx) error {
	var req models.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ServiceName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service name is required",
		})
	}

	service := models.Service{
		ServiceName: req.ServiceName,
		Description: req.Description,
		MainImage:   req.MainImage,
		Price:       req.Price,
		IsActive:    true,
		CategoryID:  req.CategoryID,
		BusinessID:  req.BusinessID,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// GetService returns a single service and counts the view.
func GetService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var service models.Service
	if err := database.DB.Preload("Category").Preload("Business").First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	database.DB.Model(&service).UpdateColumn("total_views", gorm.Expr("total_views + 1"))
	service.TotalViews++

	return c.JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var service models.Service
	if err := database.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	var req models.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ServiceName != nil {
		service.ServiceName = *req.ServiceName
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.MainImage != nil {
		service.MainImage = *req.MainImage
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if req.CategoryID != nil {
		service.CategoryID = req.CategoryID
	}

	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var service models.Service
	if err := database.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	database.DB.Delete(&service)

	return c.JSON(fiber.Map{"success": true})
}
