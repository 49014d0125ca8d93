package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"gorm.io/gorm"
)

// CreateQuickRating records a 1-5 tap rating and bumps the item's
// cumulative quick-rating counter.
func CreateQuickRating(c *fiber.Ctx) error {
	var req models.CreateQuickRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	if (req.ProductID == nil) == (req.ServiceID == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Exactly one of productId or serviceId is required",
		})
	}

	if req.ProductID != nil {
		var product models.Product
		if err := database.DB.First(&product, "id = ?", *req.ProductID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
	} else {
		var service models.Service
		if err := database.DB.First(&service, "id = ?", *req.ServiceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Service not found",
			})
		}
	}

	rating := models.QuickRating{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
		Rating:    req.Rating,
	}
	if err := database.DB.Create(&rating).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create rating",
		})
	}

	if rating.ProductID != nil {
		database.DB.Model(&models.Product{}).Where("id = ?", *rating.ProductID).
			UpdateColumn("quick_rating_total", gorm.Expr("quick_rating_total + 1"))
	} else {
		database.DB.Model(&models.Service{}).Where("id = ?", *rating.ServiceID).
			UpdateColumn("quick_rating_total", gorm.Expr("quick_rating_total + 1"))
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}
