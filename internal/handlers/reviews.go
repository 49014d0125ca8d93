package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"gorm.io/gorm"
)

// CreateReview records a review for exactly one product or service and
// keeps the item's denormalized review counters in step.
func CreateReview(c *fiber.Ctx) error {
	var req models.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !req.Sentiment.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sentiment. Must be: WOULD_RECOMMEND, ITS_GOOD, DONT_MIND_IT, or ITS_BAD",
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

	review := models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
		Sentiment: req.Sentiment,
		Text:      req.Text,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	bumpReviewCounters(&review, 1)

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetProductReviews returns paginated reviews for a product.
func GetProductReviews(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	page, limit, offset := parsePagination(c)

	var reviews []models.Review
	database.DB.Where("product_id = ?", productID).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews)

	var total int64
	database.DB.Model(&models.Review{}).Where("product_id = ?", productID).Count(&total)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetServiceReviews returns paginated reviews for a service.
func GetServiceReviews(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	page, limit, offset := parsePagination(c)

	var reviews []models.Review
	database.DB.Where("service_id = ?", serviceID).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews)

	var total int64
	database.DB.Model(&models.Review{}).Where("service_id = ?", serviceID).Count(&total)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// DeleteReview removes a review and rolls its counters back.
func DeleteReview(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	var review models.Review
	if err := database.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	database.DB.Delete(&review)
	bumpReviewCounters(&review, -1)

	return c.JSON(fiber.Map{"success": true})
}

func bumpReviewCounters(review *models.Review, delta int) {
	updates := map[string]interface{}{
		"total_reviews": gorm.Expr("total_reviews + ?", delta),
	}
	if review.Sentiment.Positive() {
		updates["positive_reviews"] = gorm.Expr("positive_reviews + ?", delta)
	} else if review.Sentiment.Negative() {
		updates["negative_reviews"] = gorm.Expr("negative_reviews + ?", delta)
	}

	if review.ProductID != nil {
		database.DB.Model(&models.Product{}).Where("id = ?", *review.ProductID).Updates(updates)
	} else if review.ServiceID != nil {
		database.DB.Model(&models.Service{}).Where("id = ?", *review.ServiceID).Updates(updates)
	}
}
