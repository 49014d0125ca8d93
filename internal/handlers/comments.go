package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
)

// CreateComment adds a comment to exactly one product or service.
func CreateComment(c *fiber.Ctx) error {
	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Comment text is required",
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

	comment := models.Comment{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
		Text:      req.Text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add comment",
		})
	}

	database.DB.Preload("User").First(&comment, "id = ?", comment.ID)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetProductComments returns non-deleted comments for a product.
func GetProductComments(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var comments []models.Comment
	database.DB.Where("product_id = ? AND is_deleted = ?", productID, false).
		Preload("User").
		Order("created_at ASC").
		Find(&comments)

	return c.JSON(comments)
}

// GetServiceComments returns non-deleted comments for a service.
func GetServiceComments(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var comments []models.Comment
	database.DB.Where("service_id = ? AND is_deleted = ?", serviceID, false).
		Preload("User").
		Order("created_at ASC").
		Find(&comments)

	return c.JSON(comments)
}

// DeleteComment tombstones a comment; the row stays for audit but stops
// counting anywhere.
func DeleteComment(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comment ID",
		})
	}

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comment not found",
		})
	}

	database.DB.Model(&comment).Update("is_deleted", true)

	return c.JSON(fiber.Map{"success": true})
}
