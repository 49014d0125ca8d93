package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
)

// CreateFavorite saves an item to the user's favorites. Saving the same
// item twice returns the existing favorite.
func CreateFavorite(c *fiber.Ctx) error {
	var req models.CreateFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if (req.ProductID == nil) == (req.ServiceID == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Exactly one of productId or serviceId is required",
		})
	}

	query := database.DB.Where("user_id = ?", req.UserID)
	if req.ProductID != nil {
		query = query.Where("product_id = ?", *req.ProductID)
	} else {
		query = query.Where("service_id = ?", *req.ServiceID)
	}

	var existing models.Favorite
	if err := query.First(&existing).Error; err == nil {
		return c.JSON(existing)
	}

	favorite := models.Favorite{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
	}
	if err := database.DB.Create(&favorite).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

func DeleteFavorite(c *fiber.Ctx) error {
	favoriteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid favorite ID",
		})
	}

	var favorite models.Favorite
	if err := database.DB.First(&favorite, "id = ?", favoriteID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Favorite not found",
		})
	}

	database.DB.Delete(&favorite)

	return c.JSON(fiber.Map{"success": true})
}

// GetUserFavorites lists a user's favorites, newest first.
func GetUserFavorites(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var favorites []models.Favorite
	database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites)

	return c.JSON(favorites)
}
