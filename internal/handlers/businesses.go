package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
)

func GetBusinesses(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	var businesses []models.Business
	database.DB.Preload("Owner").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&businesses)

	var total int64
	database.DB.Model(&models.Business{}).Count(&total)

	return c.JSON(fiber.Map{
		"businesses": businesses,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}

func CreateBusiness(c *fiber.Ctx) error {
	var req models.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Business name is required",
		})
	}

	var owner models.User
	if err := database.DB.First(&owner, "id = ?", req.OwnerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Owner not found",
		})
	}

	business := models.Business{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
	}
	if err := database.DB.Create(&business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create business",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(business)
}

func GetBusiness(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	var business models.Business
	if err := database.DB.Preload("Owner").First(&business, "id = ?", businessID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	return c.JSON(business)
}
