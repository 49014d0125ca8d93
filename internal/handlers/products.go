package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/database"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"gorm.io/gorm"
)

// GetProducts returns paginated active products, optionally filtered by category.
func GetProducts(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	query := database.DB.Where("is_active = ?", true)
	countQuery := database.DB.Model(&models.Product{}).Where("is_active = ?", true)
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

	var products []models.Product
	query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products)

	// Count on a fresh chain; the find chain carries the pagination clauses.
	var total int64
	countQuery.Count(&total)

	return c.JSON(fiber.Map{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func CreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product name is required",
		})
	}

	product := models.Product{
		ProductName: req.ProductName,
		Description: req.Description,
		MainImage:   req.MainImage,
		Price:       req.Price,
		IsActive:    true,
		CategoryID:  req.CategoryID,
		BusinessID:  req.BusinessID,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetProduct returns a single product and counts the view.
func GetProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var product models.Product
	if err := database.DB.Preload("Category").Preload("Business").First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	database.DB.Model(&product).UpdateColumn("total_views", gorm.Expr("total_views + 1"))
	product.TotalViews++

	return c.JSON(product)
}

func UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.MainImage != nil {
		product.MainImage = *req.MainImage
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	return c.JSON(product)
}

func DeleteProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	database.DB.Delete(&product)

	return c.JSON(fiber.Map{"success": true})
}
