package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"github.com/tuchonga/tuchonga-api/internal/services"
)

// GetActivityFeed returns the ranked, paginated activity feed.
func GetActivityFeed(c *fiber.Ctx) error {
	var filters services.FeedFilters

	if v := c.Query("itemType"); v != "" {
		itemType := models.ItemType(v)
		if !itemType.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid itemType. Must be PRODUCT or SERVICE",
			})
		}
		filters.ItemType = &itemType
	}

	if v := c.Query("activityTypes"); v != "" {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			activityType := models.ActivityType(part)
			if !activityType.Valid() {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Unknown activity type: " + part,
				})
			}
			filters.ActivityTypes = append(filters.ActivityTypes, activityType)
		}
	}

	filters.Page, _ = strconv.Atoi(c.Query("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.Query("limit", "50"))

	feed, err := services.Feed.GetActivityFeed(c.Context(), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute activity feed",
		})
	}

	return c.JSON(feed)
}
