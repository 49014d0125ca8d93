package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tuchonga/tuchonga-api/internal/handlers"
)

func Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Activity feed
	api.Get("/activity-feed", handlers.GetActivityFeed)

	products := api.Group("/products")
	products.Get("/", handlers.GetProducts)
	products.Post("/", handlers.CreateProduct)
	products.Get("/:id", handlers.GetProduct)
	products.Put("/:id", handlers.UpdateProduct)
	products.Delete("/:id", handlers.DeleteProduct)
	products.Get("/:id/reviews", handlers.GetProductReviews)
	products.Get("/:id/comments", handlers.GetProductComments)

	services := api.Group("/services")
	services.Get("/", handlers.GetServices)
	services.Post("/", handlers.CreateService)
	services.Get("/:id", handlers.GetService)
	services.Put("/:id", handlers.UpdateService)
	services.Delete("/:id", handlers.DeleteService)
	services.Get("/:id/reviews", handlers.GetServiceReviews)
	services.Get("/:id/comments", handlers.GetServiceComments)

	api.Get("/categories", handlers.GetCategories)
	api.Post("/categories", handlers.CreateCategory)
	api.Get("/categories/:id", handlers.GetCategory)

	api.Get("/businesses", handlers.GetBusinesses)
	api.Post("/businesses", handlers.CreateBusiness)
	api.Get("/businesses/:id", handlers.GetBusiness)

	api.Post("/reviews", handlers.CreateReview)
	api.Delete("/reviews/:id", handlers.DeleteReview)

	api.Post("/comments", handlers.CreateComment)
	api.Delete("/comments/:id", handlers.DeleteComment)

	api.Post("/quick-ratings", handlers.CreateQuickRating)

	api.Post("/favorites", handlers.CreateFavorite)
	api.Delete("/favorites/:id", handlers.DeleteFavorite)

	api.Post("/users", handlers.CreateUser)
	api.Get("/users/:id", handlers.GetUser)
	api.Put("/users/:id", handlers.UpdateUser)
	api.Get("/users/:id/favorites", handlers.GetUserFavorites)
}
