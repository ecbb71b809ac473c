// Package routes registers the HTTP surface on the Fiber app.
package routes

import (
	"murmur/config"
	"murmur/handlers"
	"murmur/middleware"
	"murmur/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup wires repositories, handlers and routes. When cfg.AuthEnabled is set
// the bearer-token gate is attached to every mutating route; by default all
// routes are public, matching the observed behavior of the original service.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepository(db)
	thoughtRepo := repository.NewThoughtRepository(db)

	userHandler := handlers.NewUserHandler(userRepo)
	thoughtHandler := handlers.NewThoughtHandler(thoughtRepo)
	reactionHandler := handlers.NewReactionHandler(thoughtRepo)

	gate := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.AuthEnabled {
		gate = middleware.AuthRequired
	}

	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ok",
			"version": "1.0.0",
		})
	})

	// User routes
	users := api.Group("/users")
	users.Get("/", userHandler.GetUsers)
	users.Get("/:userId", userHandler.GetUser)
	users.Post("/", gate, userHandler.CreateUser)
	users.Put("/:userId", gate, userHandler.UpdateUser)
	users.Delete("/:userId", gate, userHandler.DeleteUser)
	users.Post("/:userId/friends/:friendId", gate, userHandler.AddFriend)
	users.Delete("/:userId/friends/:friendId", gate, userHandler.RemoveFriend)

	// Thought routes
	thoughts := api.Group("/thoughts")
	thoughts.Get("/", thoughtHandler.GetThoughts)
	thoughts.Get("/:thoughtId", thoughtHandler.GetThought)
	thoughts.Post("/", gate, thoughtHandler.CreateThought)
	thoughts.Put("/:thoughtId", gate, thoughtHandler.UpdateThought)
	thoughts.Delete("/:thoughtId", gate, thoughtHandler.DeleteThought)
	thoughts.Post("/:thoughtId/reactions", gate, reactionHandler.AddReaction)
	thoughts.Delete("/:thoughtId/reactions/:reactionId", gate, reactionHandler.RemoveReaction)
}
