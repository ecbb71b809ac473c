package handlers

import (
	"murmur/models"
	"murmur/repository"

	"github.com/gofiber/fiber/v2"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserHandler serves the /users routes.
type UserHandler struct {
	repo repository.UserRepository
}

// NewUserHandler returns a UserHandler backed by the given repository.
func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// GetUsers - List all users with thoughts and friends expanded
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetUser - Get a single user by ID, expanded
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// CreateUser - Create a new user
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	req := new(CreateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.repo.Create(c.Context(), &user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser - Partial or full field replacement on a user
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	req := new(UpdateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	user, err := h.repo.Update(c.Context(), id, repository.UpdateUserFields{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// DeleteUser - Delete a user; authored thoughts are not cascaded
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddFriend - Attach a friend reference; the friend id is not existence-checked
func (h *UserHandler) AddFriend(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	friendID, err := parseID(c, "friendId")
	if err != nil {
		return err
	}

	user, err := h.repo.AddFriend(c.Context(), userID, friendID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// RemoveFriend - Detach a friend reference; removing an absent one is a no-op
func (h *UserHandler) RemoveFriend(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	friendID, err := parseID(c, "friendId")
	if err != nil {
		return err
	}

	if err := h.repo.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
