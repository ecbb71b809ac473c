package handlers

import (
	"murmur/models"
	"murmur/repository"

	"github.com/gofiber/fiber/v2"
)

type CreateThoughtRequest struct {
	ThoughtText string `json:"thoughtText"`
	Username    string `json:"username"`
	UserID      uint   `json:"userId"`
}

type UpdateThoughtRequest struct {
	ThoughtText string `json:"thoughtText"`
	Username    string `json:"username"`
}

// ThoughtHandler serves the /thoughts routes.
type ThoughtHandler struct {
	repo repository.ThoughtRepository
}

// NewThoughtHandler returns a ThoughtHandler backed by the given repository.
func NewThoughtHandler(repo repository.ThoughtRepository) *ThoughtHandler {
	return &ThoughtHandler{repo: repo}
}

// GetThoughts - List all thoughts with reactions expanded
func (h *ThoughtHandler) GetThoughts(c *fiber.Ctx) error {
	thoughts, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(thoughts)
}

// GetThought - Get a single thought by ID, expanded
func (h *ThoughtHandler) GetThought(c *fiber.Ctx) error {
	id, err := parseID(c, "thoughtId")
	if err != nil {
		return err
	}

	thought, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(thought)
}

// CreateThought - Create a thought, optionally linked into its author's set
func (h *ThoughtHandler) CreateThought(c *fiber.Ctx) error {
	req := new(CreateThoughtRequest)
	if err := c.BodyParser(req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	thought := models.Thought{
		ThoughtText: req.ThoughtText,
		Username:    req.Username,
		UserID:      req.UserID,
	}

	if err := h.repo.Create(c.Context(), &thought); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(thought)
}

// UpdateThought - Partial or full field replacement on a thought
func (h *ThoughtHandler) UpdateThought(c *fiber.Ctx) error {
	id, err := parseID(c, "thoughtId")
	if err != nil {
		return err
	}

	req := new(UpdateThoughtRequest)
	if err := c.BodyParser(req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	thought, err := h.repo.Update(c.Context(), id, repository.UpdateThoughtFields{
		ThoughtText: req.ThoughtText,
		Username:    req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(thought)
}

// DeleteThought - Delete a thought; attached reactions are not cascaded
func (h *ThoughtHandler) DeleteThought(c *fiber.Ctx) error {
	id, err := parseID(c, "thoughtId")
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
