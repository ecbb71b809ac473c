package handlers

import (
	"murmur/models"
	"murmur/repository"

	"github.com/gofiber/fiber/v2"
)

type CreateReactionRequest struct {
	ReactionBody string `json:"reactionBody"`
	Username     string `json:"username"`
}

// ReactionHandler serves the reaction sub-routes of /thoughts.
type ReactionHandler struct {
	repo repository.ThoughtRepository
}

// NewReactionHandler returns a ReactionHandler backed by the given repository.
func NewReactionHandler(repo repository.ThoughtRepository) *ReactionHandler {
	return &ReactionHandler{repo: repo}
}

// AddReaction - Create a reaction and append it to the thought's sequence
func (h *ReactionHandler) AddReaction(c *fiber.Ctx) error {
	thoughtID, err := parseID(c, "thoughtId")
	if err != nil {
		return err
	}

	req := new(CreateReactionRequest)
	if err := c.BodyParser(req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	reaction := models.Reaction{
		ReactionBody: req.ReactionBody,
		Username:     req.Username,
	}

	if err := h.repo.AddReaction(c.Context(), thoughtID, &reaction); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(reaction)
}

// RemoveReaction - Remove a reaction from the sequence and hard-delete it
func (h *ReactionHandler) RemoveReaction(c *fiber.Ctx) error {
	thoughtID, err := parseID(c, "thoughtId")
	if err != nil {
		return err
	}
	reactionID, err := parseID(c, "reactionId")
	if err != nil {
		return err
	}

	if err := h.repo.RemoveReaction(c.Context(), thoughtID, reactionID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
