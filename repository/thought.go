package repository

import (
	"context"
	"errors"

	"murmur/cache"
	"murmur/models"

	"gorm.io/gorm"
)

// UpdateThoughtFields carries a partial-or-full thought update; empty strings
// mean "leave untouched".
type UpdateThoughtFields struct {
	ThoughtText string
	Username    string
}

// ThoughtRepository defines persistence operations for thoughts and their
// reaction sequences.
type ThoughtRepository interface {
	Create(ctx context.Context, thought *models.Thought) error
	List(ctx context.Context) ([]models.Thought, error)
	GetByID(ctx context.Context, id uint) (*models.Thought, error)
	Update(ctx context.Context, id uint, fields UpdateThoughtFields) (*models.Thought, error)
	Delete(ctx context.Context, id uint) error
	AddReaction(ctx context.Context, thoughtID uint, reaction *models.Reaction) error
	RemoveReaction(ctx context.Context, thoughtID, reactionID uint) error
	GetReaction(ctx context.Context, reactionID uint) (*models.Reaction, error)
}

type thoughtRepository struct {
	db *gorm.DB
}

// NewThoughtRepository returns a new ThoughtRepository implementation.
func NewThoughtRepository(db *gorm.DB) ThoughtRepository {
	return &thoughtRepository{db: db}
}

func (r *thoughtRepository) Create(ctx context.Context, thought *models.Thought) error {
	if thought.ThoughtText == "" || thought.Username == "" {
		return models.NewValidationError("Thought text and username are required")
	}

	if err := r.db.WithContext(ctx).Create(thought).Error; err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateThoughts(ctx)
	if thought.UserID != 0 {
		// The thought now appears in its author's thought set.
		cache.InvalidateUsers(ctx)
	}
	return nil
}

func (r *thoughtRepository) List(ctx context.Context) ([]models.Thought, error) {
	var thoughts []models.Thought

	err := cache.Aside(ctx, cache.ThoughtsListKey, &thoughts, cache.ThoughtsListTTL, func() error {
		if err := r.expanded(ctx).Find(&thoughts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return thoughts, nil
}

func (r *thoughtRepository) GetByID(ctx context.Context, id uint) (*models.Thought, error) {
	var thought models.Thought
	if err := r.expanded(ctx).First(&thought, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thought", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &thought, nil
}

func (r *thoughtRepository) Update(ctx context.Context, id uint, fields UpdateThoughtFields) (*models.Thought, error) {
	var thought models.Thought
	if err := r.db.WithContext(ctx).First(&thought, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thought", id)
		}
		return nil, models.NewInternalError(err)
	}

	if fields.ThoughtText != "" {
		thought.ThoughtText = fields.ThoughtText
	}
	if fields.Username != "" {
		thought.Username = fields.Username
	}

	if err := r.db.WithContext(ctx).Save(&thought).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	cache.InvalidateThoughts(ctx)
	if thought.UserID != 0 {
		// The author's expanded thought set in the users list changed too.
		cache.InvalidateUsers(ctx)
	}
	return r.GetByID(ctx, id)
}

func (r *thoughtRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Thought{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Thought", id)
	}

	// Attached reactions are left behind: deleting a thought does not cascade
	// unless each reaction is removed through the reaction-removal endpoint.
	cache.InvalidateThoughts(ctx)
	cache.InvalidateUsers(ctx)
	return nil
}

func (r *thoughtRepository) AddReaction(ctx context.Context, thoughtID uint, reaction *models.Reaction) error {
	if reaction.ReactionBody == "" || reaction.Username == "" {
		return models.NewValidationError("Reaction body and username are required")
	}

	if err := r.exists(ctx, thoughtID); err != nil {
		return err
	}

	// One write creates the reaction and appends it to the thought's
	// sequence; append order is preserved by (created_at, id).
	reaction.ThoughtID = thoughtID
	if err := r.db.WithContext(ctx).Create(reaction).Error; err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateThoughts(ctx)
	return nil
}

func (r *thoughtRepository) RemoveReaction(ctx context.Context, thoughtID, reactionID uint) error {
	if err := r.exists(ctx, thoughtID); err != nil {
		return err
	}

	// Unlike friend removal, this is a hard delete of the entity itself.
	res := r.db.WithContext(ctx).
		Where("thought_id = ?", thoughtID).
		Delete(&models.Reaction{}, reactionID)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Reaction", reactionID)
	}

	cache.InvalidateThoughts(ctx)
	return nil
}

func (r *thoughtRepository) GetReaction(ctx context.Context, reactionID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.WithContext(ctx).First(&reaction, reactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reaction", reactionID)
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

// expanded resolves the reaction reference sequence into full entities,
// preserving append order.
func (r *thoughtRepository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Reactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	})
}

func (r *thoughtRepository) exists(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Thought{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("Thought", id)
	}
	return nil
}
