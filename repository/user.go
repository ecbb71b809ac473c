// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"murmur/auth"
	"murmur/cache"
	"murmur/models"

	"gorm.io/gorm"
)

// UpdateUserFields carries a partial-or-full user update. Empty strings mean
// "leave untouched"; the password is re-hashed only when it is present here,
// never on unrelated updates.
type UpdateUserFields struct {
	Username string
	Email    string
	Password string
}

// UserRepository defines persistence operations for users and friend links.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, id uint, fields UpdateUserFields) (*models.User, error)
	Delete(ctx context.Context, id uint) error
	AddFriend(ctx context.Context, userID, friendID uint) (*models.User, error)
	RemoveFriend(ctx context.Context, userID, friendID uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.Username == "" || user.Email == "" || user.Password == "" {
		return models.NewValidationError("Username, email and password are required")
	}

	// Hash-on-write: the plaintext never reaches the store.
	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = hashed

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Email already in use")
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateUsers(ctx)
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	err := cache.Aside(ctx, cache.UsersListKey, &users, cache.UsersListTTL, func() error {
		if err := r.expanded(ctx).Find(&users).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.expanded(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, fields UpdateUserFields) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}

	if fields.Username != "" {
		user.Username = fields.Username
	}
	if fields.Email != "" {
		user.Email = fields.Email
	}
	if fields.Password != "" {
		hashed, err := auth.HashPassword(fields.Password)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = hashed
	}

	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Email already in use")
		}
		return nil, models.NewInternalError(err)
	}

	cache.InvalidateUsers(ctx)
	return r.GetByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}

	// The user's own friend set dies with the user. References held by other
	// users, and thoughts authored by this user, are left behind on purpose:
	// no cascade, dangling references are legal.
	if err := r.db.WithContext(ctx).Exec(
		"DELETE FROM user_friends WHERE user_id = ?", id).Error; err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateUsers(ctx)
	return nil
}

func (r *userRepository) AddFriend(ctx context.Context, userID, friendID uint) (*models.User, error) {
	if err := r.exists(ctx, userID); err != nil {
		return nil, err
	}

	// Set semantics; the friend id itself is not checked for existence.
	if err := r.db.WithContext(ctx).Exec(
		"INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		userID, friendID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	cache.InvalidateUsers(ctx)
	return r.GetByID(ctx, userID)
}

func (r *userRepository) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	if err := r.exists(ctx, userID); err != nil {
		return err
	}

	// Removing an absent reference is a no-op, not an error.
	if err := r.db.WithContext(ctx).Exec(
		"DELETE FROM user_friends WHERE user_id = ? AND friend_id = ?",
		userID, friendID).Error; err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateUsers(ctx)
	return nil
}

// expanded resolves the thought and friend reference sets into full entities.
func (r *userRepository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Thoughts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Friends")
}

func (r *userRepository) exists(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}
