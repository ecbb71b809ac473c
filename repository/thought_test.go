package repository

import (
	"context"
	"testing"

	"murmur/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestThought(t *testing.T, repo ThoughtRepository, text, username string) *models.Thought {
	t.Helper()

	thought := &models.Thought{ThoughtText: text, Username: username}
	require.NoError(t, repo.Create(context.Background(), thought))
	return thought
}

func TestCreateThought_RequiredFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)

	tests := []struct {
		name    string
		thought models.Thought
	}{
		{"missing text", models.Thought{Username: "a"}},
		{"missing username", models.Thought{ThoughtText: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(context.Background(), &tt.thought)
			require.Error(t, err)
			appErr, ok := err.(*models.AppError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestUpdateThought_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)

	_, err := repo.Update(context.Background(), 9999, UpdateThoughtFields{ThoughtText: "x"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUpdateThought_PartialReplacement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)
	ctx := context.Background()

	thought := createTestThought(t, repo, "original", "a")

	got, err := repo.Update(ctx, thought.ID, UpdateThoughtFields{ThoughtText: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", got.ThoughtText)
	assert.Equal(t, "a", got.Username)
}

func TestAddReaction_AppendOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)
	ctx := context.Background()

	thought := createTestThought(t, repo, "hi", "a")

	first := &models.Reaction{ReactionBody: "one", Username: "b"}
	require.NoError(t, repo.AddReaction(ctx, thought.ID, first))
	second := &models.Reaction{ReactionBody: "two", Username: "c"}
	require.NoError(t, repo.AddReaction(ctx, thought.ID, second))

	got, err := repo.GetByID(ctx, thought.ID)
	require.NoError(t, err)
	require.Len(t, got.Reactions, 2)
	assert.Equal(t, "one", got.Reactions[0].ReactionBody)
	assert.Equal(t, "two", got.Reactions[1].ReactionBody)
}

func TestAddReaction_ThoughtNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)

	err := repo.AddReaction(context.Background(), 9999, &models.Reaction{
		ReactionBody: "hi", Username: "b",
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestAddReaction_RequiredFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)

	thought := createTestThought(t, repo, "hi", "a")

	err := repo.AddReaction(context.Background(), thought.ID, &models.Reaction{Username: "b"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestRemoveReaction_HardDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)
	ctx := context.Background()

	thought := createTestThought(t, repo, "hi", "a")
	keep := &models.Reaction{ReactionBody: "keep", Username: "b"}
	require.NoError(t, repo.AddReaction(ctx, thought.ID, keep))
	gone := &models.Reaction{ReactionBody: "gone", Username: "c"}
	require.NoError(t, repo.AddReaction(ctx, thought.ID, gone))

	require.NoError(t, repo.RemoveReaction(ctx, thought.ID, gone.ID))

	// Sequence back to its prior length, order preserved
	got, err := repo.GetByID(ctx, thought.ID)
	require.NoError(t, err)
	require.Len(t, got.Reactions, 1)
	assert.Equal(t, "keep", got.Reactions[0].ReactionBody)

	// The entity itself is gone, unlike friend detach
	_, err = repo.GetReaction(ctx, gone.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestRemoveReaction_MissingReaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)

	thought := createTestThought(t, repo, "hi", "a")

	err := repo.RemoveReaction(context.Background(), thought.ID, 9999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestDeleteThought_NoCascadeToReactions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)
	ctx := context.Background()

	thought := createTestThought(t, repo, "hi", "a")
	reaction := &models.Reaction{ReactionBody: "wave", Username: "b"}
	require.NoError(t, repo.AddReaction(ctx, thought.ID, reaction))

	require.NoError(t, repo.Delete(ctx, thought.ID))

	_, err := repo.GetByID(ctx, thought.ID)
	require.Error(t, err)

	// The reaction survives and stays independently retrievable
	got, err := repo.GetReaction(ctx, reaction.ID)
	require.NoError(t, err)
	assert.Equal(t, "wave", got.ReactionBody)
}

func TestDeleteThought_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)

	err := repo.Delete(context.Background(), 9999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestListThoughts_ExpandsReactions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThoughtRepository(db)
	ctx := context.Background()

	thought := createTestThought(t, repo, "hi", "a")
	require.NoError(t, repo.AddReaction(ctx, thought.ID, &models.Reaction{
		ReactionBody: "wave", Username: "b",
	}))

	thoughts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, thoughts, 1)
	require.Len(t, thoughts[0].Reactions, 1)
	assert.Equal(t, "wave", thoughts[0].Reactions[0].ReactionBody)
}
