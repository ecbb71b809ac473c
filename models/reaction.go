package models

import (
	"time"
)

// Reaction is a short comment attached to a Thought. Removal through the
// reaction-removal endpoint hard-deletes the row; deleting the parent thought
// does not cascade, so a reaction can outlive its thought.
type Reaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ReactionBody string    `gorm:"not null" json:"reactionBody"`
	Username     string    `gorm:"not null" json:"username"`
	ThoughtID    uint      `gorm:"index" json:"thought_id"`
	CreatedAt    time.Time `json:"createdAt"`
}
