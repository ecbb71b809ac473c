package models

import (
	"time"

	"gorm.io/gorm"
)

// Thought is a short text post. Username is the denormalized author name, not
// a reference; UserID links the thought into its author's thought set and may
// dangle once the author is deleted.
type Thought struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ThoughtText string     `gorm:"not null" json:"thoughtText"`
	Username    string     `gorm:"not null" json:"username"`
	UserID      uint       `gorm:"index" json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	Reactions   []Reaction `gorm:"foreignKey:ThoughtID" json:"reactions"`
}

// AfterFind initializes an empty reaction sequence so it serializes as []
// rather than null.
func (t *Thought) AfterFind(*gorm.DB) error {
	if t.Reactions == nil {
		t.Reactions = []Reaction{}
	}
	return nil
}

// AfterCreate keeps freshly created thoughts consistent with the read shape.
func (t *Thought) AfterCreate(*gorm.DB) error {
	return t.AfterFind(nil)
}
