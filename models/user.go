// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account on the network. Friends is an asymmetric set of
// references: A listing B does not imply B lists A. Friend and thought
// references may dangle after the referenced row is deleted; readers tolerate
// that, so the link table carries no foreign-key constraints.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Thoughts  []Thought `gorm:"foreignKey:UserID" json:"thoughts"`
	Friends   []*User   `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID" json:"friends"`
}

// AfterFind initializes empty reference sets so they serialize as [] rather
// than null.
func (u *User) AfterFind(*gorm.DB) error {
	if u.Thoughts == nil {
		u.Thoughts = []Thought{}
	}
	if u.Friends == nil {
		u.Friends = []*User{}
	}
	return nil
}

// AfterCreate keeps freshly created users consistent with the read shape.
func (u *User) AfterCreate(*gorm.DB) error {
	return u.AfterFind(nil)
}
