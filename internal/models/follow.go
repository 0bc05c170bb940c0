package models

import (
	"time"
)

// Follow is a directed edge in the self-referential user graph: FollowerID
// reads FollowedID. The composite unique index keeps the pair deduplicated;
// self-follows are rejected in service logic, not by the schema.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followed" json:"follower_id"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"follower"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followed" json:"followed_id"`
	Followed   User      `gorm:"foreignKey:FollowedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"followed"`
	CreatedAt  time.Time `json:"created_at"`
}
