package models

import (
	"time"
)

// FriendStatus represents the status of a friend relation.
type FriendStatus string

const (
	// FriendStatusPending indicates a pending friend request.
	FriendStatusPending FriendStatus = "pending"
	// FriendStatusAccepted indicates an accepted friend relation.
	FriendStatusAccepted FriendStatus = "accepted"
)

// FriendRelation is a directed friend-request row. An accepted row counts as
// a friendship for both sides; a pending row is visible only to the target
// (FriendID) side.
type FriendRelation struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	FriendID  uint         `gorm:"not null;index" json:"friend_id"`
	Status    FriendStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Requester User `gorm:"foreignKey:UserID" json:"-"`
	Target    User `gorm:"foreignKey:FriendID" json:"-"`
}

// TableName specifies the table name for GORM.
func (FriendRelation) TableName() string {
	return "friends"
}

// PendingRequest is an incoming friend request resolved with the requester's
// public identity, as shown on the profile endpoint.
type PendingRequest struct {
	RequestID     uint    `json:"request_id"`
	RequesterID   uint    `json:"requester_id"`
	RequesterName string  `json:"requester_name"`
	AvatarURL     *string `json:"avatar_url"`
}
