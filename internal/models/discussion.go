package models

import (
	"time"
)

// Discussion is a scoped discussion post. One entity covers three visibility
// shapes: class-scoped (batch+department set), department-scoped (batch null)
// and public (is_public true). Discussions are append-only.
type Discussion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Batch      *string   `gorm:"index:idx_discussions_class" json:"batch"`
	Department *string   `gorm:"index:idx_discussions_class" json:"department"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	FilePath   *string   `json:"file_path"`
	IsPublic   bool      `gorm:"default:false;index" json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// DiscussionWithAuthor is a discussion enriched with its author's name.
type DiscussionWithAuthor struct {
	Discussion
	Name string `json:"name"`
}

// PostLike records a single user's like on a discussion. The (post_id,
// user_id) pair is unique; duplicate likes must be idempotent no-ops.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostReply is a reply on a discussion, append-only, ordered ascending by
// creation time per post.
type PostReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	FilePath  *string   `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`

	Post Discussion `gorm:"foreignKey:PostID" json:"-"`
	User User       `gorm:"foreignKey:UserID" json:"-"`
}

// PostReplyWithAuthor is a reply enriched with its author's name.
type PostReplyWithAuthor struct {
	PostReply
	Name string `json:"name"`
}
