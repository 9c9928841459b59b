package model

import "time"

// CommentMaxLength bounds Comment.Text.
const CommentMaxLength = 200

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PostID   uint      `gorm:"not null;index" json:"post_id"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Text     string    `gorm:"type:varchar(200);not null" json:"text"`
	Created  time.Time `gorm:"autoCreateTime;index" json:"created"`

	Post   Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
}
