package model

import (
	"fmt"
	"time"
)

type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"autoCreateTime;index" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	GroupID  *uint     `gorm:"index" json:"group_id"`
	// Image is the storage key of the attached picture, empty when there is none.
	Image string `gorm:"type:varchar(255)" json:"image,omitempty"`

	Author User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Group  *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
}

// String renders "<author>.<pub_date>.<first 30 characters of text>".
func (p Post) String() string {
	text := []rune(p.Text)
	if len(text) > 30 {
		text = text[:30]
	}
	return fmt.Sprintf("%s.%s.%s", p.Author.Username, p.PubDate.Format("2006-01-02 15:04:05"), string(text))
}
