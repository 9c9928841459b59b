package model

// Follow is a directed subscription: UserID follows AuthorID.
// The (user_id, author_id) pair is unique.
type Follow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"user_id"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_follow_user_author;index" json:"author_id"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// All lists every entity for migrations, parents first.
func All() []interface{} {
	return []interface{}{&User{}, &Group{}, &Post{}, &Comment{}, &Follow{}}
}
