package form

import (
	"strconv"
	"strings"

	"go-blog/internal/model"
)

// PostForm is the new/edit post payload. The image arrives as a separate
// multipart file.
type PostForm struct {
	Text  string `form:"text" json:"text" validate:"required"`
	Group string `form:"group" json:"group" validate:"omitempty,numeric"`
}

// Clean normalises the input and validates it.
func (f *PostForm) Clean() Errors {
	f.Text = strings.TrimSpace(f.Text)
	f.Group = strings.TrimSpace(f.Group)
	return Validate(f)
}

// GroupID returns the chosen group id, nil when none was chosen.
func (f *PostForm) GroupID() *uint {
	if f.Group == "" {
		return nil
	}
	id, err := strconv.ParseUint(f.Group, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

// PostFormFrom pre-fills the form from an existing post.
func PostFormFrom(p *model.Post) PostForm {
	f := PostForm{Text: p.Text}
	if p.GroupID != nil {
		f.Group = strconv.FormatUint(uint64(*p.GroupID), 10)
	}
	return f
}

type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required,max=200"`
}

func (f *CommentForm) Clean() Errors {
	f.Text = strings.TrimSpace(f.Text)
	return Validate(f)
}

type GroupForm struct {
	Title       string `form:"title" json:"title" validate:"required,max=200"`
	Slug        string `form:"slug" json:"slug" validate:"required,max=50,slug"`
	Description string `form:"description" json:"description"`
}

func (f *GroupForm) Clean() Errors {
	f.Title = strings.TrimSpace(f.Title)
	f.Slug = strings.TrimSpace(f.Slug)
	return Validate(f)
}
