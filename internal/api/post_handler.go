package api

import (
	"errors"
	"net/http"

	"go-blog/internal/form"
	"go-blog/internal/middleware"
	"go-blog/internal/model"
	"go-blog/internal/service"

	"github.com/gin-gonic/gin"
)

// Index lists every post, newest first.
func (h *Handler) Index(c *gin.Context) Outcome {
	page, err := h.posts.ListPosts(c.Query("page"))
	if err != nil {
		return Fault(err)
	}
	return Rendered("index.html", gin.H{"page": h.presentPage(page)})
}

func (h *Handler) newPostForm(f form.PostForm) (gin.H, error) {
	groups, err := h.posts.Groups()
	if err != nil {
		return nil, err
	}
	return gin.H{"form": f, "groups": groups}, nil
}

// NewPost shows the post form and creates a post owned by the current user.
func (h *Handler) NewPost(c *gin.Context) Outcome {
	if c.Request.Method != http.MethodPost {
		data, err := h.newPostForm(form.PostForm{})
		if err != nil {
			return Fault(err)
		}
		return Rendered("new.html", data)
	}

	f, errs := bindPostForm(c)
	if errs == nil {
		var err error
		_, errs, err = h.posts.CreatePost(c.Request.Context(), middleware.CurrentUser(c), f, uploadedImage(c))
		if err != nil {
			return Fault(err)
		}
	}
	if errs != nil && !errs.Valid() {
		data, err := h.newPostForm(f)
		if err != nil {
			return Fault(err)
		}
		return Rendered("new.html", data).WithErrors(errs)
	}
	return Redirected("/")
}

func (h *Handler) postPage(post *model.Post, f form.CommentForm) (gin.H, error) {
	comments, err := h.posts.ListComments(post.ID)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"author": post.Author,
		"post":   h.present(*post),
		"items":  comments,
		"form":   f,
	}, nil
}

// PostView shows a post with its comments. A submitted comment form is only
// validated here; AddComment stores it.
func (h *Handler) PostView(c *gin.Context) Outcome {
	id, ok := postIDParam(c)
	if !ok {
		return NotFound()
	}
	post, err := h.posts.GetPost(c.Param("username"), id)
	if err != nil {
		return errorOutcome(err)
	}

	var f form.CommentForm
	var errs form.Errors
	if c.Request.Method == http.MethodPost {
		if f, errs = bindCommentForm(c); errs == nil {
			errs = f.Clean()
		}
	}

	data, err := h.postPage(post, f)
	if err != nil {
		return Fault(err)
	}
	if errs != nil && !errs.Valid() {
		return Rendered("post.html", data).WithErrors(errs)
	}
	return Rendered("post.html", data)
}

// PostEdit lets the author change a post. Anyone else is sent back to the post.
func (h *Handler) PostEdit(c *gin.Context) Outcome {
	id, ok := postIDParam(c)
	if !ok {
		return NotFound()
	}
	username := c.Param("username")
	post, err := h.posts.GetPost(username, id)
	if err != nil {
		return errorOutcome(err)
	}

	user := middleware.CurrentUser(c)
	if user == nil || user.ID != post.AuthorID {
		return Redirected(postURL(username, post.ID))
	}

	if c.Request.Method != http.MethodPost {
		data, err := h.newPostForm(form.PostFormFrom(post))
		if err != nil {
			return Fault(err)
		}
		data["post"] = h.present(*post)
		return Rendered("new.html", data).AsEdit()
	}

	f, errs := bindPostForm(c)
	if _, sent := c.GetPostForm("group"); !sent {
		// a submission without the group field keeps the current group
		f.Group = form.PostFormFrom(post).Group
	}
	if errs == nil {
		errs, err = h.posts.UpdatePost(c.Request.Context(), user, post, f, uploadedImage(c))
		if errors.Is(err, service.ErrNotAuthor) {
			return Redirected(postURL(username, post.ID))
		}
		if err != nil {
			return Fault(err)
		}
	}
	if errs != nil && !errs.Valid() {
		data, err := h.newPostForm(f)
		if err != nil {
			return Fault(err)
		}
		data["post"] = h.present(*post)
		return Rendered("new.html", data).WithErrors(errs).AsEdit()
	}
	return Redirected(postURL(username, post.ID))
}

// AddComment stores a comment by the current user on the post.
func (h *Handler) AddComment(c *gin.Context) Outcome {
	id, ok := postIDParam(c)
	if !ok {
		return NotFound()
	}
	username := c.Param("username")
	post, err := h.posts.GetPost(username, id)
	if err != nil {
		return errorOutcome(err)
	}

	f, errs := bindCommentForm(c)
	if errs == nil {
		_, errs, err = h.posts.AddComment(c.Request.Context(), middleware.CurrentUser(c), post, f)
		if err != nil {
			return Fault(err)
		}
	}
	if errs != nil && !errs.Valid() {
		data, err := h.postPage(post, f)
		if err != nil {
			return Fault(err)
		}
		return Rendered("post.html", data).WithErrors(errs)
	}
	return Redirected(postURL(username, post.ID))
}
