package api

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"

	"go-blog/internal/form"
	"go-blog/internal/model"
	"go-blog/internal/service"
	"go-blog/pkg/logger"
	"go-blog/pkg/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the blog pages.
type Handler struct {
	posts   *service.PostService
	groups  *service.GroupService
	follows *service.FollowService
	images  *service.ImageService
}

func NewHandler(posts *service.PostService, groups *service.GroupService, follows *service.FollowService, images *service.ImageService) *Handler {
	return &Handler{
		posts:   posts,
		groups:  groups,
		follows: follows,
		images:  images,
	}
}

// postView is a post as pages show it, with its image resolved to a URL.
type postView struct {
	model.Post
	ImageURL string `json:"image_url,omitempty"`
}

func (h *Handler) present(p model.Post) postView {
	v := postView{Post: p}
	if p.Image != "" {
		v.ImageURL = h.images.URL(p.Image)
	}
	return v
}

func (h *Handler) presentPage(page service.PostPage) pagination.Page[postView] {
	views := make([]postView, 0, len(page.Items))
	for _, p := range page.Items {
		views = append(views, h.present(p))
	}
	return pagination.NewPage(views, page.Window)
}

func postIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func postURL(username string, postID uint) string {
	return fmt.Sprintf("/posts/%s/%d", url.PathEscape(username), postID)
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username)
}

// uploadedImage returns the optional image part of a multipart post form.
func uploadedImage(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func bindPostForm(c *gin.Context) (form.PostForm, form.Errors) {
	var f form.PostForm
	if err := c.ShouldBind(&f); err != nil {
		logger.L.Warn("Failed to bind post form", zap.Error(err))
		return f, form.FromError(err)
	}
	return f, nil
}

func bindCommentForm(c *gin.Context) (form.CommentForm, form.Errors) {
	var f form.CommentForm
	if err := c.ShouldBind(&f); err != nil {
		logger.L.Warn("Failed to bind comment form", zap.Error(err))
		return f, form.FromError(err)
	}
	return f, nil
}
