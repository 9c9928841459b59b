package api

import (
	"go-blog/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Profile lists an author's posts. Signed-in viewers also learn whether
// they follow the author.
func (h *Handler) Profile(c *gin.Context) Outcome {
	author, page, err := h.posts.ListAuthorPosts(c.Param("username"), c.Query("page"))
	if err != nil {
		return errorOutcome(err)
	}

	following := false
	if viewer := middleware.CurrentUser(c); viewer != nil {
		if following, err = h.follows.IsFollowing(viewer.ID, author.ID); err != nil {
			return Fault(err)
		}
	}
	stats, err := h.follows.Stats(author.ID)
	if err != nil {
		return Fault(err)
	}

	return Rendered("profile.html", gin.H{
		"author":    author,
		"page":      h.presentPage(page),
		"following": following,
		"stats":     stats,
	})
}

// FollowIndex is the feed of posts by authors the current user follows.
func (h *Handler) FollowIndex(c *gin.Context) Outcome {
	page, err := h.posts.ListFeed(middleware.CurrentUser(c).ID, c.Query("page"))
	if err != nil {
		return Fault(err)
	}
	return Rendered("follow.html", gin.H{
		"page":   h.presentPage(page),
		"follow": true,
	})
}

func (h *Handler) ProfileFollow(c *gin.Context) Outcome {
	username := c.Param("username")
	if _, err := h.follows.Follow(c.Request.Context(), middleware.CurrentUser(c), username); err != nil {
		return errorOutcome(err)
	}
	return Redirected(profileURL(username))
}

// ProfileUnfollow fails with a server error when there was nothing to unfollow.
func (h *Handler) ProfileUnfollow(c *gin.Context) Outcome {
	username := c.Param("username")
	if _, err := h.follows.Unfollow(c.Request.Context(), middleware.CurrentUser(c), username); err != nil {
		return errorOutcome(err)
	}
	return Redirected(profileURL(username))
}
