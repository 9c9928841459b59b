package api

import (
	"github.com/gin-gonic/gin"
)

// Groups lists all groups, seven per page.
func (h *Handler) Groups(c *gin.Context) Outcome {
	page, err := h.groups.ListGroups(c.Query("page"))
	if err != nil {
		return Fault(err)
	}
	return Rendered("group_all.html", gin.H{"page": page})
}

// GroupPosts lists the posts filed under one group.
func (h *Handler) GroupPosts(c *gin.Context) Outcome {
	group, page, err := h.posts.ListGroupPosts(c.Param("slug"), c.Query("page"))
	if err != nil {
		return errorOutcome(err)
	}
	return Rendered("group.html", gin.H{
		"group": group,
		"page":  h.presentPage(page),
	})
}
