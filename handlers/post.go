package handlers

import (
	"errors"
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PostRequest struct {
	Title   string `form:"title" binding:"required,max=50"`
	Content string `form:"content" binding:"required,max=500"`
}

const postFieldsError = "title (up to 50 characters) and content (up to 500 characters) are required"

func (h *Handlers) Index(c *gin.Context, user *models.User) {
	posts, err := h.Posts.List()
	if err != nil {
		h.Log.Error("Listing posts failed", "err", err)
		c.HTML(http.StatusInternalServerError, "index.tmpl", gin.H{
			"error":    "could not load posts",
			"username": user.Username,
		})
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"posts":    posts,
		"username": user.Username,
	})
}

func (h *Handlers) CreateForm(c *gin.Context, _ *models.User) {
	c.HTML(http.StatusOK, "create.tmpl", gin.H{})
}

func (h *Handlers) Create(c *gin.Context, _ *models.User) {
	req := PostRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "create.tmpl", gin.H{
			"error":   postFieldsError,
			"title":   c.PostForm("title"),
			"content": c.PostForm("content"),
		})
		return
	}
	if _, err := h.Posts.Create(req.Title, req.Content); err != nil {
		h.Log.Error("Creating post failed", "err", err)
		c.HTML(http.StatusInternalServerError, "create.tmpl", gin.H{
			"error":   "something went wrong, please try again",
			"title":   req.Title,
			"content": req.Content,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) UpdateForm(c *gin.Context, _ *models.User) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	post, err := h.Posts.Get(id)
	if errors.Is(err, models.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("Loading post failed", "id", id, "err", err)
		h.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "update.tmpl", gin.H{"post": post})
}

func (h *Handlers) Update(c *gin.Context, _ *models.User) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	req := PostRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "update.tmpl", gin.H{
			"error": postFieldsError,
			"post": models.Post{
				ID:      id,
				Title:   c.PostForm("title"),
				Content: c.PostForm("content"),
			},
		})
		return
	}
	_, err := h.Posts.Update(id, req.Title, req.Content)
	if errors.Is(err, models.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("Updating post failed", "id", id, "err", err)
		c.HTML(http.StatusInternalServerError, "update.tmpl", gin.H{
			"error": "something went wrong, please try again",
			"post":  models.Post{ID: id, Title: req.Title, Content: req.Content},
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) Delete(c *gin.Context, _ *models.User) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	err := h.Posts.Delete(id)
	if errors.Is(err, models.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("Deleting post failed", "id", id, "err", err)
		h.notFound(c)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
