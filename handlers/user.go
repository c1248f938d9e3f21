package handlers

import (
	"errors"
	"net/http"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupRequest struct {
	Username string `form:"username" binding:"required,max=30"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handlers) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{})
}

func (h *Handlers) Signup(c *gin.Context) {
	req := SignupRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{
			"error":    "username (up to 30 characters) and password are required",
			"username": c.PostForm("username"),
		})
		return
	}
	_, err := h.Users.Create(req.Username, req.Password)
	if errors.Is(err, models.ErrDuplicateUsername) {
		c.HTML(http.StatusConflict, "signup.tmpl", gin.H{
			"error":    "that username is already taken",
			"username": req.Username,
		})
		return
	}
	if err != nil {
		h.Log.Error("Signup failed", "username", req.Username, "err", err)
		c.HTML(http.StatusInternalServerError, "signup.tmpl", gin.H{
			"error": "something went wrong, please try again",
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handlers) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{})
}

func (h *Handlers) Login(c *gin.Context) {
	req := LoginRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", gin.H{
			"error": "username and password are required",
		})
		return
	}
	user, err := h.Users.ByUsername(req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{
			"error":    "wrong username or password",
			"username": req.Username,
		})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) Logout(c *gin.Context, _ *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusSeeOther, "/login")
}
