package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
)

// Handlers carries the injected dependencies shared by all page handlers.
type Handlers struct {
	Posts *models.PostRepo
	Users *models.UserRepo
	Log   *slog.Logger
}

// Register wires the full route table onto the engine.
func Register(router *gin.Engine, h *Handlers) {
	authRouter := &auth.Router{Base: router, Users: h.Users}
	authRouter.GET("/", h.Index)
	router.GET("/signup", h.SignupForm)
	router.POST("/signup", h.Signup)
	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	authRouter.GET("/logout", h.Logout)
	authRouter.GET("/create", h.CreateForm)
	authRouter.POST("/create", h.Create)
	authRouter.GET("/:id/update", h.UpdateForm)
	authRouter.POST("/:id/update", h.Update)
	authRouter.GET("/:id/delete", h.Delete)
}

func (h *Handlers) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{})
}

// postID parses the :id path parameter. Renders the 404 page and returns
// false on garbage input.
func (h *Handlers) postID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}
