package auth

import (
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the authenticated caller, already loaded from the store.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds the auth check + User pre-loading. Anonymous
// callers are redirected to the login page instead of reaching the handler.
type Router struct {
	Base  *gin.Engine
	Users *models.UserRepo
}

func (ar *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	id := session.UserID()
	if id == 0 {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	user, err := ar.Users.ByID(id)
	if err != nil {
		// Stale session, e.g. the user no longer exists
		session.LogoutUser()
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	handler(c, &user)
}

func (ar *Router) GET(path string, handler HandlerFunc) {
	ar.Base.GET(path, func(c *gin.Context) {
		ar.baseExec(c, handler)
	})
}

func (ar *Router) POST(path string, handler HandlerFunc) {
	ar.Base.POST(path, func(c *gin.Context) {
		ar.baseExec(c, handler)
	})
}
