package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const sessionUserKey = "admin_id"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// Login verifies admin credentials and establishes a signed cookie session.
// The earlier deployment compared a shared password on every call; the
// session replaces that with a real trust boundary.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "password is required") {
		return
	}

	query := a.db.Model(&db.AdminUser{})
	if req.Username != "" {
		query = query.Where("username = ?", req.Username)
	}

	var user db.AdminUser
	if err := query.Order("created_at asc").First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Username})
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me reports the logged-in admin, for the admin UI to restore its state.
func (a *API) Me(c *gin.Context) {
	session := sessions.Default(c)
	id, ok := session.Get(sessionUserKey).(string)
	if !ok || id == "" {
		respondError(c, http.StatusUnauthorized, "not logged in")
		return
	}

	var user db.AdminUser
	if err := a.db.First(&user, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "not logged in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// AuthRequired guards the mutating admin routes.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, ok := session.Get(sessionUserKey).(string)
		if !ok || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
