package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SignUp(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}
	if _, err := h.auth.Register(c.Request.Context(), body.Username, body.Email, body.Password); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Logout revokes the session if one is present. It succeeds either way;
// there is nothing useful to tell a caller who was not logged in.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		h.auth.Logout(c.Request.Context(), token)
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.auth.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "email": user.Email})
}
