package handlers

import (
	"net/http"

	"transportpro/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "username and password are required", nil)
		return
	}

	sess, err := a.auth(c).Login(req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (a *API) Logout(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not logged in", nil)
		return
	}
	if err := a.auth(c).Logout(sess.Token); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *API) Me(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not logged in", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sess.User, "expiresAt": sess.ExpiresAt})
}
