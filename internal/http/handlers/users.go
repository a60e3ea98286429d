package handlers

import (
	"net/http"
	"strings"

	"transportpro/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// ListUsers supports ?q= (name, username, email, department) and ?role=.
func (a *API) ListUsers(c *gin.Context) {
	svc := a.users(c)
	q := strings.TrimSpace(c.Query("q"))
	role := strings.TrimSpace(c.Query("role"))

	var users []models.User
	switch {
	case role != "":
		byRole, err := svc.GetUsersByRole(models.Role(role))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		users = byRole
		if q != "" {
			users = intersectUsers(users, svc.SearchUsers(q))
		}
	case q != "":
		users = svc.SearchUsers(q)
	default:
		users = svc.ListUsers()
	}
	c.JSON(http.StatusOK, users)
}

func intersectUsers(a, b []models.User) []models.User {
	keep := make(map[string]struct{}, len(b))
	for _, u := range b {
		keep[u.ID] = struct{}{}
	}
	out := make([]models.User, 0, len(a))
	for _, u := range a {
		if _, ok := keep[u.ID]; ok {
			out = append(out, u)
		}
	}
	return out
}

func (a *API) GetUser(c *gin.Context) {
	u, err := a.users(c).GetUser(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (a *API) CreateUser(c *gin.Context) {
	var in models.UserInput
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := a.users(c).AddUser(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (a *API) UpdateUser(c *gin.Context) {
	var patch models.UserPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	u, err := a.users(c).UpdateUser(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (a *API) DeleteUser(c *gin.Context) {
	if err := a.users(c).DeleteUser(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (a *API) ToggleUserStatus(c *gin.Context) {
	u, err := a.users(c).ToggleUserStatus(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type statusRequest struct {
	Status models.UserStatus `json:"status"`
}

func (a *API) SetUserStatus(c *gin.Context) {
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := a.users(c).SetUserStatus(c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ResetUserPassword returns the temporary password once; only its hash
// is kept.
func (a *API) ResetUserPassword(c *gin.Context) {
	pw, err := a.users(c).ResetUserPassword(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"temporaryPassword": pw})
}
