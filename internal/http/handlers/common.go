package handlers

import (
	"net/http"
	"time"

	"transportpro/internal/http/middleware"
	"transportpro/internal/repositories"
	"transportpro/internal/services"

	"github.com/gin-gonic/gin"
)

// API holds the stores shared by every request. Services are built per
// request so their log lines carry the request id.
type API struct {
	Trips    *repositories.TripRepository
	Trucks   *repositories.TruckRepository
	Users    *repositories.UserRepository
	Auth     services.AuthService
	HashCost int
	Now      func() time.Time
}

func (a *API) transport(c *gin.Context) services.TransportService {
	return services.TransportService{Repo: a.Trips, RequestID: middleware.GetRequestID(c)}
}

func (a *API) inventory(c *gin.Context) services.InventoryService {
	return services.InventoryService{Repo: a.Trucks, RequestID: middleware.GetRequestID(c)}
}

func (a *API) users(c *gin.Context) services.UserService {
	return services.UserService{Repo: a.Users, HashCost: a.HashCost, RequestID: middleware.GetRequestID(c)}
}

func (a *API) reports(c *gin.Context) services.ReportsService {
	return services.ReportsService{Trips: a.Trips, Trucks: a.Trucks, Now: a.Now, RequestID: middleware.GetRequestID(c)}
}

func (a *API) exports(c *gin.Context) services.ExportService {
	return services.ExportService{Trips: a.Trips, Trucks: a.Trucks, Now: a.Now, RequestID: middleware.GetRequestID(c)}
}

func (a *API) auth(c *gin.Context) services.AuthService {
	svc := a.Auth
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload", err.Error())
		return false
	}
	return true
}

func sendFile(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
