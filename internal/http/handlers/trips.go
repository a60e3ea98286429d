package handlers

import (
	"net/http"

	"transportpro/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListTrips(c *gin.Context) {
	trips, err := a.transport(c).ListTrips(c.Query("q"), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (a *API) GetTrip(c *gin.Context) {
	trip, err := a.transport(c).GetTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (a *API) CreateTrip(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	trip, err := a.transport(c).AddTrip(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (a *API) UpdateTrip(c *gin.Context) {
	var patch models.TripPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	trip, err := a.transport(c).UpdateTrip(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (a *API) DeleteTrip(c *gin.Context) {
	if err := a.transport(c).DeleteTrip(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}

func (a *API) Fleet(c *gin.Context) {
	c.JSON(http.StatusOK, a.transport(c).Fleet())
}
