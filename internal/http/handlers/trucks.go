package handlers

import (
	"net/http"

	"transportpro/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListTrucks(c *gin.Context) {
	trucks, err := a.inventory(c).ListTrucks(c.Query("q"), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trucks)
}

func (a *API) TruckModels(c *gin.Context) {
	c.JSON(http.StatusOK, a.inventory(c).Models())
}

func (a *API) GetTruck(c *gin.Context) {
	truck, err := a.inventory(c).GetTruck(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (a *API) CreateTruck(c *gin.Context) {
	var in models.TruckInput
	if !BindJSONOrError(c, &in) {
		return
	}
	truck, err := a.inventory(c).AddTruck(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, truck)
}

func (a *API) UpdateTruck(c *gin.Context) {
	var patch models.TruckPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	truck, err := a.inventory(c).UpdateTruck(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

// SellTruck records the sale of an unsold truck.
func (a *API) SellTruck(c *gin.Context) {
	var sale models.SaleDetails
	if !BindJSONOrError(c, &sale) {
		return
	}
	truck, err := a.inventory(c).SellTruck(c.Param("id"), sale)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

// CorrectSale replaces the sale details of a truck that is already sold.
func (a *API) CorrectSale(c *gin.Context) {
	var sale models.SaleDetails
	if !BindJSONOrError(c, &sale) {
		return
	}
	truck, err := a.inventory(c).CorrectSale(c.Param("id"), sale)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (a *API) DeleteTruck(c *gin.Context) {
	if err := a.inventory(c).DeleteTruck(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "truck deleted"})
}
