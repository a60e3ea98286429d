package handlers

import (
	"net/http"

	"transportpro/internal/domain"
	"transportpro/internal/services"

	"github.com/gin-gonic/gin"
)

func bindReportFilter(c *gin.Context) (domain.ReportFilter, bool) {
	var f domain.ReportFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid filter", err.Error())
		return f, false
	}
	f, err := services.ParseReportFilter(f)
	if err != nil {
		RespondDomainError(c, err)
		return f, false
	}
	return f, true
}

func (a *API) TransportReport(c *gin.Context) {
	f, ok := bindReportFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a.reports(c).GenerateTransportReport(f))
}

func (a *API) InventoryReport(c *gin.Context) {
	f, ok := bindReportFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a.reports(c).GenerateInventoryReport(f))
}

func (a *API) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, a.reports(c).GetDashboardMetrics())
}

func (a *API) ExportTransportCSV(c *gin.Context) {
	body, name, err := a.exports(c).TripsCSV()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "text/csv; charset=utf-8", name, body)
}

func (a *API) ExportInventoryCSV(c *gin.Context) {
	body, name, err := a.exports(c).TrucksCSV()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "text/csv; charset=utf-8", name, body)
}

func (a *API) ExportTransportPDF(c *gin.Context) {
	f, ok := bindReportFilter(c)
	if !ok {
		return
	}
	body, name, err := a.exports(c).TransportPDF(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "application/pdf", name, body)
}

func (a *API) ExportInventoryPDF(c *gin.Context) {
	f, ok := bindReportFilter(c)
	if !ok {
		return
	}
	body, name, err := a.exports(c).InventoryPDF(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, "application/pdf", name, body)
}
