package services

import (
	"sort"
	"strings"
	"time"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/metrics"
	"transportpro/internal/repositories"
	"transportpro/internal/utils"
)

const topPerformers = 5

// ReportsService derives reports from snapshots of the trip and truck
// stores. Nothing is cached; every call rescans both lists.
type ReportsService struct {
	Trips     *repositories.TripRepository
	Trucks    *repositories.TruckRepository
	Now       func() time.Time
	RequestID string
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// ParseReportFilter trims the filter and rejects malformed dates or an
// inverted range.
func ParseReportFilter(f domain.ReportFilter) (domain.ReportFilter, error) {
	f.DateFrom = strings.TrimSpace(f.DateFrom)
	f.DateTo = strings.TrimSpace(f.DateTo)
	f.TruckID = strings.TrimSpace(f.TruckID)
	f.Status = strings.TrimSpace(f.Status)

	if f.DateFrom != "" && !utils.IsDate(f.DateFrom) {
		return f, domain.ValidationError{Field: "dateFrom", Msg: "must be YYYY-MM-DD"}
	}
	if f.DateTo != "" && !utils.IsDate(f.DateTo) {
		return f, domain.ValidationError{Field: "dateTo", Msg: "must be YYYY-MM-DD"}
	}
	if f.DateFrom != "" && f.DateTo != "" && f.DateFrom > f.DateTo {
		return f, domain.ValidationError{Field: "dateTo", Msg: "must not be before dateFrom"}
	}
	return f, nil
}

func (s ReportsService) GenerateTransportReport(f domain.ReportFilter) models.TransportReport {
	metrics.ReportsGenerated.WithLabelValues("transport").Inc()
	return BuildTransportReport(s.Trips.List(), f)
}

func (s ReportsService) GenerateInventoryReport(f domain.ReportFilter) models.InventoryReport {
	metrics.ReportsGenerated.WithLabelValues("inventory").Inc()
	return BuildInventoryReport(s.Trucks.List(), f)
}

// GetDashboardMetrics composes both unfiltered reports at the service clock.
func (s ReportsService) GetDashboardMetrics() models.DashboardMetrics {
	metrics.ReportsGenerated.WithLabelValues("dashboard").Inc()
	return BuildDashboardMetrics(s.Trips.List(), s.Trucks.List(), s.now())
}

func filterTrips(trips []models.Trip, f domain.ReportFilter) []models.Trip {
	if f.IsZero() {
		return trips
	}
	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if !utils.DateInRange(t.StartDate, f.DateFrom, f.DateTo) {
			continue
		}
		if f.TruckID != "" && t.TruckRegistration != f.TruckID {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BuildTransportReport aggregates the trips matching f.
func BuildTransportReport(trips []models.Trip, f domain.ReportFilter) models.TransportReport {
	filtered := filterTrips(trips, f)

	rep := models.TransportReport{
		TopPerformingTrucks: []models.TruckPerformance{},
		MonthlyData:         []models.MonthlyTrips{},
	}

	trucks := []models.TruckPerformance{}
	truckIdx := map[string]int{}
	months := []models.MonthlyTrips{}
	monthIdx := map[string]int{}

	for _, t := range filtered {
		rep.TotalTrips++
		if t.Status == models.TripCompleted {
			rep.CompletedTrips++
		}
		rep.TotalRevenue += t.Revenue
		rep.TotalExpenses += t.Expenses.Total()
		rep.TotalProfit += t.Profit

		rep.ExpenseBreakdown.Diesel += t.Expenses.Diesel
		rep.ExpenseBreakdown.Toll += t.Expenses.Toll
		rep.ExpenseBreakdown.Driver += t.Expenses.Driver
		rep.ExpenseBreakdown.Other += t.Expenses.Other

		i, ok := truckIdx[t.TruckRegistration]
		if !ok {
			i = len(trucks)
			truckIdx[t.TruckRegistration] = i
			trucks = append(trucks, models.TruckPerformance{TruckID: t.TruckRegistration})
		}
		trucks[i].Trips++
		trucks[i].Profit += t.Profit

		key := utils.MonthKey(t.StartDate)
		m, ok := monthIdx[key]
		if !ok {
			m = len(months)
			monthIdx[key] = m
			months = append(months, models.MonthlyTrips{Month: key})
		}
		months[m].Trips++
		months[m].Revenue += t.Revenue
		months[m].Profit += t.Profit
	}

	if rep.TotalTrips > 0 {
		rep.AverageProfitPerTrip = rep.TotalProfit / float64(rep.TotalTrips)
	}

	sort.SliceStable(trucks, func(i, j int) bool { return trucks[i].Profit > trucks[j].Profit })
	if len(trucks) > topPerformers {
		trucks = trucks[:topPerformers]
	}
	rep.TopPerformingTrucks = trucks

	sort.SliceStable(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	rep.MonthlyData = months
	return rep
}

func filterTrucks(trucks []models.TruckInventory, f domain.ReportFilter) []models.TruckInventory {
	if f.DateFrom == "" && f.DateTo == "" && f.Status == "" {
		return trucks
	}
	out := make([]models.TruckInventory, 0, len(trucks))
	for _, t := range trucks {
		if !utils.DateInRange(t.PurchaseDate, f.DateFrom, f.DateTo) {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BuildInventoryReport aggregates the trucks matching f. The truck id
// part of the filter does not apply to inventory.
func BuildInventoryReport(trucks []models.TruckInventory, f domain.ReportFilter) models.InventoryReport {
	filtered := filterTrucks(trucks, f)

	rep := models.InventoryReport{}

	modelsByProfit := []models.ModelPerformance{}
	modelIdx := map[string]int{}
	purchases := []models.MonthlyPurchases{}
	purchaseIdx := map[string]int{}
	sales := []models.MonthlySales{}
	saleIdx := map[string]int{}

	for _, t := range filtered {
		rep.TotalTrucks++
		switch t.Status {
		case models.TruckSold:
			rep.SoldTrucks++
		case models.TruckAvailable:
			rep.AvailableTrucks++
		}
		if t.NOCPending() {
			rep.PendingNOCs++
		}

		investment := t.Investment()
		rep.TotalInvestment += investment

		e := t.Expenses
		rep.ExpenseBreakdown.Transportation += e.Transportation
		rep.ExpenseBreakdown.BodyWork += e.BodyWork
		rep.ExpenseBreakdown.KamaniWork += e.KamaniWork
		rep.ExpenseBreakdown.Tyre += e.Tyre
		rep.ExpenseBreakdown.Paint += e.Paint
		rep.ExpenseBreakdown.Insurance += e.Insurance
		rep.ExpenseBreakdown.Other += e.Folded()

		pk := utils.MonthKey(t.PurchaseDate)
		p, ok := purchaseIdx[pk]
		if !ok {
			p = len(purchases)
			purchaseIdx[pk] = p
			purchases = append(purchases, models.MonthlyPurchases{Month: pk})
		}
		purchases[p].Purchases++
		purchases[p].Investment += investment

		if !t.IsSold() {
			continue
		}
		profit := 0.0
		if t.Profit != nil {
			profit = *t.Profit
		}
		rep.TotalSalesRevenue += t.SaleDetails.SaleAmount
		rep.TotalProfit += profit

		mi, ok := modelIdx[t.Model]
		if !ok {
			mi = len(modelsByProfit)
			modelIdx[t.Model] = mi
			modelsByProfit = append(modelsByProfit, models.ModelPerformance{Model: t.Model})
		}
		modelsByProfit[mi].Count++
		modelsByProfit[mi].Profit += profit

		sk := utils.MonthKey(t.SaleDetails.SaleDate)
		si, ok := saleIdx[sk]
		if !ok {
			si = len(sales)
			saleIdx[sk] = si
			sales = append(sales, models.MonthlySales{Month: sk})
		}
		sales[si].Sales++
		sales[si].Revenue += t.SaleDetails.SaleAmount
		sales[si].Profit += profit
	}

	if rep.SoldTrucks > 0 {
		rep.AverageProfitPerTruck = rep.TotalProfit / float64(rep.SoldTrucks)
	}

	sort.SliceStable(modelsByProfit, func(i, j int) bool { return modelsByProfit[i].Profit > modelsByProfit[j].Profit })
	if len(modelsByProfit) > topPerformers {
		modelsByProfit = modelsByProfit[:topPerformers]
	}
	rep.TopSellingModels = modelsByProfit

	sort.SliceStable(purchases, func(i, j int) bool { return purchases[i].Month < purchases[j].Month })
	rep.MonthlyPurchases = purchases
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Month < sales[j].Month })
	rep.MonthlySales = sales
	return rep
}

// BuildDashboardMetrics composes the unfiltered reports. Active trips are
// counted over the whole trip list and the monthly profit is the bucket
// of the calendar month containing now.
func BuildDashboardMetrics(trips []models.Trip, trucks []models.TruckInventory, now time.Time) models.DashboardMetrics {
	transport := BuildTransportReport(trips, domain.ReportFilter{})
	inventory := BuildInventoryReport(trucks, domain.ReportFilter{})

	active := 0
	for _, t := range trips {
		if t.Status.Active() {
			active++
		}
	}

	current := utils.CurrentMonthKey(now)
	monthly := 0.0
	for _, m := range transport.MonthlyData {
		if m.Month == current {
			monthly += m.Profit
		}
	}

	totalProfit := transport.TotalProfit + inventory.TotalProfit
	roi := 0.0
	if inventory.TotalInvestment > 0 {
		roi = totalProfit / inventory.TotalInvestment * 100
	}

	return models.DashboardMetrics{
		TransportMetrics: models.TransportMetrics{
			TotalTrips:    transport.TotalTrips,
			ActiveTrips:   active,
			MonthlyProfit: monthly,
			TotalRevenue:  transport.TotalRevenue,
		},
		InventoryMetrics: models.InventoryMetrics{
			TotalTrucks: inventory.TotalTrucks,
			SoldTrucks:  inventory.SoldTrucks,
			PendingNOCs: inventory.PendingNOCs,
			TotalProfit: inventory.TotalProfit,
		},
		OverallMetrics: models.OverallMetrics{
			TotalProfit:     totalProfit,
			TotalRevenue:    transport.TotalRevenue + inventory.TotalSalesRevenue,
			TotalInvestment: inventory.TotalInvestment,
			ROI:             roi,
		},
	}
}
