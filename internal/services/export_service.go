package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"transportpro/internal/domain"
	"transportpro/internal/metrics"
	"transportpro/internal/repositories"
	"transportpro/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const (
	TransportCSVName = "transport_report.csv"
	InventoryCSVName = "inventory_report.csv"
)

var (
	tripCSVHeader  = []string{"Trip ID", "Truck", "Source", "Destination", "Start Date", "Revenue", "Profit", "Status"}
	truckCSVHeader = []string{"Truck ID", "Registration", "Model", "Purchase Date", "Purchase Amount", "Status", "Profit"}
)

// ExportService renders downloadable reports. CSV exports always cover
// the full store lists; PDF summaries follow the report filter.
type ExportService struct {
	Trips     *repositories.TripRepository
	Trucks    *repositories.TruckRepository
	Now       func() time.Time
	RequestID string
}

func (s ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s ExportService) TripsCSV() ([]byte, string, error) {
	trips := s.Trips.List()
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []string{
			t.ID, t.TruckRegistration, t.Source, t.Destination, t.StartDate,
			formatNumber(t.Revenue), formatNumber(t.Profit), string(t.Status),
		})
	}
	out, err := writeCSV(tripCSVHeader, rows)
	if err != nil {
		return nil, "", err
	}
	metrics.ExportsTotal.WithLabelValues("transport", "csv").Inc()
	utils.LogEventf(s.RequestID, "export", "transport_csv", "rows=%d", len(rows))
	return out, TransportCSVName, nil
}

// TrucksCSV writes profit 0 for trucks that are not sold.
func (s ExportService) TrucksCSV() ([]byte, string, error) {
	trucks := s.Trucks.List()
	rows := make([][]string, 0, len(trucks))
	for _, t := range trucks {
		profit := 0.0
		if t.Profit != nil {
			profit = *t.Profit
		}
		rows = append(rows, []string{
			t.ID, t.RegistrationNumber, t.Model, t.PurchaseDate,
			formatNumber(t.FullPurchaseAmount), string(t.Status), formatNumber(profit),
		})
	}
	out, err := writeCSV(truckCSVHeader, rows)
	if err != nil {
		return nil, "", err
	}
	metrics.ExportsTotal.WithLabelValues("inventory", "csv").Inc()
	utils.LogEventf(s.RequestID, "export", "inventory_csv", "rows=%d", len(rows))
	return out, InventoryCSVName, nil
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatNumber prints the shortest decimal form, so 25000 stays "25000"
// and 11.9 stays "11.9".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s ExportService) TransportPDF(f domain.ReportFilter) ([]byte, string, error) {
	now := s.now()
	rep := BuildTransportReport(s.Trips.List(), f)

	doc := newReportPDF("Transport Report", f, now)
	doc.section("Summary")
	doc.kv("Total trips", strconv.Itoa(rep.TotalTrips))
	doc.kv("Completed trips", strconv.Itoa(rep.CompletedTrips))
	doc.kv("Total revenue", utils.FormatRupeeASCII(rep.TotalRevenue))
	doc.kv("Total expenses", utils.FormatRupeeASCII(rep.TotalExpenses))
	doc.kv("Total profit", utils.FormatRupeeASCII(rep.TotalProfit))
	doc.kv("Average profit per trip", utils.FormatRupeeASCII(rep.AverageProfitPerTrip))

	doc.section("Top performing trucks")
	top := make([][]string, 0, len(rep.TopPerformingTrucks))
	for _, t := range rep.TopPerformingTrucks {
		top = append(top, []string{t.TruckID, strconv.Itoa(t.Trips), utils.FormatRupeeASCII(t.Profit)})
	}
	doc.table([]string{"Truck", "Trips", "Profit"}, []float64{70, 40, 70}, top)

	doc.section("Monthly")
	monthly := make([][]string, 0, len(rep.MonthlyData))
	for _, m := range rep.MonthlyData {
		monthly = append(monthly, []string{m.Month, strconv.Itoa(m.Trips), utils.FormatRupeeASCII(m.Revenue), utils.FormatRupeeASCII(m.Profit)})
	}
	doc.table([]string{"Month", "Trips", "Revenue", "Profit"}, []float64{40, 30, 55, 55}, monthly)

	doc.section("Expense breakdown")
	e := rep.ExpenseBreakdown
	doc.kv("Diesel", utils.FormatRupeeASCII(e.Diesel))
	doc.kv("Toll", utils.FormatRupeeASCII(e.Toll))
	doc.kv("Driver", utils.FormatRupeeASCII(e.Driver))
	doc.kv("Other", utils.FormatRupeeASCII(e.Other))

	out, err := doc.bytes()
	if err != nil {
		return nil, "", err
	}
	metrics.ExportsTotal.WithLabelValues("transport", "pdf").Inc()
	utils.LogEventf(s.RequestID, "export", "transport_pdf", "trips=%d", rep.TotalTrips)
	return out, fmt.Sprintf("transport_report_%s.pdf", now.Format("20060102")), nil
}

func (s ExportService) InventoryPDF(f domain.ReportFilter) ([]byte, string, error) {
	now := s.now()
	rep := BuildInventoryReport(s.Trucks.List(), f)

	doc := newReportPDF("Inventory Report", f, now)
	doc.section("Summary")
	doc.kv("Total trucks", strconv.Itoa(rep.TotalTrucks))
	doc.kv("Sold trucks", strconv.Itoa(rep.SoldTrucks))
	doc.kv("Available trucks", strconv.Itoa(rep.AvailableTrucks))
	doc.kv("Pending NOCs", strconv.Itoa(rep.PendingNOCs))
	doc.kv("Total investment", utils.FormatRupeeASCII(rep.TotalInvestment))
	doc.kv("Sales revenue", utils.FormatRupeeASCII(rep.TotalSalesRevenue))
	doc.kv("Total profit", utils.FormatRupeeASCII(rep.TotalProfit))
	doc.kv("Average profit per truck", utils.FormatRupeeASCII(rep.AverageProfitPerTruck))

	doc.section("Top selling models")
	top := make([][]string, 0, len(rep.TopSellingModels))
	for _, m := range rep.TopSellingModels {
		top = append(top, []string{m.Model, strconv.Itoa(m.Count), utils.FormatRupeeASCII(m.Profit)})
	}
	doc.table([]string{"Model", "Sold", "Profit"}, []float64{80, 30, 70}, top)

	doc.section("Monthly purchases")
	purchases := make([][]string, 0, len(rep.MonthlyPurchases))
	for _, m := range rep.MonthlyPurchases {
		purchases = append(purchases, []string{m.Month, strconv.Itoa(m.Purchases), utils.FormatRupeeASCII(m.Investment)})
	}
	doc.table([]string{"Month", "Purchases", "Investment"}, []float64{50, 50, 80}, purchases)

	doc.section("Monthly sales")
	sales := make([][]string, 0, len(rep.MonthlySales))
	for _, m := range rep.MonthlySales {
		sales = append(sales, []string{m.Month, strconv.Itoa(m.Sales), utils.FormatRupeeASCII(m.Revenue), utils.FormatRupeeASCII(m.Profit)})
	}
	doc.table([]string{"Month", "Sales", "Revenue", "Profit"}, []float64{40, 30, 55, 55}, sales)

	doc.section("Expense breakdown")
	e := rep.ExpenseBreakdown
	doc.kv("Transportation", utils.FormatRupeeASCII(e.Transportation))
	doc.kv("Body work", utils.FormatRupeeASCII(e.BodyWork))
	doc.kv("Kamani work", utils.FormatRupeeASCII(e.KamaniWork))
	doc.kv("Tyre", utils.FormatRupeeASCII(e.Tyre))
	doc.kv("Paint", utils.FormatRupeeASCII(e.Paint))
	doc.kv("Insurance", utils.FormatRupeeASCII(e.Insurance))
	doc.kv("Other", utils.FormatRupeeASCII(e.Other))

	out, err := doc.bytes()
	if err != nil {
		return nil, "", err
	}
	metrics.ExportsTotal.WithLabelValues("inventory", "pdf").Inc()
	utils.LogEventf(s.RequestID, "export", "inventory_pdf", "trucks=%d", rep.TotalTrucks)
	return out, fmt.Sprintf("inventory_report_%s.pdf", now.Format("20060102")), nil
}

type reportPDF struct {
	pdf *gofpdf.Fpdf
}

func newReportPDF(title string, f domain.ReportFilter, now time.Time) reportPDF {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, strings.ToUpper(title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated : "+now.UTC().Format("2006-01-02 15:04")+" UTC")
	pdf.Ln(6)
	pdf.Cell(0, 6, "Filter    : "+describeFilter(f))
	pdf.Ln(8)
	return reportPDF{pdf: pdf}
}

func (r reportPDF) section(name string) {
	r.pdf.Ln(3)
	r.pdf.SetFont("Helvetica", "B", 12)
	r.pdf.Cell(0, 8, name)
	r.pdf.Ln(8)
	r.pdf.SetFont("Helvetica", "", 11)
}

func (r reportPDF) kv(label, value string) {
	r.pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
	r.pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (r reportPDF) table(header []string, widths []float64, rows [][]string) {
	if len(rows) == 0 {
		r.pdf.SetFont("Helvetica", "I", 10)
		r.pdf.Cell(0, 6, "No data")
		r.pdf.Ln(6)
		r.pdf.SetFont("Helvetica", "", 11)
		return
	}
	r.pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			align := "L"
			if i > 0 {
				align = "R"
			}
			r.pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

func (r reportPDF) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func describeFilter(f domain.ReportFilter) string {
	if f.IsZero() {
		return "all records"
	}
	parts := []string{}
	if f.DateFrom != "" || f.DateTo != "" {
		parts = append(parts, fmt.Sprintf("%s to %s", safe(f.DateFrom, "start"), safe(f.DateTo, "today")))
	}
	if f.TruckID != "" {
		parts = append(parts, "truck "+f.TruckID)
	}
	if f.Status != "" {
		parts = append(parts, "status "+f.Status)
	}
	return strings.Join(parts, ", ")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
