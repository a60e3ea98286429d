package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"transportpro/internal/domain"
	"transportpro/internal/repositories"
	"transportpro/internal/seed"
)

func newExportService() ExportService {
	return ExportService{
		Trips:  repositories.NewTripRepository(seed.Trips(), seed.Fleet()),
		Trucks: repositories.NewTruckRepository(seed.Trucks(), seed.TruckModels()),
		Now:    func() time.Time { return fixedNow },
	}
}

func TestTripsCSV(t *testing.T) {
	svc := newExportService()
	out, name, err := svc.TripsCSV()
	if err != nil {
		t.Fatalf("trips csv: %v", err)
	}
	if name != "transport_report.csv" {
		t.Fatalf("filename = %s", name)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if lines[0] != "Trip ID,Truck,Source,Destination,Start Date,Revenue,Profit,Status" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 rows, got %d lines", len(lines))
	}
	if lines[1] != "TRP001,MH-12-AB-1234,Mumbai,Delhi,2024-01-15,25000,10800,completed" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestTrucksCSVUnsoldProfitIsZero(t *testing.T) {
	svc := newExportService()
	out, name, err := svc.TrucksCSV()
	if err != nil {
		t.Fatalf("trucks csv: %v", err)
	}
	if name != "inventory_report.csv" {
		t.Fatalf("filename = %s", name)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if lines[0] != "Truck ID,Registration,Model,Purchase Date,Purchase Amount,Status,Profit" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "TRK001,MH-12-AB-1234,Tata 407,2024-01-10,420000,available,0" {
		t.Fatalf("unexpected unsold row %q", lines[1])
	}
	if lines[2] != "TRK002,GJ-05-CD-5678,Ashok Leyland Dost,2024-01-05,350000,sold,29000" {
		t.Fatalf("unexpected sold row %q", lines[2])
	}
}

func TestCSVIgnoresFilterAndQuotesCommas(t *testing.T) {
	svc := newExportService()
	ts := TransportService{Repo: svc.Trips}
	in := validTripInput()
	in.Destination = "Nashik, MH"
	if _, err := ts.AddTrip(in); err != nil {
		t.Fatalf("add trip: %v", err)
	}
	out, _, err := svc.TripsCSV()
	if err != nil {
		t.Fatalf("trips csv: %v", err)
	}
	if !strings.Contains(string(out), `"Nashik, MH"`) {
		t.Fatalf("field with comma should be quoted:\n%s", out)
	}
}

func TestReportPDFs(t *testing.T) {
	svc := newExportService()
	pdf, name, err := svc.TransportPDF(domain.ReportFilter{DateFrom: "2024-01-01", TruckID: "MH-12-AB-1234"})
	if err != nil {
		t.Fatalf("transport pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) || name != "transport_report_20240120.pdf" {
		t.Fatalf("unexpected pdf output name=%s len=%d", name, len(pdf))
	}

	pdf, name, err = svc.InventoryPDF(domain.ReportFilter{})
	if err != nil {
		t.Fatalf("inventory pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) || name != "inventory_report_20240120.pdf" {
		t.Fatalf("unexpected pdf output name=%s len=%d", name, len(pdf))
	}
}

func TestDescribeFilter(t *testing.T) {
	if got := describeFilter(domain.ReportFilter{}); got != "all records" {
		t.Fatalf("empty filter = %q", got)
	}
	got := describeFilter(domain.ReportFilter{DateTo: "2024-02-01", Status: "sold"})
	if got != "start to 2024-02-01, status sold" {
		t.Fatalf("filter description = %q", got)
	}
}
