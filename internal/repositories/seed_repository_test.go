package repositories

import (
	"context"
	"testing"
	"time"

	"transportpro/internal/domain/models"
	"transportpro/internal/seed"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSeedRepositoryLoadKeepsBaseWhenTablesMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"trips", "trucks", "users"} {
		mock.ExpectQuery("information_schema\\.tables").WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	}

	base := seed.Data{
		Trips: []models.Trip{{ID: "TRP001"}},
		Fleet: []string{"MH-12-AB-1234"},
		Users: []models.User{{ID: "1", Username: "admin", Role: models.RoleAdmin}},
	}
	got, err := SeedRepository{DB: db}.Load(context.Background(), base)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Trips) != 1 || got.Trips[0].ID != "TRP001" {
		t.Fatalf("base trips should be kept, got %+v", got.Trips)
	}
	if len(got.Users) != 1 {
		t.Fatalf("base users should be kept, got %d", len(got.Users))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedRepositoryLoadReadsTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trips"))
	mock.ExpectQuery("FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "truck_registration", "source", "destination", "start_date", "return_date",
			"distance", "diesel", "toll", "driver", "other", "revenue", "status", "created_at", "updated_at",
		}).AddRow(
			"TRP010", "GJ-01-XY-0001", "Surat", "Vapi", "2024-02-01", "",
			120.0, 3000.0, 400.0, 1200.0, 100.0, 9000.0, "completed", created, created,
		))

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trucks").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trucks"))
	mock.ExpectQuery("FROM trucks").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "registration_number", "model", "initial_model_year", "purchase_date",
			"full_purchase_amount", "status", "noc_applied", "noc_applied_date", "noc_received_date",
			"new_registration_number", "seller_json", "insurance_json", "payments_json", "expenses_json",
			"sale_json", "created_at", "updated_at",
		}).AddRow(
			"TRK007", "MH-04-CD-7777", "Tata 407", 2019, "2024-03-01",
			400000.0, "sold", int64(1), "2024-03-05", "", "",
			`{"name":"Ramesh","phoneNumber":"9876543210"}`, `{"company":"ICICI"}`,
			`[{"id":"1","mode":"Cash","amount":400000,"date":"2024-03-01","percentage":100}]`,
			`{"driver":1000,"tyre":5000}`,
			`{"buyerDetails":{"name":"Suresh"},"saleAmount":450000,"saleDate":"2024-04-01","commissionAmount":5000}`,
			created, created,
		))

	mock.ExpectQuery("information_schema\\.tables").WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("users"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("users", "department").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("department"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("users", "phone").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "full_name", "role", "status", "department", "phone",
			"permissions", "password_hash", "created_at", "last_login",
		}).AddRow(
			"1", "owner", "owner@example.com", "Owner", "admin", "active", "Management", "",
			"all", "", created, nil,
		).AddRow(
			"2", "clerk", "clerk@example.com", "Clerk", "staff", "active", "Operations", "",
			"trips.view, trips.create", "", created, created,
		))

	got, err := SeedRepository{DB: db}.Load(context.Background(), seed.Data{Fleet: []string{"MH-12-AB-1234"}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got.Trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(got.Trips))
	}
	if got.Trips[0].Profit != 4300 {
		t.Fatalf("trip profit should be derived, got %v", got.Trips[0].Profit)
	}
	if len(got.Fleet) != 2 || got.Fleet[1] != "GJ-01-XY-0001" {
		t.Fatalf("fleet should gain trip registration, got %v", got.Fleet)
	}

	if len(got.Trucks) != 1 {
		t.Fatalf("expected 1 truck, got %d", len(got.Trucks))
	}
	tr := got.Trucks[0]
	if !tr.NOCApplied || tr.SellerDetails.Name != "Ramesh" || tr.Expenses.Tyre != 5000 {
		t.Fatalf("truck json columns not decoded: %+v", tr)
	}
	if tr.SaleDetails == nil || tr.SaleDetails.SaleAmount != 450000 {
		t.Fatalf("sale details not decoded: %+v", tr.SaleDetails)
	}
	if len(tr.PaymentModes) != 1 || tr.PaymentModes[0].Mode != models.PaymentCash {
		t.Fatalf("payments not decoded: %+v", tr.PaymentModes)
	}

	if len(got.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got.Users))
	}
	if got.Users[0].LastLogin != nil {
		t.Fatalf("null last_login should stay nil")
	}
	if p := got.Users[1].Permissions; len(p) != 2 || p[1] != "trips.create" {
		t.Fatalf("permissions not split: %v", p)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

var truckColumns = []string{
	"id", "registration_number", "model", "initial_model_year", "purchase_date",
	"full_purchase_amount", "status", "noc_applied", "noc_applied_date", "noc_received_date",
	"new_registration_number", "seller_json", "insurance_json", "payments_json", "expenses_json",
	"sale_json", "created_at", "updated_at",
}

func expectTable(mock sqlmock.Sqlmock, table string, exists bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if exists {
		rows.AddRow(table)
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs(table).WillReturnRows(rows)
}

func TestSeedRepositoryMarksTruckWithSaleAsSold(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	expectTable(mock, "trips", false)
	expectTable(mock, "trucks", true)
	mock.ExpectQuery("FROM trucks").
		WillReturnRows(sqlmock.NewRows(truckColumns).AddRow(
			"TRK008", "KA-01-AA-0001", "Eicher Pro 1049", 2020, "2024-03-01",
			300000.0, "available", int64(0), "", "", "",
			"", "", "", "",
			`{"buyerDetails":{"name":"Anil"},"saleAmount":350000,"saleDate":"2024-04-01"}`,
			created, created,
		))
	expectTable(mock, "users", false)

	got, err := SeedRepository{DB: db}.Load(context.Background(), seed.Data{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Trucks) != 1 || got.Trucks[0].Status != models.TruckSold {
		t.Fatalf("truck with sale details should load as sold, got %+v", got.Trucks)
	}
	if !got.Trucks[0].IsSold() {
		t.Fatalf("truck should count in sales figures")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedRepositoryRejectsSoldTruckWithoutSale(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	expectTable(mock, "trips", false)
	expectTable(mock, "trucks", true)
	mock.ExpectQuery("FROM trucks").
		WillReturnRows(sqlmock.NewRows(truckColumns).AddRow(
			"TRK009", "KA-01-AA-0002", "Tata 407", 2018, "2024-03-01",
			300000.0, "sold", int64(0), "", "", "",
			"", "", "", "", "",
			created, created,
		))

	base := seed.Data{Trucks: []models.TruckInventory{{ID: "TRK001"}}}
	got, err := SeedRepository{DB: db}.Load(context.Background(), base)
	if err == nil {
		t.Fatalf("expected an error for a sold truck without sale details")
	}
	if len(got.Trucks) != 1 || got.Trucks[0].ID != "TRK001" {
		t.Fatalf("base data should be returned on error, got %+v", got.Trucks)
	}
}

func TestSeedRepositoryRejectsUsersWithoutAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	expectTable(mock, "trips", false)
	expectTable(mock, "trucks", false)
	expectTable(mock, "users", true)
	mock.ExpectQuery("information_schema\\.columns").WithArgs("users", "department").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("users", "phone").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "full_name", "role", "status", "department", "phone",
			"permissions", "password_hash", "created_at", "last_login",
		}).AddRow(
			"1", "clerk", "clerk@example.com", "Clerk", "staff", "active", "", "",
			"trips.view", "", created, nil,
		))

	base := seed.Data{Users: []models.User{{ID: "1", Username: "admin", Role: models.RoleAdmin, Status: models.UserActive}}}
	got, err := SeedRepository{DB: db}.Load(context.Background(), base)
	if err == nil {
		t.Fatalf("expected an error for a users table without admin")
	}
	if len(got.Users) != 1 || got.Users[0].Username != "admin" {
		t.Fatalf("base users should be returned on error, got %+v", got.Users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
