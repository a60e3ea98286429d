package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	intconfig "transportpro/internal/config"
	intdb "transportpro/internal/db"
	"transportpro/internal/domain/models"
	"transportpro/internal/seed"
	"transportpro/internal/utils"
)

// SeedRepository reads start-up data from a MySQL database. It is
// read-only: the in-memory stores never write back.
type SeedRepository struct {
	DB *sql.DB
}

func (r SeedRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.SeedDB
}

// Load replaces each collection of base with the rows of its table when
// that table exists. Missing tables keep the base collection.
func (r SeedRepository) Load(ctx context.Context, base seed.Data) (seed.Data, error) {
	db := r.db()
	if db == nil {
		return base, nil
	}
	out := base

	if intdb.HasTable(ctx, db, "trips") {
		trips, err := r.loadTrips(ctx, db)
		if err != nil {
			return base, fmt.Errorf("load trips: %w", err)
		}
		out.Trips = trips
		out.Fleet = mergeFleet(base.Fleet, trips)
	}
	if intdb.HasTable(ctx, db, "trucks") {
		trucks, err := r.loadTrucks(ctx, db)
		if err != nil {
			return base, fmt.Errorf("load trucks: %w", err)
		}
		out.Trucks = trucks
	}
	if intdb.HasTable(ctx, db, "users") {
		users, err := r.loadUsers(ctx, db)
		if err != nil {
			return base, fmt.Errorf("load users: %w", err)
		}
		if len(users) > 0 {
			if !hasAdmin(users) {
				return base, fmt.Errorf("load users: no active admin among %d users", len(users))
			}
			out.Users = users
		}
	}
	return out, nil
}

func (r SeedRepository) loadTrips(ctx context.Context, db *sql.DB) ([]models.Trip, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, truck_registration, source, destination,
		       DATE_FORMAT(start_date, '%Y-%m-%d'),
		       COALESCE(DATE_FORMAT(return_date, '%Y-%m-%d'), ''),
		       COALESCE(distance,0),
		       COALESCE(diesel,0), COALESCE(toll,0), COALESCE(driver,0), COALESCE(other,0),
		       COALESCE(revenue,0), status, created_at, updated_at
		FROM trips
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		var status string
		if err := rows.Scan(
			&t.ID, &t.TruckRegistration, &t.Source, &t.Destination,
			&t.StartDate, &t.ReturnDate, &t.Distance,
			&t.Expenses.Diesel, &t.Expenses.Toll, &t.Expenses.Driver, &t.Expenses.Other,
			&t.Revenue, &status, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Status = models.TripStatus(strings.TrimSpace(status))
		t.Profit = models.TripProfit(t.Expenses, t.Revenue)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r SeedRepository) loadTrucks(ctx context.Context, db *sql.DB) ([]models.TruckInventory, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, registration_number, model, COALESCE(initial_model_year,0),
		       DATE_FORMAT(purchase_date, '%Y-%m-%d'),
		       COALESCE(full_purchase_amount,0), status, COALESCE(noc_applied,0),
		       COALESCE(DATE_FORMAT(noc_applied_date, '%Y-%m-%d'), ''),
		       COALESCE(DATE_FORMAT(noc_received_date, '%Y-%m-%d'), ''),
		       COALESCE(new_registration_number,''),
		       COALESCE(seller_json,''), COALESCE(insurance_json,''),
		       COALESCE(payments_json,''), COALESCE(expenses_json,''),
		       COALESCE(sale_json,''),
		       created_at, updated_at
		FROM trucks
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TruckInventory{}
	for rows.Next() {
		var (
			t                                           models.TruckInventory
			status                                      string
			seller, insurance, payments, expenses, sale string
		)
		if err := rows.Scan(
			&t.ID, &t.RegistrationNumber, &t.Model, &t.InitialModelYear,
			&t.PurchaseDate, &t.FullPurchaseAmount, &status, &t.NOCApplied,
			&t.NOCAppliedDate, &t.NOCReceivedDate, &t.NewRegistrationNumber,
			&seller, &insurance, &payments, &expenses, &sale,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Status = models.TruckStatus(strings.TrimSpace(status))

		if err := decodeJSONColumn(seller, &t.SellerDetails); err != nil {
			return nil, fmt.Errorf("truck %s seller_json: %w", t.ID, err)
		}
		if err := decodeJSONColumn(insurance, &t.InsuranceDetails); err != nil {
			return nil, fmt.Errorf("truck %s insurance_json: %w", t.ID, err)
		}
		if err := decodeJSONColumn(payments, &t.PaymentModes); err != nil {
			return nil, fmt.Errorf("truck %s payments_json: %w", t.ID, err)
		}
		if err := decodeJSONColumn(expenses, &t.Expenses); err != nil {
			return nil, fmt.Errorf("truck %s expenses_json: %w", t.ID, err)
		}
		if strings.TrimSpace(sale) != "" {
			var s models.SaleDetails
			if err := decodeJSONColumn(sale, &s); err != nil {
				return nil, fmt.Errorf("truck %s sale_json: %w", t.ID, err)
			}
			t.SaleDetails = &s
		}
		switch {
		case t.SaleDetails != nil && t.Status != models.TruckSold:
			utils.LogEventf("", "seed", "truck_status_fixed", "id=%s status=%s has sale_json, stored as sold", t.ID, t.Status)
			t.Status = models.TruckSold
		case t.SaleDetails == nil && t.Status == models.TruckSold:
			return nil, fmt.Errorf("truck %s is sold but has no sale_json", t.ID)
		}
		if t.PaymentModes == nil {
			t.PaymentModes = []models.PaymentEntry{}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r SeedRepository) loadUsers(ctx context.Context, db *sql.DB) ([]models.User, error) {
	// department and phone were added to the users table later; older
	// schemas select a blank literal instead.
	department := intdb.ColumnOr(ctx, db, "users", "department", "''")
	phone := intdb.ColumnOr(ctx, db, "users", "phone", "''")

	rows, err := db.QueryContext(ctx, `
		SELECT id, username, email, full_name, role, status,
		       `+department+`, `+phone+`,
		       COALESCE(permissions,''), COALESCE(password_hash,''),
		       created_at, last_login
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var (
			u                  models.User
			role, status, perm string
			lastLogin          sql.NullTime
		)
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.FullName, &role, &status,
			&u.Department, &u.Phone, &perm, &u.PasswordHash,
			&u.CreatedAt, &lastLogin,
		); err != nil {
			return nil, err
		}
		u.Role = models.Role(strings.TrimSpace(role))
		u.Status = models.UserStatus(strings.TrimSpace(status))
		u.Permissions = splitPermissions(perm)
		if lastLogin.Valid {
			ts := lastLogin.Time
			u.LastLogin = &ts
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func hasAdmin(users []models.User) bool {
	for _, u := range users {
		if u.Role == models.RoleAdmin && u.Status == models.UserActive {
			return true
		}
	}
	return false
}

func decodeJSONColumn(raw string, dst any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func splitPermissions(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// mergeFleet keeps the configured registrations and appends any that
// only appear in the loaded trips.
func mergeFleet(base []string, trips []models.Trip) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, reg := range base {
		if !seen[reg] {
			seen[reg] = true
			out = append(out, reg)
		}
	}
	for _, t := range trips {
		if t.TruckRegistration != "" && !seen[t.TruckRegistration] {
			seen[t.TruckRegistration] = true
			out = append(out, t.TruckRegistration)
		}
	}
	return out
}
