package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "transportpro/internal/config"
	h "transportpro/internal/http/handlers"
	"transportpro/internal/repositories"
	"transportpro/internal/seed"
	"transportpro/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data, err := seed.Static(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	users := repositories.NewUserRepository(data.Users)
	a := &h.API{
		Trips:  repositories.NewTripRepository(data.Trips, data.Fleet),
		Trucks: repositories.NewTruckRepository(data.Trucks, data.TruckModels),
		Users:  users,
		Auth: services.AuthService{
			Users:    users,
			Secret:   []byte("router-test-secret"),
			TTL:      time.Hour,
			Denylist: services.NewDenylist(),
		},
		HashCost: bcrypt.MinCost,
	}
	return NewRouter(intconfig.Env{}, a)
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login %s: bad response %s", username, w.Body.String())
	}
	return resp.Token
}

func TestHealthAndRequestID(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
	if !strings.Contains(w.Body.String(), `"trips":5`) {
		t.Fatalf("unexpected health body %s", w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/api/trips", "/api/trucks", "/api/reports/dashboard", "/api/users", "/api/auth/me"} {
		if w := do(r, http.MethodGet, path, "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token: status %d", path, w.Code)
		}
	}
	if w := do(r, http.MethodGet, "/api/trips", "garbage", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d", w.Code)
	}
}

func TestLoginFailureIsUnauthorized(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"code":"unauthorized"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestMeAndLogout(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "staff", "staff123")

	w := do(r, http.MethodGet, "/api/auth/me", token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"username":"staff"`) {
		t.Fatalf("me: status %d body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("password hash leaked: %s", w.Body.String())
	}

	if w := do(r, http.MethodPost, "/api/auth/logout", token, ""); w.Code != http.StatusOK {
		t.Fatalf("logout: status %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/auth/me", token, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: status %d", w.Code)
	}
}

func TestTripLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "staff", "staff123")

	body := `{"truckRegistration":"KA-03-EF-9012","source":"Mysore","destination":"Goa","startDate":"2024-02-01",
		"distance":480,"expenses":{"diesel":4000,"toll":500,"driver":1500,"other":0},"revenue":9000}`
	w := do(r, http.MethodPost, "/api/trips", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     string  `json:"id"`
		Profit float64 `json:"profit"`
		Status string  `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != "TRP006" || created.Profit != 3000 || created.Status != "planned" {
		t.Fatalf("unexpected trip %+v", created)
	}

	w = do(r, http.MethodPut, "/api/trips/TRP006", token, `{"status":"in-transit"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"in-transit"`) {
		t.Fatalf("update: status %d body %s", w.Code, w.Body.String())
	}

	if w := do(r, http.MethodDelete, "/api/trips/TRP006", token, ""); w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/trips/TRP006", token, "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"code":"not_found"`) {
		t.Fatalf("get deleted: status %d body %s", w.Code, w.Body.String())
	}
}

func TestTripValidationAndFleet(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "staff", "staff123")

	w := do(r, http.MethodPost, "/api/trips", token, `{"source":"Pune"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid trip: status %d", w.Code)
	}
	body := `{"truckRegistration":"KA-03-EF-9012","source":"Mysore","destination":"Goa","startDate":"2024-02-01","revenue":-5}`
	w = do(r, http.MethodPost, "/api/trips", token, body)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "gte") {
		t.Fatalf("negative revenue: status %d body %s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodPut, "/api/trips/TRP001", token, `{"status":"lost"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "oneof") {
		t.Fatalf("unknown status: status %d body %s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodPost, "/api/trips", token, `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed json: status %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/trips/fleet", token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "PB-65-ST-2109") {
		t.Fatalf("fleet: status %d body %s", w.Code, w.Body.String())
	}
}

func TestSellingSoldTruckConflicts(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "staff", "staff123")

	sale := `{"buyerDetails":{"name":"Anil"},"saleAmount":500000,"saleDate":"2024-02-10","commissionAmount":0}`
	w := do(r, http.MethodPost, "/api/trucks/TRK002/sell", token, sale)
	if w.Code != http.StatusConflict {
		t.Fatalf("sell sold truck: status %d body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/trucks/TRK001/sell", token, sale)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"sold"`) {
		t.Fatalf("sell: status %d body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/trucks/models", token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Tata 407") {
		t.Fatalf("models: status %d body %s", w.Code, w.Body.String())
	}
}

func TestReportsAndExports(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "staff", "staff123")

	w := do(r, http.MethodGet, "/api/reports/transport?truckId=MH-12-AB-1234", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("transport report: status %d", w.Code)
	}
	var rep struct {
		TotalTrips int `json:"totalTrips"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil || rep.TotalTrips != 2 {
		t.Fatalf("transport report body %s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/reports/transport?dateFrom=15-01-2024", token, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date filter: status %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/reports/dashboard", token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"roi"`) {
		t.Fatalf("dashboard: status %d body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/reports/inventory/export.csv", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("csv export: status %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("csv content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "inventory_report.csv") {
		t.Fatalf("csv disposition %q", w.Header().Get("Content-Disposition"))
	}

	w = do(r, http.MethodGet, "/api/reports/transport/export.pdf?status=completed", token, "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("pdf export: status %d", w.Code)
	}
}

func TestUserRoutesAreAdminOnly(t *testing.T) {
	r := newTestRouter(t)
	staff := login(t, r, "staff", "staff123")
	if w := do(r, http.MethodGet, "/api/users", staff, ""); w.Code != http.StatusForbidden {
		t.Fatalf("staff listing users: status %d", w.Code)
	}

	admin := login(t, r, "admin", "admin123")
	w := do(r, http.MethodGet, "/api/users?role=admin", admin, "")
	if w.Code != http.StatusOK || strings.Contains(w.Body.String(), `"role":"staff"`) {
		t.Fatalf("admins by role: status %d body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/users?role=owner", admin, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown role: status %d", w.Code)
	}

	w = do(r, http.MethodPost, "/api/users", admin, `{"username":"staff","email":"x@example.com","fullName":"Dup","password":"secret1","permissions":["trips.view"]}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate username: status %d body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/users", admin, `{"username":"clerk","email":"not-an-email","fullName":"Clerk","password":"secret1","permissions":["trips.view"]}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Email") {
		t.Fatalf("invalid email: status %d body %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/users/2/reset-password", admin, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "temporaryPassword") {
		t.Fatalf("reset password: status %d body %s", w.Code, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	do(r, http.MethodGet, "/api/health", "", "")
	w := do(r, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics: status %d", w.Code)
	}
}
