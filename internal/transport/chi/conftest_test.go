package chi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/config"
	loadrepo "github.com/boxaloo/boxaloo/internal/repository/load"
	truckrepo "github.com/boxaloo/boxaloo/internal/repository/truck"
	"github.com/boxaloo/boxaloo/internal/transport/api"
	healthuc "github.com/boxaloo/boxaloo/internal/usecase/health"
	loaduc "github.com/boxaloo/boxaloo/internal/usecase/load"
	locationuc "github.com/boxaloo/boxaloo/internal/usecase/location"
	truckuc "github.com/boxaloo/boxaloo/internal/usecase/truck"
)

var testSession = config.SessionConfig{CookieName: "boxaloo_session", MaxAgeSec: 3600}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	now := func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	idx, err := locationuc.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}

	loads := loaduc.New(loadrepo.New().WithClock(now))
	trucks := truckuc.New(truckrepo.New().WithClock(now))
	cities := locationuc.New(idx)
	health := healthuc.New(map[string]healthuc.Checker{
		"cities": healthuc.CheckerFunc(func(context.Context) error {
			if cities.Len() == 0 {
				return fmt.Errorf("city index is empty")
			}
			return nil
		}),
	})

	r := chi.NewRouter()
	r.Use(SessionMiddleware(testSession))
	NewServer(loads, trucks, cities, health, testSession, zap.NewNop()).Routes(r)

	return &testAPI{t: t, handler: r}
}

// login issues a session cookie used by subsequent requests.
func (a *testAPI) login() {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/session", "")
	if rr.Code != http.StatusCreated {
		a.t.Fatalf("create session: status %d", rr.Code)
	}
	for _, c := range rr.Result().Cookies() {
		if c.Name == testSession.CookieName {
			a.cookie = c
			return
		}
	}
	a.t.Fatal("create session: no cookie set")
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return v
}

func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, code api.ErrorResponseCode) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, status, rr.Body.String())
	}
	resp := decode[api.ErrorResponse](t, rr)
	if resp.Code != code {
		t.Errorf("code = %q, want %q", resp.Code, code)
	}
}

const createLoadBody = `{
	"brokerId": "BRK-100",
	"brokerName": "Dana Whitfield",
	"brokerCompany": "Lakeside Freight",
	"pickupLocation": "Chicago, IL",
	"deliveryLocation": "Dallas, TX",
	"pickupDate": "2026-03-10",
	"deliveryDate": "2026-03-12",
	"weight": 42000,
	"rate": 2850,
	"distance": 950,
	"equipmentType": "Dry Van"
}`
