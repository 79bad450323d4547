package chi

import (
	"net/http"
	"testing"

	"github.com/boxaloo/boxaloo/internal/transport/api"
)

const createTruckBody = `{
	"carrierId": "CAR-402",
	"carrierName": "Great Lakes Reefer",
	"city": "Chicago",
	"state": "il",
	"equipmentType": "Reefer",
	"availableDate": "2026-03-09",
	"capacity": 43000
}`

func TestTruckCRUD(t *testing.T) {
	a := newTestAPI(t)
	a.login()

	rr := a.do(http.MethodPost, "/api/trucks", createTruckBody)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: status %d (body %s)", rr.Code, rr.Body.String())
	}
	created := decode[api.Truck](t, rr)
	if created.Id != "TRUCK-001" || created.Location != "Chicago, IL" || created.Status != "available" {
		t.Errorf("created = %+v", created)
	}

	rr = a.do(http.MethodPatch, "/api/trucks/"+created.Id, `{"status":"booked"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("patch: status %d (body %s)", rr.Code, rr.Body.String())
	}
	if got := decode[api.Truck](t, rr); got.Status != "booked" || got.Capacity != 43000 {
		t.Errorf("patched = %+v", got)
	}

	rr = a.do(http.MethodGet, "/api/trucks/"+created.Id, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get: status %d", rr.Code)
	}

	if rr = a.do(http.MethodDelete, "/api/trucks/"+created.Id, ""); rr.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rr.Code)
	}
	rr = a.do(http.MethodGet, "/api/trucks/"+created.Id, "")
	expectError(t, rr, http.StatusNotFound, api.ErrorResponseCodeTruckNotFound)
}

func TestListTrucks_Filters(t *testing.T) {
	a := newTestAPI(t)
	a.login()
	for n := 0; n < 2; n++ {
		if rr := a.do(http.MethodPost, "/api/trucks", createTruckBody); rr.Code != http.StatusCreated {
			t.Fatalf("create: status %d", rr.Code)
		}
	}

	rr := a.do(http.MethodGet, "/api/trucks?equipmentType=reefer&carrierId=CAR-402", "")
	if got := decode[api.TruckListResponse](t, rr); got.Count != 2 {
		t.Errorf("count = %d, want 2", got.Count)
	}

	rr = a.do(http.MethodGet, "/api/trucks?carrierId=CAR-999", "")
	got := decode[api.TruckListResponse](t, rr)
	if got.Count != 0 || got.Items == nil {
		t.Errorf("expected empty non-nil items, got %+v", got)
	}

	rr = a.do(http.MethodGet, "/api/trucks?equipmentType=hovercraft", "")
	expectError(t, rr, http.StatusBadRequest, api.ErrorResponseCodeValidationFailed)
}

func TestCreateTruck_BadState(t *testing.T) {
	a := newTestAPI(t)
	a.login()

	rr := a.do(http.MethodPost, "/api/trucks", `{"carrierId":"C-1","city":"Chicago","state":"Illinois",
		"equipmentType":"flatbed","availableDate":"2026-03-09","capacity":1000}`)
	expectError(t, rr, http.StatusBadRequest, api.ErrorResponseCodeValidationFailed)
}
