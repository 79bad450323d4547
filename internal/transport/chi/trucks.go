package chi

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/boxaloo/boxaloo/internal/domain"
	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	"github.com/boxaloo/boxaloo/internal/domain/truck/patch"
	"github.com/boxaloo/boxaloo/internal/transport/api"
)

// ListTrucks handles GET /api/trucks.
func (s *Server) ListTrucks(w http.ResponseWriter, r *http.Request) {
	var params api.ListTrucksParams
	query := r.URL.Query()
	for name, dst := range map[string]**string{
		"status":        &params.Status,
		"carrierId":     &params.CarrierId,
		"equipmentType": &params.EquipmentType,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dst); err != nil {
			writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest,
				fmt.Sprintf("Invalid format for parameter %s", name))
			return
		}
	}

	f := domtruck.Filter{
		Status:    domtruck.Status(deref(params.Status)),
		CarrierID: deref(params.CarrierId),
	}
	if params.EquipmentType != nil {
		eq, err := domain.ParseEquipment(*params.EquipmentType)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		f.Equipment = eq
	}

	trucks, err := s.trucks.List(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]api.Truck, len(trucks))
	for i := range trucks {
		items[i] = truckToAPI(&trucks[i])
	}
	writeJSON(w, http.StatusOK, api.TruckListResponse{Items: items, Count: len(items)})
}

// GetTruck handles GET /api/trucks/{id}.
func (s *Server) GetTruck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	t, err := s.trucks.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, truckToAPI(&t))
}

// CreateTruck handles POST /api/trucks.
func (s *Server) CreateTruck(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTruckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eq, err := domain.ParseEquipment(req.EquipmentType)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	t, err := s.trucks.Create(r.Context(), domtruck.Draft{
		Carrier:       domtruck.Carrier{ID: req.CarrierId, Name: req.CarrierName},
		City:          req.City,
		State:         req.State,
		Equipment:     eq,
		AvailableDate: req.AvailableDate.Time,
		Capacity:      req.Capacity,
		Status:        domtruck.Status(deref(req.Status)),
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/trucks/"+t.ID)
	writeJSON(w, http.StatusCreated, truckToAPI(&t))
}

// PatchTruck handles PATCH /api/trucks/{id}.
func (s *Server) PatchTruck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	var req api.PatchTruckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := truckPatchFromAPI(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	t, err := s.trucks.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, truckToAPI(&t))
}

// DeleteTruck handles DELETE /api/trucks/{id}.
func (s *Server) DeleteTruck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	deleted, err := s.trucks.Delete(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if !deleted {
		s.handleDomainError(w, r, fmt.Errorf("%s: %w", id, domain.ErrTruckNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func truckToAPI(t *domtruck.Truck) api.Truck {
	return api.Truck{
		Id:            t.ID,
		CarrierId:     t.Carrier.ID,
		CarrierName:   t.Carrier.Name,
		City:          t.City,
		State:         t.State,
		Location:      t.Location(),
		EquipmentType: string(t.Equipment),
		AvailableDate: openapi_types.Date{Time: t.AvailableDate},
		Capacity:      t.Capacity,
		Status:        string(t.Status),
		PostedAt:      t.PostedAt,
	}
}

func truckPatchFromAPI(req api.PatchTruckRequest) (patch.Patch, error) {
	f := patch.Fields{
		CarrierName:   req.CarrierName,
		City:          req.City,
		State:         req.State,
		AvailableDate: datePtr(req.AvailableDate),
		Capacity:      req.Capacity,
	}
	if req.EquipmentType != nil {
		eq, err := domain.ParseEquipment(*req.EquipmentType)
		if err != nil {
			return patch.Patch{}, err
		}
		f.Equipment = &eq
	}
	if req.Status != nil {
		st := domtruck.Status(*req.Status)
		f.Status = &st
	}

	p, err := patch.New(f)
	if err != nil {
		return patch.Patch{}, fmt.Errorf("build patch: %w", err)
	}
	return p, nil
}
