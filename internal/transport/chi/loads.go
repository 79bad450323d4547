package chi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/boxaloo/boxaloo/internal/domain"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	"github.com/boxaloo/boxaloo/internal/domain/load/patch"
	"github.com/boxaloo/boxaloo/internal/transport/api"
)

// ListLoads handles GET /api/loads.
func (s *Server) ListLoads(w http.ResponseWriter, r *http.Request) {
	var params api.ListLoadsParams
	query := r.URL.Query()
	for name, dst := range map[string]**string{
		"status":    &params.Status,
		"brokerId":  &params.BrokerId,
		"claimedBy": &params.ClaimedBy,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dst); err != nil {
			writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest,
				fmt.Sprintf("Invalid format for parameter %s", name))
			return
		}
	}

	loads, err := s.loads.List(r.Context(), domload.Filter{
		Status:    domload.Status(deref(params.Status)),
		BrokerID:  deref(params.BrokerId),
		ClaimedBy: deref(params.ClaimedBy),
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadListToAPI(loads))
}

// ListAvailableLoads handles GET /api/loads/available.
func (s *Server) ListAvailableLoads(w http.ResponseWriter, r *http.Request) {
	loads, err := s.loads.Available(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadListToAPI(loads))
}

// GetLoad handles GET /api/loads/{id}.
func (s *Server) GetLoad(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	l, err := s.loads.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadToAPI(&l))
}

// CreateLoad handles POST /api/loads.
func (s *Server) CreateLoad(w http.ResponseWriter, r *http.Request) {
	var req api.CreateLoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := draftFromAPI(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	l, err := s.loads.Create(r.Context(), d)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/loads/"+l.ID)
	writeJSON(w, http.StatusCreated, loadToAPI(&l))
}

// PatchLoad handles PATCH /api/loads/{id}.
func (s *Server) PatchLoad(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	var req api.PatchLoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := loadPatchFromAPI(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	l, err := s.loads.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadToAPI(&l))
}

// DeleteLoad handles DELETE /api/loads/{id}.
func (s *Server) DeleteLoad(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	deleted, err := s.loads.Delete(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if !deleted {
		s.handleDomainError(w, r, fmt.Errorf("%s: %w", id, domain.ErrLoadNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClaimLoad handles POST /api/loads/{id}/claim.
func (s *Server) ClaimLoad(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	var req api.ClaimLoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	l, err := s.loads.Claim(r.Context(), id, req.ClaimantId, deref(req.ClaimantName))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadToAPI(&l))
}

// TransitionLoad handles POST /api/loads/{id}/status.
func (s *Server) TransitionLoad(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
		return
	}

	var req api.TransitionLoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	l, err := s.loads.Transition(r.Context(), id, domload.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loadToAPI(&l))
}

func loadToAPI(l *domload.Load) api.Load {
	out := api.Load{
		Id:               l.ID,
		BrokerId:         l.Broker.ID,
		BrokerName:       l.Broker.Name,
		BrokerCompany:    l.Broker.Company,
		BrokerMc:         optString(l.Broker.MC),
		PickupLocation:   l.Route.Pickup,
		DeliveryLocation: l.Route.Delivery,
		PickupDate:       openapi_types.Date{Time: l.Route.PickupDate},
		Weight:           l.Weight,
		Rate:             l.Rate,
		Distance:         l.Distance,
		RatePerMile:      l.RatePerMile(),
		EquipmentType:    string(l.Equipment),
		LoadType:         string(l.Type),
		Status:           string(l.Status),
		ClaimedBy:        optString(l.ClaimedBy),
		AssignedCarrier:  optString(l.AssignedCarrier),
		PostedAt:         l.PostedAt,
		Notes:            optString(l.Notes),
	}
	if !l.Route.DeliveryDate.IsZero() {
		out.DeliveryDate = &openapi_types.Date{Time: l.Route.DeliveryDate}
	}
	if !l.ClaimedAt.IsZero() {
		claimedAt := l.ClaimedAt
		out.ClaimedAt = &claimedAt
	}
	return out
}

func loadListToAPI(loads []domload.Load) api.LoadListResponse {
	items := make([]api.Load, len(loads))
	for i := range loads {
		items[i] = loadToAPI(&loads[i])
	}
	return api.LoadListResponse{Items: items, Count: len(items)}
}

func draftFromAPI(req api.CreateLoadRequest) (domload.Draft, error) {
	eq, err := domain.ParseEquipment(req.EquipmentType)
	if err != nil {
		return domload.Draft{}, err
	}

	d := domload.Draft{
		Broker: domload.Broker{
			ID:      req.BrokerId,
			Name:    req.BrokerName,
			Company: req.BrokerCompany,
			MC:      deref(req.BrokerMc),
		},
		Route: domload.Route{
			Pickup:     req.PickupLocation,
			Delivery:   req.DeliveryLocation,
			PickupDate: req.PickupDate.Time,
		},
		Weight:    req.Weight,
		Rate:      req.Rate,
		Distance:  req.Distance,
		Equipment: eq,
		Type:      domload.Type(strings.ToUpper(deref(req.LoadType))),
		Notes:     deref(req.Notes),
	}
	if req.DeliveryDate != nil {
		d.Route.DeliveryDate = req.DeliveryDate.Time
	}
	return d, nil
}

func loadPatchFromAPI(req api.PatchLoadRequest) (patch.Patch, error) {
	f := patch.Fields{
		BrokerName:    req.BrokerName,
		BrokerCompany: req.BrokerCompany,
		BrokerMC:      req.BrokerMc,
		Pickup:        req.PickupLocation,
		Delivery:      req.DeliveryLocation,
		PickupDate:    datePtr(req.PickupDate),
		DeliveryDate:  datePtr(req.DeliveryDate),
		Weight:        req.Weight,
		Rate:          req.Rate,
		Distance:      req.Distance,
		Notes:         req.Notes,
	}
	if req.EquipmentType != nil {
		eq, err := domain.ParseEquipment(*req.EquipmentType)
		if err != nil {
			return patch.Patch{}, err
		}
		f.Equipment = &eq
	}
	if req.LoadType != nil {
		t := domload.Type(strings.ToUpper(*req.LoadType))
		f.Type = &t
	}

	p, err := patch.New(f)
	if err != nil {
		return patch.Patch{}, fmt.Errorf("build patch: %w", err)
	}
	return p, nil
}
