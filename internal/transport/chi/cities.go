package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/boxaloo/boxaloo/internal/domain/city"
	"github.com/boxaloo/boxaloo/internal/transport/api"
)

// SearchCities handles GET /api/cities/search.
// A missing or short q yields an empty result list, not an error.
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	var params api.SearchCitiesParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "q", query, &params.Q); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, "Invalid format for parameter q")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, "Invalid format for parameter limit")
		return
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	writeJSON(w, http.StatusOK, api.CitySearchResponse{
		Results: s.cities.Search(r.Context(), params.Q, limit),
	})
}

// GetCity handles GET /api/cities/{formatted}, e.g. /api/cities/Chicago,%20IL.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	var formatted string
	err := runtime.BindStyledParameterWithOptions("simple", "formatted", chi.URLParam(r, "formatted"), &formatted,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, "Invalid format for parameter formatted")
		return
	}

	c, err := s.cities.Lookup(r.Context(), formatted)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cityToAPI(c))
}

func cityToAPI(c city.City) api.City {
	return api.City{
		Name:       c.Name(),
		StateCode:  c.StateCode(),
		StateName:  c.StateName(),
		County:     c.County(),
		Population: c.Population(),
		Formatted:  c.Formatted(),
	}
}
