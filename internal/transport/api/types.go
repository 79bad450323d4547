// Package api holds the JSON wire types of the boxaloo HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponseCode defines model for ErrorResponse.Code.
type ErrorResponseCode string

// Defines values for ErrorResponseCode.
const (
	ErrorResponseCodeBadRequest        ErrorResponseCode = "bad_request"
	ErrorResponseCodeValidationFailed  ErrorResponseCode = "validation_failed"
	ErrorResponseCodeLoadNotFound      ErrorResponseCode = "load_not_found"
	ErrorResponseCodeTruckNotFound     ErrorResponseCode = "truck_not_found"
	ErrorResponseCodeCityNotFound      ErrorResponseCode = "city_not_found"
	ErrorResponseCodeNotFound          ErrorResponseCode = "not_found"
	ErrorResponseCodeLoadNotAvailable  ErrorResponseCode = "load_not_available"
	ErrorResponseCodeInvalidTransition ErrorResponseCode = "invalid_transition"
	ErrorResponseCodeRateLimited       ErrorResponseCode = "rate_limited"
	ErrorResponseCodeUnauthenticated   ErrorResponseCode = "unauthenticated"
	ErrorResponseCodeInternalError     ErrorResponseCode = "internal_error"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// Load defines model for Load.
type Load struct {
	Id               string              `json:"id"`
	BrokerId         string              `json:"brokerId"`
	BrokerName       string              `json:"brokerName"`
	BrokerCompany    string              `json:"brokerCompany"`
	BrokerMc         *string             `json:"brokerMc,omitempty"`
	PickupLocation   string              `json:"pickupLocation"`
	DeliveryLocation string              `json:"deliveryLocation"`
	PickupDate       openapi_types.Date  `json:"pickupDate"`
	DeliveryDate     *openapi_types.Date `json:"deliveryDate,omitempty"`
	Weight           int                 `json:"weight"`
	Rate             float64             `json:"rate"`
	Distance         int                 `json:"distance"`
	RatePerMile      float64             `json:"ratePerMile"`
	EquipmentType    string              `json:"equipmentType"`
	LoadType         string              `json:"loadType"`
	Status           string              `json:"status"`
	ClaimedBy        *string             `json:"claimedBy,omitempty"`
	AssignedCarrier  *string             `json:"assignedCarrier,omitempty"`
	ClaimedAt        *time.Time          `json:"claimedAt,omitempty"`
	PostedAt         time.Time           `json:"postedAt"`
	Notes            *string             `json:"notes,omitempty"`
}

// CreateLoadRequest defines model for CreateLoadRequest.
type CreateLoadRequest struct {
	BrokerId         string              `json:"brokerId"`
	BrokerName       string              `json:"brokerName"`
	BrokerCompany    string              `json:"brokerCompany"`
	BrokerMc         *string             `json:"brokerMc,omitempty"`
	PickupLocation   string              `json:"pickupLocation"`
	DeliveryLocation string              `json:"deliveryLocation"`
	PickupDate       openapi_types.Date  `json:"pickupDate"`
	DeliveryDate     *openapi_types.Date `json:"deliveryDate,omitempty"`
	Weight           int                 `json:"weight"`
	Rate             float64             `json:"rate"`
	Distance         int                 `json:"distance"`
	EquipmentType    string              `json:"equipmentType"`
	LoadType         *string             `json:"loadType,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
}

// PatchLoadRequest defines model for PatchLoadRequest. Absent fields are unchanged.
type PatchLoadRequest struct {
	BrokerName       *string             `json:"brokerName,omitempty"`
	BrokerCompany    *string             `json:"brokerCompany,omitempty"`
	BrokerMc         *string             `json:"brokerMc,omitempty"`
	PickupLocation   *string             `json:"pickupLocation,omitempty"`
	DeliveryLocation *string             `json:"deliveryLocation,omitempty"`
	PickupDate       *openapi_types.Date `json:"pickupDate,omitempty"`
	DeliveryDate     *openapi_types.Date `json:"deliveryDate,omitempty"`
	Weight           *int                `json:"weight,omitempty"`
	Rate             *float64            `json:"rate,omitempty"`
	Distance         *int                `json:"distance,omitempty"`
	EquipmentType    *string             `json:"equipmentType,omitempty"`
	LoadType         *string             `json:"loadType,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
}

// ClaimLoadRequest defines model for ClaimLoadRequest.
type ClaimLoadRequest struct {
	ClaimantId   string  `json:"claimantId"`
	ClaimantName *string `json:"claimantName,omitempty"`
}

// TransitionLoadRequest defines model for TransitionLoadRequest.
type TransitionLoadRequest struct {
	Status string `json:"status"`
}

// LoadListResponse defines model for LoadListResponse.
type LoadListResponse struct {
	Items []Load `json:"items"`
	Count int    `json:"count"`
}

// ListLoadsParams defines parameters for ListLoads.
type ListLoadsParams struct {
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	BrokerId  *string `form:"brokerId,omitempty" json:"brokerId,omitempty"`
	ClaimedBy *string `form:"claimedBy,omitempty" json:"claimedBy,omitempty"`
}

// Truck defines model for Truck.
type Truck struct {
	Id            string             `json:"id"`
	CarrierId     string             `json:"carrierId"`
	CarrierName   string             `json:"carrierName"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	Location      string             `json:"location"`
	EquipmentType string             `json:"equipmentType"`
	AvailableDate openapi_types.Date `json:"availableDate"`
	Capacity      int                `json:"capacity"`
	Status        string             `json:"status"`
	PostedAt      time.Time          `json:"postedAt"`
}

// CreateTruckRequest defines model for CreateTruckRequest.
type CreateTruckRequest struct {
	CarrierId     string             `json:"carrierId"`
	CarrierName   string             `json:"carrierName"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	EquipmentType string             `json:"equipmentType"`
	AvailableDate openapi_types.Date `json:"availableDate"`
	Capacity      int                `json:"capacity"`
	Status        *string            `json:"status,omitempty"`
}

// PatchTruckRequest defines model for PatchTruckRequest. Absent fields are unchanged.
type PatchTruckRequest struct {
	CarrierName   *string             `json:"carrierName,omitempty"`
	City          *string             `json:"city,omitempty"`
	State         *string             `json:"state,omitempty"`
	EquipmentType *string             `json:"equipmentType,omitempty"`
	AvailableDate *openapi_types.Date `json:"availableDate,omitempty"`
	Capacity      *int                `json:"capacity,omitempty"`
	Status        *string             `json:"status,omitempty"`
}

// TruckListResponse defines model for TruckListResponse.
type TruckListResponse struct {
	Items []Truck `json:"items"`
	Count int     `json:"count"`
}

// ListTrucksParams defines parameters for ListTrucks.
type ListTrucksParams struct {
	Status        *string `form:"status,omitempty" json:"status,omitempty"`
	CarrierId     *string `form:"carrierId,omitempty" json:"carrierId,omitempty"`
	EquipmentType *string `form:"equipmentType,omitempty" json:"equipmentType,omitempty"`
}

// SearchCitiesParams defines parameters for SearchCities.
type SearchCitiesParams struct {
	Q     string `form:"q" json:"q"`
	Limit *int   `form:"limit,omitempty" json:"limit,omitempty"`
}

// CitySearchResponse defines model for CitySearchResponse.
type CitySearchResponse struct {
	Results []string `json:"results"`
}

// City defines model for City.
type City struct {
	Name       string `json:"name"`
	StateCode  string `json:"stateCode"`
	StateName  string `json:"stateName"`
	County     string `json:"county"`
	Population int    `json:"population"`
	Formatted  string `json:"formatted"`
}

// SessionResponse defines model for SessionResponse.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HealthResponseStatus defines model for HealthResponse.Status.
type HealthResponseStatus string

// HealthResponseChecks defines model for HealthResponse.Checks.
type HealthResponseChecks string

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status HealthResponseStatus            `json:"status"`
	Checks map[string]HealthResponseChecks `json:"checks"`
}
