package http

import "time"

// CoordinatePayload is a latitude/longitude pair in decimal degrees.
type CoordinatePayload struct {
	Latitude  float64 `json:"latitude" example:"26.6602"`
	Longitude float64 `json:"longitude" example:"86.207"`
}

// CalculateFeeRequest asks for a delivery quote. Callers either send a
// pickup/dropoff pair or, when they already know the trip length, just the
// distance in kilometers. A present Distance wins over the coordinates.
type CalculateFeeRequest struct {
	Distance *float64          `json:"distance,omitempty" example:"12.9"`
	Pickup   CoordinatePayload `json:"pickup"`
	Dropoff  CoordinatePayload `json:"dropoff"`
}

// FeeQuoteResponse is the quote for one prospective delivery. Fees are
// decimal strings to keep currency exact. Zone is empty and fallback true
// when no configured zone covered the distance.
type FeeQuoteResponse struct {
	DistanceKm       float64 `json:"distanceKm" example:"12.9"`
	BaseFee          string  `json:"baseFee" example:"50.00"`
	DistanceFee      string  `json:"distanceFee" example:"103.20"`
	TotalFee         string  `json:"totalFee" example:"153.20"`
	Zone             string  `json:"zone,omitempty" example:"Suburban"`
	Fallback         bool    `json:"fallback"`
	EstimatedMinutes int     `json:"estimatedMinutes" example:"159"`
}

// CreateDeliveryRequest opens a delivery for a placed order.
type CreateDeliveryRequest struct {
	OrderID         string            `json:"orderId" example:"123e4567-e89b-12d3-a456-426614174000"`
	CustomerID      string            `json:"customerId" example:"123e4567-e89b-12d3-a456-426614174001"`
	PickupAddress   string            `json:"pickupAddress" example:"Siraha Bazaar, Ward 2"`
	DeliveryAddress string            `json:"deliveryAddress" example:"Lahan, Main Road"`
	Pickup          CoordinatePayload `json:"pickup"`
	Dropoff         CoordinatePayload `json:"dropoff"`
}

// AcceptDeliveryRequest claims a pending delivery for a partner.
type AcceptDeliveryRequest struct {
	PartnerID string `json:"partnerId" example:"123e4567-e89b-12d3-a456-426614174002"`
}

// UpdateStatusRequest moves a delivery to a new lifecycle state.
// PartnerID is only consulted when the target status is "assigned".
type UpdateStatusRequest struct {
	Status    string  `json:"status" example:"picked_up"`
	PartnerID *string `json:"partnerId,omitempty"`
}

// DeliveryResponse is the API projection of one delivery.
type DeliveryResponse struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"orderId"`
	PartnerID        *string    `json:"partnerId,omitempty"`
	Status           string     `json:"status" example:"assigned"`
	PickupAddress    string     `json:"pickupAddress"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	DistanceKm       float64    `json:"distanceKm"`
	DeliveryFee      string     `json:"deliveryFee" example:"153.20"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	AssignedAt       *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt       *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

// CreatedResponse acknowledges a created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse carries a machine-readable status and a human-readable message.
type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message"`
}
