package http

import "time"

// LocationDTO carries a geographic coordinate pair in request and response
// bodies.
type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	CustomerID  string      `json:"customer_id" validate:"required,uuid"`
	Pickup      LocationDTO `json:"pickup" validate:"required"`
	Dropoff     LocationDTO `json:"dropoff" validate:"required"`
	WindowStart time.Time   `json:"window_start" validate:"required"`
	WindowEnd   time.Time   `json:"window_end" validate:"required"`
	WeightKg    float64     `json:"weight_kg" validate:"gt=0"`
	VolumeM3    float64     `json:"volume_m3" validate:"gt=0"`
	// Priority defaults to Standard when omitted.
	Priority string `json:"priority" validate:"omitempty,oneof=Low Standard High Express"`
}

// CreateAgentRequest is the body of POST /api/v1/agents.
type CreateAgentRequest struct {
	Name          string        `json:"name" validate:"required"`
	VehicleType   string        `json:"vehicle_type" validate:"required,oneof=Bicycle Motorcycle Car Van Truck"`
	Location      LocationDTO   `json:"location" validate:"required"`
	ServiceArea   []LocationDTO `json:"service_area" validate:"required,min=3,dive"`
	Capacity      int           `json:"capacity" validate:"gt=0"`
	MaxDistanceKm float64       `json:"max_distance_km" validate:"gt=0"`
}

// AssignDeliveryRequest is the body of POST /api/v1/deliveries/:id/assign.
type AssignDeliveryRequest struct {
	AgentID string `json:"agent_id" validate:"required,uuid"`
}

// CancelDeliveryRequest is the body of POST /api/v1/deliveries/:id/cancel.
// The reason is optional.
type CancelDeliveryRequest struct {
	Reason string `json:"reason"`
}

// FailDeliveryRequest is the body of POST /api/v1/deliveries/:id/fail.
// A failure reason is mandatory.
type FailDeliveryRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ChangePriorityRequest is the body of POST /api/v1/deliveries/:id/priority.
type ChangePriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=Low Standard High Express"`
}

// UpdateAgentLocationRequest is the body of POST /api/v1/agents/:id/location.
type UpdateAgentLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateAgentStatusRequest is the body of POST /api/v1/agents/:id/status.
// Busy is excluded: it is derived from workload, not set by hand.
type UpdateAgentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available OnBreak Offline"`
}

// RateAgentRequest is the body of POST /api/v1/agents/:id/rating.
type RateAgentRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

// CreatedResponse returns the identifier of a freshly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// PendingDeliveryResponse is one row of GET /api/v1/deliveries/pending.
type PendingDeliveryResponse struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Pickup     LocationDTO `json:"pickup"`
	Dropoff    LocationDTO `json:"dropoff"`
	Priority   string      `json:"priority"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// AgentResponse is one row of GET /api/v1/agents.
type AgentResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	VehicleType   string      `json:"vehicle_type"`
	Location      LocationDTO `json:"location"`
	Status        string      `json:"status"`
	Workload      int         `json:"workload"`
	RatingAverage float64     `json:"rating_average"`
	RatingCount   int         `json:"rating_count"`
}

// SuitableAgentsResponse is the body of GET /api/v1/deliveries/:id/suitable-agents.
type SuitableAgentsResponse struct {
	AgentIDs []string `json:"agent_ids"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
