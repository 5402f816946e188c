package domain

import "time"

// ShipResponse is the outcome of a shipment creation.
type ShipResponse struct {
	Response
	TrackingNumber string `json:"tracking_number,omitempty"`
	LabelEncoded   string `json:"label_encoded,omitempty"` // base64 label image
	// ServiceType is the service the label was bought for, after carrier
	// defaults were applied.
	ServiceType string `json:"service_type,omitempty"`
}

// DeleteResponse is the outcome of a shipment cancellation.
type DeleteResponse struct {
	Response
}

// ShipmentStatus represents the lifecycle state of a shipment record.
type ShipmentStatus string

const (
	StatusCreated   ShipmentStatus = "created"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusCancelled ShipmentStatus = "cancelled"
)

var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusCreated:   {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusHistoryEntry records a single status transition on a shipment.
type StatusHistoryEntry struct {
	Status    ShipmentStatus `json:"status" bson:"status"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Notes     string         `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Shipment is the record kept for every label bought through a carrier.
type Shipment struct {
	ID             string               `json:"id" bson:"_id,omitempty"`
	TrackingNumber string               `json:"tracking_number" bson:"tracking_number"`
	Carrier        string               `json:"carrier" bson:"carrier"`
	ClientID       string               `json:"client_id" bson:"client_id"`
	ServiceType    string               `json:"service_type" bson:"service_type"`
	Origin         Location             `json:"origin" bson:"origin"`
	Destination    Location             `json:"destination" bson:"destination"`
	Packages       []Package            `json:"packages" bson:"packages"`
	LabelEncoded   string               `json:"-" bson:"label_encoded"`
	Status         ShipmentStatus       `json:"status" bson:"status"`
	CreatedAt      time.Time            `json:"created_at" bson:"created_at"`
	StatusHistory  []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}
