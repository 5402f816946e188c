package domain

import "time"

// ShipmentEvent is one timestamped tracking milestone.
type ShipmentEvent struct {
	Name     string    `json:"name"`
	Time     time.Time `json:"time"` // UTC
	Location Location  `json:"location"`
}

// TrackingResponse is the outcome of a tracking lookup. ShipmentEvents are
// sorted oldest first.
type TrackingResponse struct {
	Response
	TrackingNumber string          `json:"tracking_number,omitempty"`
	Destination    Location        `json:"destination"`
	ShipmentEvents []ShipmentEvent `json:"shipment_events"`
}

// TrackingEvent is a shipment event as persisted by the tracking refresher.
type TrackingEvent struct {
	TrackingNumber string    `bson:"tracking_number"`
	Carrier        string    `bson:"carrier"`
	Description    string    `bson:"description"`
	Timestamp      time.Time `bson:"timestamp"`
	Location       Location  `bson:"location"`
}

// Payload is a raw request/response exchange kept for diagnostics when the
// caller asks for it.
type Payload struct {
	ID        string    `bson:"_id"`
	Carrier   string    `bson:"carrier"`
	Operation string    `bson:"operation"`
	Request   string    `bson:"request"`
	Response  string    `bson:"response"`
	Success   bool      `bson:"success"`
	CreatedAt time.Time `bson:"created_at"`
}
