package fedex

import (
	"encoding/xml"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
)

const defaultTrackingIDType = "EXPRESS"

type deleteShipmentRequest struct {
	XMLName xml.Name `xml:"http://fedex.com/ws/ship/v12 DeleteShipmentRequest"`
	credentials
	Version         version    `xml:"Version"`
	ShipTimestamp   string     `xml:"ShipTimestamp,omitempty"`
	TrackingID      trackingID `xml:"TrackingId"`
	DeletionControl string     `xml:"DeletionControl"`
}

type trackingID struct {
	TrackingIDType string `xml:"TrackingIdType"`
	TrackingNumber string `xml:"TrackingNumber"`
}

// Delete renders a DeleteShipmentRequest for the given tracking number.
// shipmentType is the tracking id type (EXPRESS, GROUND, ...); empty means
// EXPRESS.
func (b requestBuilder) Delete(trackingNumber, shipmentType string, opts domain.Options) (string, error) {
	req := deleteShipmentRequest{
		credentials: b.creds.block(),
		Version:     shipVersion,
		TrackingID: trackingID{
			TrackingIDType: firstNonEmpty(shipmentType, defaultTrackingIDType),
			TrackingNumber: trackingNumber,
		},
		DeletionControl: firstNonEmpty(opts.DeletionType, "DELETE_ALL_PACKAGES"),
	}
	if !opts.ShipTimestamp.IsZero() {
		req.ShipTimestamp = opts.ShipTimestamp.Format(timestampLayout)
	}
	return render(req)
}
